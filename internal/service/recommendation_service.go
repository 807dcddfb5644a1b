package service

import (
	"alcyxob/fitness-recommender/internal/config"
	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/recommendation"
	"alcyxob/fitness-recommender/internal/repository"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// TodayRequest overrides parts of the stored profile for one call.
// Zero values fall back to the profile, the server clock and the configured
// default count.
type TodayRequest struct {
	Goal         domain.Goal
	FitnessLevel domain.FitnessLevel
	Date         time.Time
	Count        int
}

// TodayResult is what the API returns for today's plan.
type TodayResult struct {
	Date            string                               `json:"date"`
	Goal            domain.Goal                          `json:"goal"`
	FitnessLevel    domain.FitnessLevel                  `json:"fitnessLevel"`
	Recommendations []recommendation.TodayRecommendation `json:"recommendations"`
}

type RecommendationService interface {
	Today(ctx context.Context, userID string, req TodayRequest) (*TodayResult, error)
}

type recommendationService struct {
	profiles     ProfileService
	logs         WorkoutLogService
	exerciseRepo repository.ExerciseRepository
	cfg          config.RecommendationConfig
	now          func() time.Time
	log          *logger.Logger
}

func NewRecommendationService(
	profiles ProfileService,
	logs WorkoutLogService,
	exerciseRepo repository.ExerciseRepository,
	cfg config.RecommendationConfig,
	log *logger.Logger,
) RecommendationService {
	return &recommendationService{
		profiles:     profiles,
		logs:         logs,
		exerciseRepo: exerciseRepo,
		cfg:          cfg,
		now:          time.Now,
		log:          log,
	}
}

func (s *recommendationService) count(requested int) int {
	switch {
	case requested <= 0:
		return s.cfg.DefaultCount
	case requested > s.cfg.MaxCount:
		return s.cfg.MaxCount
	default:
		return requested
	}
}

// Today loads the profile, catalog and log window in parallel and runs the
// recommendation engine over them.
func (s *recommendationService) Today(ctx context.Context, userID string, req TodayRequest) (*TodayResult, error) {
	if req.Goal != "" && !req.Goal.Valid() {
		return nil, ErrInvalidGoal
	}
	if req.FitnessLevel != "" && !req.FitnessLevel.Valid() {
		return nil, ErrInvalidFitnessLevel
	}
	today := req.Date
	if today.IsZero() {
		today = s.now()
	}

	var (
		profile   *domain.User
		exercises []domain.Exercise
		logs      []domain.WorkoutLog
	)
	g, gctx := errgroup.WithContext(ctx)
	if req.Goal == "" || req.FitnessLevel == "" {
		g.Go(func() error {
			var err error
			profile, err = s.profiles.GetProfile(gctx, userID)
			return err
		})
	}
	g.Go(func() error {
		var err error
		exercises, err = s.exerciseRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		logs, err = s.logs.RecentLogs(gctx, userID, today, s.cfg.LogWindowDays)
		if err != nil {
			return fmt.Errorf("load workout logs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	goal, level := req.Goal, req.FitnessLevel
	if goal == "" {
		goal = profile.Goal
	}
	if level == "" {
		level = profile.FitnessLevel
	}

	count := s.count(req.Count)
	start := time.Now()
	recs := recommendation.RecommendToday(recommendation.Params{
		Goal:         goal,
		FitnessLevel: level,
		LogsLast7d:   logs,
		Exercises:    exercises,
		Today:        today,
		Count:        &count,
	})
	s.log.Info("Recommendations computed",
		"user_id", userID,
		"goal", goal,
		"level", level,
		"catalog", len(exercises),
		"logs", len(logs),
		"picked", len(recs),
		"elapsed", time.Since(start),
	)

	return &TodayResult{
		Date:            domain.FormatDate(today),
		Goal:            goal,
		FitnessLevel:    level,
		Recommendations: recs,
	}, nil
}
