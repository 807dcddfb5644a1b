package service

import (
	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/repository"
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidDate      = errors.New("performedAt must be a YYYY-MM-DD date")
	ErrInvalidIntensity = errors.New("intensity must be low, moderate or high")
	ErrInvalidVolume    = errors.New("sets and reps must not be negative")
	ErrInvalidWindow    = errors.New("window must be at least one day")
	ErrLogNotFound      = errors.New("workout log not found")
)

// LogInput is a session to record. Optional fields stay nil when unknown.
type LogInput struct {
	ExerciseID  int
	PerformedAt string
	Sets        *int
	Reps        *int
	Intensity   *domain.Intensity
}

type WorkoutLogService interface {
	LogWorkout(ctx context.Context, userID string, in LogInput) (*domain.WorkoutLog, error)
	// RecentLogs returns the logs of the days days ending on today, inclusive.
	RecentLogs(ctx context.Context, userID string, today time.Time, days int) ([]domain.WorkoutLog, error)
	DeleteLog(ctx context.Context, userID, logID string) error
}

type workoutLogService struct {
	logRepo      repository.WorkoutLogRepository
	exerciseRepo repository.ExerciseRepository
	log          *logger.Logger
}

func NewWorkoutLogService(logRepo repository.WorkoutLogRepository, exerciseRepo repository.ExerciseRepository, log *logger.Logger) WorkoutLogService {
	return &workoutLogService{
		logRepo:      logRepo,
		exerciseRepo: exerciseRepo,
		log:          log,
	}
}

func (s *workoutLogService) LogWorkout(ctx context.Context, userID string, in LogInput) (*domain.WorkoutLog, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	performed, err := domain.ParseDate(in.PerformedAt)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if in.Intensity != nil && !in.Intensity.Valid() {
		return nil, ErrInvalidIntensity
	}
	if (in.Sets != nil && *in.Sets < 0) || (in.Reps != nil && *in.Reps < 0) {
		return nil, ErrInvalidVolume
	}

	if _, err = s.exerciseRepo.GetByID(ctx, in.ExerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	entry := &domain.WorkoutLog{
		UserID:      userID,
		ExerciseID:  in.ExerciseID,
		PerformedAt: domain.FormatDate(performed),
		Sets:        in.Sets,
		Reps:        in.Reps,
		Intensity:   in.Intensity,
	}
	if err = s.logRepo.Create(ctx, entry); err != nil {
		s.log.Error("Failed to insert workout log", "user_id", userID, "exercise_id", in.ExerciseID, "error", err)
		return nil, err
	}

	s.log.Info("Workout log inserted", "user_id", userID, "exercise_id", in.ExerciseID, "performed_at", entry.PerformedAt)
	return entry, nil
}

func (s *workoutLogService) RecentLogs(ctx context.Context, userID string, today time.Time, days int) ([]domain.WorkoutLog, error) {
	if days <= 0 {
		return nil, ErrInvalidWindow
	}
	from, to := LogWindow(today, days)

	s.log.Debug("Fetching workout logs", "user_id", userID, "from", from, "to", to)
	return s.logRepo.ListByUserBetween(ctx, userID, from, to)
}

func (s *workoutLogService) DeleteLog(ctx context.Context, userID, logID string) error {
	if err := s.logRepo.Delete(ctx, userID, logID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLogNotFound
		}
		return err
	}
	return nil
}

// LogWindow returns the inclusive date range of days days ending on today.
func LogWindow(today time.Time, days int) (from, to string) {
	to = domain.FormatDate(today)
	from = domain.FormatDate(today.UTC().AddDate(0, 0, -(days - 1)))
	return from, to
}
