// Package recommendation picks a balanced set of exercises for today from a
// catalog and the recent workout history.
//
// The engine is a pure function: it does no I/O, keeps no state between
// calls and returns the same output for the same input, so it is safe to
// call concurrently.
package recommendation

import (
	"time"

	"alcyxob/fitness-recommender/internal/domain"
)

// DefaultCount is the number of recommendations produced when Params.Count is nil.
const DefaultCount = 6

// Params holds everything a single recommendation call needs.
type Params struct {
	Goal         domain.Goal
	FitnessLevel domain.FitnessLevel
	LogsLast7d   []domain.WorkoutLog
	Exercises    []domain.Exercise
	Today        time.Time
	// Count is the maximum number of recommendations. Nil means
	// DefaultCount; zero or a negative value yields no recommendations.
	Count *int
}

func (p Params) count() int {
	if p.Count == nil {
		return DefaultCount
	}
	return *p.Count
}

// TodayRecommendation is one pick for today with an optional same-muscle
// alternative.
type TodayRecommendation struct {
	Exercise    domain.Exercise  `json:"exercise"`
	Score       float64          `json:"score"`
	Reasons     []string         `json:"reasons"`
	Alternative *domain.Exercise `json:"alternative,omitempty"`
}

// candidatePool applies the hard filters, keeping catalog order.
func candidatePool(exercises []domain.Exercise, p Params, summary Summary) []domain.Exercise {
	pool := make([]domain.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if tooHardForLevel(ex, p.FitnessLevel) {
			continue
		}
		if recoveryBlocked(ex, p.Goal, summary) {
			continue
		}
		pool = append(pool, ex)
	}
	return pool
}

func indexByID(exercises []domain.Exercise) map[int]domain.Exercise {
	byID := make(map[int]domain.Exercise, len(exercises))
	for _, ex := range exercises {
		byID[ex.ID] = ex
	}
	return byID
}

// prepare builds the summary and the filtered pool shared by ScoreCandidates
// and RecommendToday.
func prepare(p Params) (Summary, []domain.Exercise) {
	summary := BuildSummary(p.LogsLast7d, indexByID(p.Exercises), p.Today)
	return summary, candidatePool(p.Exercises, p, summary)
}

// ScoreCandidates returns every exercise that passes the hard filters,
// scored and sorted best first, before any quota selection.
func ScoreCandidates(p Params) []ScoredCandidate {
	summary, pool := prepare(p)
	return rankCandidates(pool, p.Goal, summary)
}

// RecommendToday selects up to Count exercises for today.
//
// Exercises the user trained yesterday are kept off resistance work, compound
// lifts are withheld from beginners, and recently repeated exercises are
// pushed down. The result never contains the same exercise twice and is never
// larger than the filtered pool.
func RecommendToday(p Params) []TodayRecommendation {
	count := p.count()
	if count <= 0 || len(p.Exercises) == 0 {
		return []TodayRecommendation{}
	}

	summary, pool := prepare(p)
	ranked := rankCandidates(pool, p.Goal, summary)
	picked := selectForGoal(ranked, p.Goal, count)

	out := make([]TodayRecommendation, 0, len(picked))
	for _, c := range picked {
		out = append(out, TodayRecommendation{
			Exercise:    c.Exercise,
			Score:       c.Score,
			Reasons:     c.Reasons,
			Alternative: findAlternative(c.Exercise, pool, summary),
		})
	}
	return out
}
