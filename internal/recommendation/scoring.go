package recommendation

import (
	"sort"

	"alcyxob/fitness-recommender/internal/domain"
)

// Reason tags attached to a scored candidate, always in this order.
const (
	ReasonGoalAligned   = "Goal-aligned"
	ReasonRecoveryAware = "Recovery-aware"
	ReasonVariety       = "Variety"
)

// ScoredCandidate is an exercise that survived the hard filters along with
// its total score.
type ScoredCandidate struct {
	Exercise domain.Exercise `json:"exercise"`
	Score    float64         `json:"score"`
	Reasons  []string        `json:"reasons"`
}

// tooHardForLevel keeps compound lifts away from beginners.
func tooHardForLevel(ex domain.Exercise, level domain.FitnessLevel) bool {
	return level == domain.LevelBeginner && isCompoundHeavy(ex)
}

// recoveryBlocked rejects resistance work on a muscle trained yesterday and,
// for fat loss, HIIT on a muscle trained yesterday. Steady cardio stays allowed.
func recoveryBlocked(ex domain.Exercise, goal domain.Goal, summary Summary) bool {
	overlaps := summary.overlapsYesterday(exerciseMuscles(ex))
	if !overlaps {
		return false
	}
	if isGym(ex) {
		return true
	}
	if goal == domain.GoalFatLoss && isCardioLike(ex) && isHIIT(ex) {
		return true
	}
	return false
}

func goalScore(ex domain.Exercise, goal domain.Goal) float64 {
	var s float64
	if goal == domain.GoalFatLoss {
		if isCardioLike(ex) {
			s += 40
		}
		if isHIIT(ex) {
			s += 10
		}
		if isGym(ex) && len(exerciseMuscles(ex)) >= 3 {
			s += 12
		}
		if hasTag(ex, "full body") {
			s += 8
		}
		return s
	}

	// Every other goal follows the muscle-gain strategy.
	if isGym(ex) {
		s += 40
	}
	if isCompoundHeavy(ex) {
		s += 10
	}
	if isCardioLike(ex) {
		s -= 10
	}
	return s
}

func recoveryScore(ex domain.Exercise, summary Summary) float64 {
	var penalty float64
	for _, m := range exerciseMuscles(ex) {
		penalty += summary.MuscleLoadLast48h[m] * 8
	}
	return -penalty
}

func noveltyScore(ex domain.Exercise, summary Summary) float64 {
	daysAgo := summary.lastSeen(ex.ID)
	switch {
	case daysAgo <= 1:
		return -30
	case daysAgo <= 3:
		return -10
	case daysAgo <= 7:
		return 5
	default:
		return 12
	}
}

func scoreExercise(ex domain.Exercise, goal domain.Goal, summary Summary) ScoredCandidate {
	reasons := make([]string, 0, 3)

	g := goalScore(ex, goal)
	if g > 0 {
		reasons = append(reasons, ReasonGoalAligned)
	}
	r := recoveryScore(ex, summary)
	if r < 0 {
		reasons = append(reasons, ReasonRecoveryAware)
	}
	n := noveltyScore(ex, summary)
	if n > 0 {
		reasons = append(reasons, ReasonVariety)
	}

	return ScoredCandidate{Exercise: ex, Score: g + r + n, Reasons: reasons}
}

// rankCandidates scores the pool and sorts it by descending score. Ties keep
// catalog order.
func rankCandidates(pool []domain.Exercise, goal domain.Goal, summary Summary) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(pool))
	for _, ex := range pool {
		scored = append(scored, scoreExercise(ex, goal, summary))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
