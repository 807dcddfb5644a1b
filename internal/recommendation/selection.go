package recommendation

import (
	"alcyxob/fitness-recommender/internal/domain"
)

// quota fills up to n slots with the best-ranked exercises matching match.
type quota struct {
	n     int
	match func(domain.Exercise) bool
}

var fatLossQuotas = []quota{
	{1, func(e domain.Exercise) bool { return isCardioLike(e) && isHIIT(e) }},
	{1, func(e domain.Exercise) bool { return isCardioLike(e) && !isHIIT(e) }},
	{2, func(e domain.Exercise) bool { return isGym(e) && len(exerciseMuscles(e)) >= 2 }},
	{1, func(e domain.Exercise) bool { return hasMuscle(e, "core") }},
	{1, func(e domain.Exercise) bool { return hasTag(e, "mobility") }},
}

var muscleGainQuotas = []quota{
	{2, func(e domain.Exercise) bool { return isGym(e) && isCompoundHeavy(e) }},
	{2, func(e domain.Exercise) bool { return isGym(e) && !isCompoundHeavy(e) }},
	{1, func(e domain.Exercise) bool { return hasMuscle(e, "core") }},
	{1, func(e domain.Exercise) bool { return isCardioLike(e) || hasTag(e, "mobility") }},
}

func quotasFor(goal domain.Goal) []quota {
	if goal == domain.GoalFatLoss {
		return fatLossQuotas
	}
	return muscleGainQuotas
}

type selector struct {
	ranked []ScoredCandidate
	count  int
	picked []ScoredCandidate
	taken  map[int]struct{}
}

func newSelector(ranked []ScoredCandidate, count int) *selector {
	return &selector{
		ranked: ranked,
		count:  count,
		picked: make([]ScoredCandidate, 0, count),
		taken:  make(map[int]struct{}, count),
	}
}

func (s *selector) full() bool {
	return len(s.picked) >= s.count
}

// pickWhere scans the ranked list top to bottom and takes up to n
// unpicked matches.
func (s *selector) pickWhere(match func(domain.Exercise) bool, n int) {
	for _, c := range s.ranked {
		if s.full() || n <= 0 {
			return
		}
		if !match(c.Exercise) {
			continue
		}
		if _, ok := s.taken[c.Exercise.ID]; ok {
			continue
		}
		s.take(c)
		n--
	}
}

func (s *selector) take(c ScoredCandidate) {
	s.taken[c.Exercise.ID] = struct{}{}
	s.picked = append(s.picked, c)
}

// selectForGoal runs the goal's quota passes and then backfills with the
// highest-ranked leftovers.
func selectForGoal(ranked []ScoredCandidate, goal domain.Goal, count int) []ScoredCandidate {
	s := newSelector(ranked, count)
	for _, q := range quotasFor(goal) {
		s.pickWhere(q.match, q.n)
	}
	s.pickWhere(func(domain.Exercise) bool { return true }, count)
	return s.picked
}

// findAlternative returns the first pool exercise, in catalog order, that
// shares enough muscles with primary and has not been done in the last three
// days. It is a first match, not a ranking.
func findAlternative(primary domain.Exercise, pool []domain.Exercise, summary Summary) *domain.Exercise {
	pm := exerciseMuscles(primary)
	need := min(2, len(pm))
	for i := range pool {
		e := pool[i]
		if e.ID == primary.ID {
			continue
		}
		if overlapCount(exerciseMuscles(e), pm) < need {
			continue
		}
		if summary.lastSeen(e.ID) <= 3 {
			continue
		}
		return &e
	}
	return nil
}
