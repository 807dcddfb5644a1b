package recommendation

import (
	"strings"

	"alcyxob/fitness-recommender/internal/domain"
)

// knownMuscleTags is the recognised muscle vocabulary. Any other tag is a
// plain label and never contributes to recovery tracking.
var knownMuscleTags = map[string]struct{}{
	"chest":     {},
	"back":      {},
	"legs":      {},
	"shoulders": {},
	"biceps":    {},
	"triceps":   {},
	"core":      {},
	"arms":      {},
	"full body": {},
}

// compoundNameMarkers flag multi-joint, high-load lifts by name.
var compoundNameMarkers = []string{
	"deadlift",
	"squat",
	"bench",
	"row",
	"pull-up",
	"overhead press",
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func hasTag(ex domain.Exercise, tag string) bool {
	for _, t := range ex.Tags {
		if normalizeTag(t) == tag {
			return true
		}
	}
	return false
}

// exerciseMuscles returns the distinct muscle tags of ex in tag order.
// "arms" expands to biceps and triceps.
func exerciseMuscles(ex domain.Exercise) []string {
	seen := make(map[string]struct{}, len(ex.Tags))
	muscles := make([]string, 0, len(ex.Tags))
	add := func(m string) {
		if _, ok := seen[m]; ok {
			return
		}
		seen[m] = struct{}{}
		muscles = append(muscles, m)
	}
	for _, raw := range ex.Tags {
		t := normalizeTag(raw)
		if _, ok := knownMuscleTags[t]; !ok {
			continue
		}
		if t == "arms" {
			add("biceps")
			add("triceps")
			continue
		}
		add(t)
	}
	return muscles
}

func hasMuscle(ex domain.Exercise, muscle string) bool {
	for _, m := range exerciseMuscles(ex) {
		if m == muscle {
			return true
		}
	}
	return false
}

func isCardioLike(ex domain.Exercise) bool {
	return ex.Category == domain.CategoryCardio || hasTag(ex, "endurance") || hasTag(ex, "hiit")
}

func isHIIT(ex domain.Exercise) bool {
	return hasTag(ex, "hiit")
}

func isGym(ex domain.Exercise) bool {
	return ex.Category == domain.CategoryGym
}

// isCompoundHeavy is a plain case-insensitive substring match on the name.
func isCompoundHeavy(ex domain.Exercise) bool {
	name := strings.ToLower(ex.Name)
	for _, marker := range compoundNameMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

func overlapCount(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, m := range a {
		set[m] = struct{}{}
	}
	n := 0
	for _, m := range b {
		if _, ok := set[m]; ok {
			n++
		}
	}
	return n
}
