package recommendation

import (
	"math"
	"time"

	"alcyxob/fitness-recommender/internal/domain"
)

// neverSeenDaysAgo stands in for exercises absent from the log history.
const neverSeenDaysAgo = 999

// Summary is the rolling view of recent training derived from the log
// history. It is rebuilt on every call and never shared.
type Summary struct {
	MusclesWorkedYesterday  map[string]struct{}
	MuscleLoadLast48h       map[string]float64
	ExerciseLastSeenDaysAgo map[int]int
}

func (s Summary) workedYesterday(muscle string) bool {
	_, ok := s.MusclesWorkedYesterday[muscle]
	return ok
}

func (s Summary) lastSeen(exerciseID int) int {
	if d, ok := s.ExerciseLastSeenDaysAgo[exerciseID]; ok {
		return d
	}
	return neverSeenDaysAgo
}

func (s Summary) overlapsYesterday(muscles []string) bool {
	for _, m := range muscles {
		if s.workedYesterday(m) {
			return true
		}
	}
	return false
}

func intensityWeight(intensity *domain.Intensity) float64 {
	if intensity == nil {
		return 1
	}
	switch *intensity {
	case domain.IntensityHigh:
		return 2
	case domain.IntensityModerate:
		return 1.5
	default:
		return 1
	}
}

// logLoad is sets x intensity for gym work and a flat 1 x intensity for
// anything else. A gym log without sets carries no load.
func logLoad(ex domain.Exercise, log domain.WorkoutLog) float64 {
	base := 1.0
	if isGym(ex) {
		base = 0
		if log.Sets != nil {
			base = float64(*log.Sets)
		}
	}
	return base * intensityWeight(log.Intensity)
}

// truncateToDate returns midnight UTC of t's UTC calendar date.
func truncateToDate(t time.Time) time.Time {
	d, _ := domain.ParseDate(domain.FormatDate(t))
	return d
}

// daysBetween returns the whole days from performed to today. Future dates
// come out negative.
func daysBetween(today time.Time, performed time.Time) int {
	return int(math.Round(today.Sub(performed).Hours() / 24))
}

// BuildSummary folds the log history into a Summary relative to today.
// Logs that reference unknown exercises or carry unparsable dates are skipped.
func BuildSummary(logs []domain.WorkoutLog, exercisesByID map[int]domain.Exercise, today time.Time) Summary {
	summary := Summary{
		MusclesWorkedYesterday:  make(map[string]struct{}),
		MuscleLoadLast48h:       make(map[string]float64),
		ExerciseLastSeenDaysAgo: make(map[int]int),
	}
	day := truncateToDate(today)

	for _, log := range logs {
		ex, ok := exercisesByID[log.ExerciseID]
		if !ok {
			continue
		}
		performed, err := domain.ParseDate(log.PerformedAt)
		if err != nil {
			continue
		}
		daysAgo := daysBetween(day, performed)

		if prev, seen := summary.ExerciseLastSeenDaysAgo[ex.ID]; !seen || daysAgo < prev {
			summary.ExerciseLastSeenDaysAgo[ex.ID] = daysAgo
		}

		if daysAgo == 1 {
			for _, m := range exerciseMuscles(ex) {
				summary.MusclesWorkedYesterday[m] = struct{}{}
			}
		}

		if daysAgo >= 0 && daysAgo <= 2 {
			load := logLoad(ex, log)
			for _, m := range exerciseMuscles(ex) {
				summary.MuscleLoadLast48h[m] += load
			}
		}
	}
	return summary
}
