package domain

import "time"

// DateLayout is the calendar-date format used for PerformedAt.
const DateLayout = "2006-01-02"

// Intensity is the perceived effort of a logged session.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityModerate, IntensityHigh:
		return true
	}
	return false
}

// WorkoutLog records one completed session of one exercise on one date.
// Several logs may share the same date and exercise.
type WorkoutLog struct {
	ID          string     `bson:"_id" json:"id"`
	UserID      string     `bson:"userId" json:"userId"`
	ExerciseID  int        `bson:"exerciseId" json:"exerciseId"`
	PerformedAt string     `bson:"performedAt" json:"performedAt"` // YYYY-MM-DD, no time component
	Sets        *int       `bson:"sets,omitempty" json:"sets"`
	Reps        *int       `bson:"reps,omitempty" json:"reps"`
	Intensity   *Intensity `bson:"intensity,omitempty" json:"intensity"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
}

// FormatDate truncates t to its UTC calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
