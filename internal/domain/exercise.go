// internal/domain/exercise.go
package domain

import "time"

// Category is the coarse training modality of an exercise.
type Category string

const (
	CategoryCardio Category = "cardio"
	CategoryGym    Category = "gym"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryCardio || c == CategoryGym
}

// Exercise represents a single exercise definition in the catalog.
// IDs are small integers owned by the catalog and never reassigned.
type Exercise struct {
	ID       int      `bson:"_id" json:"id"`
	Name     string   `bson:"name" json:"name"`
	Category Category `bson:"category" json:"category"`
	Tags     []string `bson:"tags" json:"tags"`   // Free-form labels, a subset are muscle tags
	Sets     string   `bson:"sets" json:"sets"`   // Human-readable prescription, e.g. "4 sets of 8-12 reps"
	Steps    []string `bson:"steps" json:"steps"` // Ordered execution cues

	ImageURL     string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	TargetMuscle string `bson:"targetMuscle,omitempty" json:"targetMuscle,omitempty"`
	MediaKey     string `bson:"mediaKey,omitempty" json:"-"` // Object key of the demo gif in media storage

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
