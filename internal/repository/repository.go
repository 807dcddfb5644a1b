package repository

import (
	"alcyxob/fitness-recommender/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, goal domain.Goal, level domain.FitnessLevel) error
	UpdateRole(ctx context.Context, id primitive.ObjectID, role domain.Role) error
}

// ExerciseRepository is the exercise catalog.
type ExerciseRepository interface {
	// List returns the whole catalog ordered by ascending ID.
	List(ctx context.Context) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id int) (*domain.Exercise, error)
	Upsert(ctx context.Context, exercise *domain.Exercise) error
	SetMediaKey(ctx context.Context, id int, key string) error
	Count(ctx context.Context) (int64, error)
}

// WorkoutLogRepository stores completed exercise sessions.
type WorkoutLogRepository interface {
	Create(ctx context.Context, log *domain.WorkoutLog) error
	// ListByUserBetween returns the user's logs with from <= performedAt <= to,
	// newest first. Dates are YYYY-MM-DD strings.
	ListByUserBetween(ctx context.Context, userID, from, to string) ([]domain.WorkoutLog, error)
	Delete(ctx context.Context, userID, id string) error
}
