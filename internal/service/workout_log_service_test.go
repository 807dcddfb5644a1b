package service

import (
	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogWindow(t *testing.T) {
	today := time.Date(2026, time.March, 1, 23, 59, 0, 0, time.UTC)
	from, to := LogWindow(today, 7)
	assert.Equal(t, "2026-02-23", from)
	assert.Equal(t, "2026-03-01", to)

	from, to = LogWindow(today, 1)
	assert.Equal(t, from, to)
}

func TestWorkoutLogService_LogWorkout(t *testing.T) {
	ctx := context.Background()
	logs := &logRepoMock{}
	exercises := &exerciseRepoMock{}
	svc := NewWorkoutLogService(logs, exercises, logger.NewNop())

	sets := 4
	high := domain.IntensityHigh
	exercises.On("GetByID", ctx, 1).Return(&domain.Exercise{ID: 1}, nil)
	logs.On("Create", ctx, mock.MatchedBy(func(l *domain.WorkoutLog) bool {
		return l.UserID == "u1" && l.ExerciseID == 1 && l.PerformedAt == "2026-03-09" && *l.Sets == 4 && *l.Intensity == high
	})).Return(nil).Once()

	entry, err := svc.LogWorkout(ctx, "u1", LogInput{ExerciseID: 1, PerformedAt: "2026-03-09", Sets: &sets, Intensity: &high})
	require.NoError(t, err)
	assert.Nil(t, entry.Reps)
	logs.AssertExpectations(t)
}

func TestWorkoutLogService_LogWorkoutValidation(t *testing.T) {
	ctx := context.Background()
	exercises := &exerciseRepoMock{}
	exercises.On("GetByID", ctx, 99).Return(nil, repository.ErrNotFound)
	svc := NewWorkoutLogService(&logRepoMock{}, exercises, logger.NewNop())

	extreme := domain.Intensity("extreme")
	negative := -1
	tests := []struct {
		name string
		in   LogInput
		want error
	}{
		{"bad date", LogInput{ExerciseID: 1, PerformedAt: "09/03/2026"}, ErrInvalidDate},
		{"date with time", LogInput{ExerciseID: 1, PerformedAt: "2026-03-09T10:00:00Z"}, ErrInvalidDate},
		{"bad intensity", LogInput{ExerciseID: 1, PerformedAt: "2026-03-09", Intensity: &extreme}, ErrInvalidIntensity},
		{"negative sets", LogInput{ExerciseID: 1, PerformedAt: "2026-03-09", Sets: &negative}, ErrInvalidVolume},
		{"unknown exercise", LogInput{ExerciseID: 99, PerformedAt: "2026-03-09"}, ErrExerciseNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LogWorkout(ctx, "u1", tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWorkoutLogService_RecentLogs(t *testing.T) {
	ctx := context.Background()
	logs := &logRepoMock{}
	want := []domain.WorkoutLog{{ID: "l1", PerformedAt: "2026-03-09"}}
	logs.On("ListByUserBetween", ctx, "u1", "2026-03-04", "2026-03-10").Return(want, nil)
	svc := NewWorkoutLogService(logs, &exerciseRepoMock{}, logger.NewNop())

	got, err := svc.RecentLogs(ctx, "u1", time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC), 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.RecentLogs(ctx, "u1", time.Now(), 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestWorkoutLogService_DeleteLog(t *testing.T) {
	ctx := context.Background()
	logs := &logRepoMock{}
	logs.On("Delete", ctx, "u1", "missing").Return(repository.ErrNotFound)
	svc := NewWorkoutLogService(logs, &exerciseRepoMock{}, logger.NewNop())

	assert.ErrorIs(t, svc.DeleteLog(ctx, "u1", "missing"), ErrLogNotFound)
}
