package catalog

import (
	"context"
	"errors"
	"testing"

	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type exerciseRepoMock struct {
	mock.Mock
}

func (m *exerciseRepoMock) List(ctx context.Context) ([]domain.Exercise, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Exercise), args.Error(1)
}

func (m *exerciseRepoMock) GetByID(ctx context.Context, id int) (*domain.Exercise, error) {
	args := m.Called(ctx, id)
	ex, _ := args.Get(0).(*domain.Exercise)
	return ex, args.Error(1)
}

func (m *exerciseRepoMock) Upsert(ctx context.Context, exercise *domain.Exercise) error {
	return m.Called(ctx, exercise).Error(0)
}

func (m *exerciseRepoMock) SetMediaKey(ctx context.Context, id int, key string) error {
	return m.Called(ctx, id, key).Error(0)
}

func (m *exerciseRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestExercises(t *testing.T) {
	exercises := Exercises()
	require.Len(t, exercises, 22)

	seen := map[int]bool{}
	for i, ex := range exercises {
		assert.False(t, seen[ex.ID], "duplicate id %d", ex.ID)
		seen[ex.ID] = true
		assert.True(t, ex.Category.Valid(), ex.Name)
		assert.NotEmpty(t, ex.Steps, ex.Name)
		if i > 0 {
			assert.Greater(t, ex.ID, exercises[i-1].ID)
		}
	}

	// Callers get their own copy.
	exercises[0].Tags[0] = "mutated"
	assert.Equal(t, "chest", Exercises()[0].Tags[0])
}

func TestSeed_EmptyCatalog(t *testing.T) {
	ctx := context.Background()
	repo := &exerciseRepoMock{}
	repo.On("Count", ctx).Return(int64(0), nil).Once()
	repo.On("Upsert", ctx, mock.AnythingOfType("*domain.Exercise")).Return(nil).Times(22)

	seeded, err := Seed(ctx, repo, logger.NewNop())
	require.NoError(t, err)
	assert.True(t, seeded)
	repo.AssertExpectations(t)
}

func TestSeed_AlreadyPopulated(t *testing.T) {
	ctx := context.Background()
	repo := &exerciseRepoMock{}
	repo.On("Count", ctx).Return(int64(3), nil).Once()

	seeded, err := Seed(ctx, repo, logger.NewNop())
	require.NoError(t, err)
	assert.False(t, seeded)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSeed_UpsertFailure(t *testing.T) {
	ctx := context.Background()
	repo := &exerciseRepoMock{}
	boom := errors.New("boom")
	repo.On("Count", ctx).Return(int64(0), nil).Once()
	repo.On("Upsert", ctx, mock.Anything).Return(boom).Once()

	_, err := Seed(ctx, repo, logger.NewNop())
	assert.ErrorIs(t, err, boom)
}
