package service

import (
	"alcyxob/fitness-recommender/internal/domain"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *userRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *userRepoMock) UpdateProfile(ctx context.Context, id primitive.ObjectID, goal domain.Goal, level domain.FitnessLevel) error {
	return m.Called(ctx, id, goal, level).Error(0)
}

func (m *userRepoMock) UpdateRole(ctx context.Context, id primitive.ObjectID, role domain.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

type exerciseRepoMock struct{ mock.Mock }

func (m *exerciseRepoMock) List(ctx context.Context) ([]domain.Exercise, error) {
	args := m.Called(ctx)
	exercises, _ := args.Get(0).([]domain.Exercise)
	return exercises, args.Error(1)
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

type logRepoMock struct{ mock.Mock }

func (m *logRepoMock) Create(ctx context.Context, log *domain.WorkoutLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *logRepoMock) ListByUserBetween(ctx context.Context, userID, from, to string) ([]domain.WorkoutLog, error) {
	args := m.Called(ctx, userID, from, to)
	logs, _ := args.Get(0).([]domain.WorkoutLog)
	return logs, args.Error(1)
}

func (m *logRepoMock) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mediaMock struct{ mock.Mock }

func (m *mediaMock) PresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, contentType, expires)
	return args.String(0), args.Error(1)
}

func (m *mediaMock) PresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expires)
	return args.String(0), args.Error(1)
}

func (m *mediaMock) ObjectExists(ctx context.Context, objectKey string) (bool, error) {
	args := m.Called(ctx, objectKey)
	return args.Bool(0), args.Error(1)
}

func (m *mediaMock) DeleteObject(ctx context.Context, objectKey string) error {
	return m.Called(ctx, objectKey).Error(0)
}
