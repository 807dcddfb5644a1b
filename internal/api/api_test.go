package api

import (
	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/metrics"
	"alcyxob/fitness-recommender/internal/recommendation"
	"alcyxob/fitness-recommender/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	testSecret = "api-test-secret"
	testUserID = "65f1c0ffee0000000000abcd"
)

type recServiceMock struct{ mock.Mock }

func (m *recServiceMock) Today(ctx context.Context, userID string, req service.TodayRequest) (*service.TodayResult, error) {
	args := m.Called(ctx, userID, req)
	res, _ := args.Get(0).(*service.TodayResult)
	return res, args.Error(1)
}

type logServiceMock struct{ mock.Mock }

func (m *logServiceMock) LogWorkout(ctx context.Context, userID string, in service.LogInput) (*domain.WorkoutLog, error) {
	args := m.Called(ctx, userID, in)
	l, _ := args.Get(0).(*domain.WorkoutLog)
	return l, args.Error(1)
}

func (m *logServiceMock) RecentLogs(ctx context.Context, userID string, today time.Time, days int) ([]domain.WorkoutLog, error) {
	args := m.Called(ctx, userID, today, days)
	logs, _ := args.Get(0).([]domain.WorkoutLog)
	return logs, args.Error(1)
}

func (m *logServiceMock) DeleteLog(ctx context.Context, userID, logID string) error {
	return m.Called(ctx, userID, logID).Error(0)
}

type exerciseServiceMock struct{ mock.Mock }

func (m *exerciseServiceMock) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	args := m.Called(ctx)
	ex, _ := args.Get(0).([]domain.Exercise)
	return ex, args.Error(1)
}

func (m *exerciseServiceMock) GetExercise(ctx context.Context, id int) (*service.ExerciseDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*service.ExerciseDetail)
	return d, args.Error(1)
}

func (m *exerciseServiceMock) RequestMediaUploadURL(ctx context.Context, id int, contentType string) (*service.UploadURLResponse, error) {
	args := m.Called(ctx, id, contentType)
	r, _ := args.Get(0).(*service.UploadURLResponse)
	return r, args.Error(1)
}

func (m *exerciseServiceMock) ConfirmMediaUpload(ctx context.Context, id int, objectKey string) (*service.ExerciseDetail, error) {
	args := m.Called(ctx, id, objectKey)
	d, _ := args.Get(0).(*service.ExerciseDetail)
	return d, args.Error(1)
}

type profileServiceMock struct{ mock.Mock }

func (m *profileServiceMock) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *profileServiceMock) UpdateProfile(ctx context.Context, userID string, goal domain.Goal, level domain.FitnessLevel) (*domain.User, error) {
	args := m.Called(ctx, userID, goal, level)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *profileServiceMock) SetRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, userID, role)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func signToken(t *testing.T, userID string, role domain.Role, expiresIn time.Duration) string {
	t.Helper()
	claims := &service.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newTestRouter(svc Services) *gin.Engine {
	router, _ := newInstrumentedRouter(svc)
	return router
}

func newInstrumentedRouter(svc Services) (*gin.Engine, *metrics.Manager) {
	m := metrics.NewTestManager()
	router := NewRouter(gin.TestMode, []string{"http://localhost:5173"}, m, logger.NewNop())
	SetupRoutes(router, testSecret, 7, svc, m, logger.NewNop())
	return router, m
}

func do(t *testing.T, router *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doAs(t, router, domain.RoleMember, method, target, body)
}

func doAs(t *testing.T, router *gin.Engine, role domain.Role, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signToken(t, testUserID, role, time.Hour))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	router := newTestRouter(Services{})

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired", "Bearer " + signToken(t, testUserID, domain.RoleMember, -time.Minute)},
		{"no user", "Bearer " + signToken(t, "", domain.RoleMember, time.Hour)},
		{"no role", "Bearer " + signToken(t, testUserID, "", time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/today", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRecommendationHandler_Today(t *testing.T) {
	recs := &recServiceMock{}
	router, m := newInstrumentedRouter(Services{Recommendation: recs})

	want := service.TodayRequest{
		Goal:  domain.GoalFatLoss,
		Date:  time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Count: 3,
	}
	recs.On("Today", mock.Anything, testUserID, want).Return(&service.TodayResult{
		Date: "2026-03-10",
		Goal: domain.GoalFatLoss,
		Recommendations: []recommendation.TodayRecommendation{
			{Exercise: domain.Exercise{ID: 20, Name: "Burpees"}, Score: 70, Reasons: []string{recommendation.ReasonGoalAligned}},
		},
	}, nil).Once()

	rec := do(t, router, http.MethodGet, "/api/v1/recommendations/today?goal=fat_loss&count=3&date=2026-03-10", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body service.TodayResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 1)
	assert.Equal(t, 20, body.Recommendations[0].Exercise.ID)
	assert.Nil(t, body.Recommendations[0].Alternative)
	recs.AssertExpectations(t)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRecommendations.WithLabelValues("fat_loss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues(http.MethodGet, "200")))
}

func TestRecommendationHandler_TodayRejectsBadQuery(t *testing.T) {
	recs := &recServiceMock{}
	router := newTestRouter(Services{Recommendation: recs})

	for _, target := range []string{
		"/api/v1/recommendations/today?count=0",
		"/api/v1/recommendations/today?count=abc",
		"/api/v1/recommendations/today?date=10-03-2026",
	} {
		rec := do(t, router, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}

	recs.On("Today", mock.Anything, testUserID, mock.Anything).Return(nil, service.ErrInvalidGoal).Once()
	rec := do(t, router, http.MethodGet, "/api/v1/recommendations/today?goal=bulk", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkoutLogHandler(t *testing.T) {
	logs := &logServiceMock{}
	router := newTestRouter(Services{WorkoutLog: logs})

	high := domain.IntensityHigh
	sets := 4
	logs.On("LogWorkout", mock.Anything, testUserID, service.LogInput{
		ExerciseID: 1, PerformedAt: "2026-03-09", Sets: &sets, Intensity: &high,
	}).Return(&domain.WorkoutLog{ID: "l1", ExerciseID: 1, PerformedAt: "2026-03-09"}, nil).Once()

	rec := do(t, router, http.MethodPost, "/api/v1/logs", map[string]interface{}{
		"exerciseId": 1, "performedAt": "2026-03-09", "sets": 4, "intensity": "high",
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	logs.On("LogWorkout", mock.Anything, testUserID, mock.Anything).Return(nil, service.ErrInvalidDate).Once()
	rec = do(t, router, http.MethodPost, "/api/v1/logs", map[string]interface{}{"exerciseId": 1, "performedAt": "yesterday"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/logs?days=30", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	logs.On("RecentLogs", mock.Anything, testUserID, mock.Anything, 3).Return([]domain.WorkoutLog{}, nil).Once()
	rec = do(t, router, http.MethodGet, "/api/v1/logs?days=3", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	logs.On("DeleteLog", mock.Anything, testUserID, "missing").Return(service.ErrLogNotFound).Once()
	rec = do(t, router, http.MethodDelete, "/api/v1/logs/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	logs.AssertExpectations(t)
}

func TestExerciseHandler(t *testing.T) {
	exercises := &exerciseServiceMock{}
	router := newTestRouter(Services{Exercise: exercises})

	rec := do(t, router, http.MethodGet, "/api/v1/exercises/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	exercises.On("GetExercise", mock.Anything, 99).Return(nil, service.ErrExerciseNotFound).Once()
	rec = do(t, router, http.MethodGet, "/api/v1/exercises/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	exercises.On("GetExercise", mock.Anything, 1).
		Return(&service.ExerciseDetail{Exercise: domain.Exercise{ID: 1, Name: "Bench Press"}, MediaURL: "https://m/1.gif"}, nil).Once()
	rec = do(t, router, http.MethodGet, "/api/v1/exercises/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Bench Press", detail["name"])
	assert.Equal(t, "https://m/1.gif", detail["mediaUrl"])

	exercises.On("RequestMediaUploadURL", mock.Anything, 1, "application/pdf").Return(nil, service.ErrInvalidContentType).Once()
	rec = doAs(t, router, domain.RoleTrainer, http.MethodPost, "/api/v1/exercises/1/media/upload-url", map[string]string{"contentType": "application/pdf"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExerciseHandler_MediaWritesNeedStaffRole(t *testing.T) {
	exercises := &exerciseServiceMock{}
	router := newTestRouter(Services{Exercise: exercises})

	rec := do(t, router, http.MethodPost, "/api/v1/exercises/1/media/upload-url", map[string]string{"contentType": "image/gif"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = do(t, router, http.MethodPut, "/api/v1/exercises/1/media", map[string]string{"objectKey": "exercise-media/1/x.gif"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	exercises.AssertNotCalled(t, "RequestMediaUploadURL", mock.Anything, mock.Anything, mock.Anything)
	exercises.AssertNotCalled(t, "ConfirmMediaUpload", mock.Anything, mock.Anything, mock.Anything)

	exercises.On("RequestMediaUploadURL", mock.Anything, 1, "image/gif").
		Return(&service.UploadURLResponse{UploadURL: "https://s3/put", ObjectKey: "exercise-media/1/x.gif"}, nil).Once()
	rec = doAs(t, router, domain.RoleTrainer, http.MethodPost, "/api/v1/exercises/1/media/upload-url", map[string]string{"contentType": "image/gif"})
	assert.Equal(t, http.StatusOK, rec.Code)

	exercises.On("ConfirmMediaUpload", mock.Anything, 1, "exercise-media/1/x.gif").
		Return(&service.ExerciseDetail{Exercise: domain.Exercise{ID: 1}}, nil).Once()
	rec = doAs(t, router, domain.RoleAdmin, http.MethodPut, "/api/v1/exercises/1/media", map[string]string{"objectKey": "exercise-media/1/x.gif"})
	assert.Equal(t, http.StatusOK, rec.Code)
	exercises.AssertExpectations(t)
}

func TestAuthHandler_SetRoleIsAdminOnly(t *testing.T) {
	profiles := &profileServiceMock{}
	router := newTestRouter(Services{Profile: profiles})
	target := "/api/v1/users/" + testUserID + "/role"

	rec := doAs(t, router, domain.RoleTrainer, http.MethodPut, target, map[string]string{"role": "trainer"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	id, err := primitive.ObjectIDFromHex(testUserID)
	require.NoError(t, err)
	profiles.On("SetRole", mock.Anything, testUserID, domain.RoleTrainer).
		Return(&domain.User{ID: id, Role: domain.RoleTrainer}, nil).Once()
	rec = doAs(t, router, domain.RoleAdmin, http.MethodPut, target, map[string]string{"role": "trainer"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"role":"trainer"`)

	profiles.On("SetRole", mock.Anything, testUserID, domain.Role("owner")).Return(nil, service.ErrInvalidRole).Once()
	rec = doAs(t, router, domain.RoleAdmin, http.MethodPut, target, map[string]string{"role": "owner"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	profiles.AssertExpectations(t)
}

func TestRouter_CORSAndPing(t *testing.T) {
	router := newTestRouter(Services{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/logs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}
