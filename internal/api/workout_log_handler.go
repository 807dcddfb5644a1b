package api

import (
	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/service"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// WorkoutLogHandler serves the caller's workout history.
type WorkoutLogHandler struct {
	logService service.WorkoutLogService
	maxDays    int
	now        func() time.Time
	log        *logger.Logger
}

// NewWorkoutLogHandler creates a handler; defaultDays is also the upper bound
// of the ?days= window.
func NewWorkoutLogHandler(logService service.WorkoutLogService, defaultDays int, log *logger.Logger) *WorkoutLogHandler {
	return &WorkoutLogHandler{logService: logService, maxDays: defaultDays, now: time.Now, log: log}
}

// CreateLogRequest is the body of POST /logs.
type CreateLogRequest struct {
	ExerciseID  int               `json:"exerciseId" binding:"required,min=1"`
	PerformedAt string            `json:"performedAt" binding:"required"` // YYYY-MM-DD
	Sets        *int              `json:"sets"`
	Reps        *int              `json:"reps"`
	Intensity   *domain.Intensity `json:"intensity"`
}

// CreateLog records a completed session.
// @Router /logs [post]
func (h *WorkoutLogHandler) CreateLog(c *gin.Context) {
	var req CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	entry, err := h.logService.LogWorkout(c.Request.Context(), userID, service.LogInput{
		ExerciseID:  req.ExerciseID,
		PerformedAt: req.PerformedAt,
		Sets:        req.Sets,
		Reps:        req.Reps,
		Intensity:   req.Intensity,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListLogs returns the last ?days= days of logs, newest first.
// @Router /logs [get]
func (h *WorkoutLogHandler) ListLogs(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	days := h.maxDays
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days <= 0 || days > h.maxDays {
			abortWithError(c, http.StatusBadRequest, "days must be between 1 and "+strconv.Itoa(h.maxDays))
			return
		}
	}

	logs, err := h.logService.RecentLogs(c.Request.Context(), userID, h.now(), days)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// DeleteLog removes one of the caller's logs.
// @Router /logs/{id} [delete]
func (h *WorkoutLogHandler) DeleteLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	if err := h.logService.DeleteLog(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkoutLogHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidIntensity),
		errors.Is(err, service.ErrInvalidVolume),
		errors.Is(err, service.ErrInvalidWindow):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrExerciseNotFound), errors.Is(err, service.ErrLogNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		h.log.Error("Workout log request failed", "error", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to process workout log request.")
	}
}
