package api

import (
	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/metrics"
	"alcyxob/fitness-recommender/internal/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RecommendationHandler serves today's workout plan.
type RecommendationHandler struct {
	recService service.RecommendationService
	metrics    *metrics.Manager
	log        *logger.Logger
}

func NewRecommendationHandler(recService service.RecommendationService, m *metrics.Manager, log *logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{recService: recService, metrics: m, log: log}
}

// Today godoc
// @Summary Recommend exercises for today
// @Description Goal and level default to the stored profile, date to today (UTC).
// @Tags Recommendations
// @Produce json
// @Security BearerAuth
// @Param count query int false "Number of exercises"
// @Param goal query string false "Goal override"
// @Param level query string false "Fitness level override"
// @Param date query string false "Reference date, YYYY-MM-DD"
// @Success 200 {object} service.TodayResult
// @Router /recommendations/today [get]
func (h *RecommendationHandler) Today(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	req := service.TodayRequest{
		Goal:         domain.Goal(c.Query("goal")),
		FitnessLevel: domain.FitnessLevel(c.Query("level")),
	}
	if raw := c.Query("count"); raw != "" {
		req.Count, err = strconv.Atoi(raw)
		if err != nil || req.Count <= 0 {
			abortWithError(c, http.StatusBadRequest, "count must be a positive integer")
			return
		}
	}
	if raw := c.Query("date"); raw != "" {
		req.Date, err = domain.ParseDate(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, service.ErrInvalidDate.Error())
			return
		}
	}

	result, err := h.recService.Today(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidGoal), errors.Is(err, service.ErrInvalidFitnessLevel):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidUserID):
			abortWithError(c, http.StatusNotFound, "User not found")
		default:
			h.log.Error("Recommendation failed", "user_id", userID, "error", err)
			abortWithError(c, http.StatusInternalServerError, "Failed to compute recommendations.")
		}
		return
	}
	h.metrics.CounterRecommendations.WithLabelValues(string(result.Goal)).Inc()
	h.metrics.HistRecommendedExercises.Observe(float64(len(result.Recommendations)))
	c.JSON(http.StatusOK, result)
}
