package api

import (
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	log             *logger.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, log *logger.Logger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, log: log}
}

// MediaUploadRequest asks for a presigned upload URL.
type MediaUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// ConfirmMediaRequest reports a finished upload.
type ConfirmMediaRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

func parseExerciseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return 0, false
	}
	return id, true
}

// ListExercises godoc
// @Summary List the exercise catalog
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Exercise
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list exercises", "error", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise godoc
// @Summary Get one exercise with its media URL
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} service.ExerciseDetail
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, ok := parseExerciseID(c)
	if !ok {
		return
	}
	detail, err := h.exerciseService.GetExercise(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// RequestMediaUpload returns a presigned URL for uploading demo media.
// @Router /exercises/{id}/media/upload-url [post]
func (h *ExerciseHandler) RequestMediaUpload(c *gin.Context) {
	id, ok := parseExerciseID(c)
	if !ok {
		return
	}
	var req MediaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp, err := h.exerciseService.RequestMediaUploadURL(c.Request.Context(), id, req.ContentType)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmMediaUpload attaches an uploaded object to the exercise.
// @Router /exercises/{id}/media [put]
func (h *ExerciseHandler) ConfirmMediaUpload(c *gin.Context) {
	id, ok := parseExerciseID(c)
	if !ok {
		return
	}
	var req ConfirmMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	detail, err := h.exerciseService.ConfirmMediaUpload(c.Request.Context(), id, req.ObjectKey)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ExerciseHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidContentType), errors.Is(err, service.ErrMediaKeyMismatch), errors.Is(err, service.ErrMediaNotUploaded):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("Exercise request failed", "error", err)
		abortWithError(c, http.StatusInternalServerError, "Failed to process exercise request.")
	}
}
