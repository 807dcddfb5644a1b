package service

import (
	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/repository"
	"alcyxob/fitness-recommender/internal/storage"
	"context"
	"errors"
	"fmt"
	"strings"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrInvalidContentType = errors.New("media must be an image or video")
	ErrMediaKeyMismatch   = errors.New("media key does not belong to this exercise")
	ErrMediaUnavailable   = errors.New("failed to generate media URL")
	ErrMediaNotUploaded   = errors.New("media object has not been uploaded")
)

// ExerciseDetail is an exercise together with a temporary media URL.
type ExerciseDetail struct {
	domain.Exercise
	MediaURL string `json:"mediaUrl,omitempty"`
}

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // The key the client reports back on confirm
}

type ExerciseService interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	GetExercise(ctx context.Context, id int) (*ExerciseDetail, error)
	RequestMediaUploadURL(ctx context.Context, id int, contentType string) (*UploadURLResponse, error)
	ConfirmMediaUpload(ctx context.Context, id int, objectKey string) (*ExerciseDetail, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	media        storage.MediaStorage
	log          *logger.Logger
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, media storage.MediaStorage, log *logger.Logger) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		media:        media,
		log:          log,
	}
}

// ListExercises returns the whole catalog in ID order.
func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// GetExercise returns one exercise with a presigned media URL when it has media.
func (s *exerciseService) GetExercise(ctx context.Context, id int) (*ExerciseDetail, error) {
	exercise, err := s.getExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withMedia(ctx, exercise), nil
}

func (s *exerciseService) getExercise(ctx context.Context, id int) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// withMedia never fails: a presign error only drops the URL.
func (s *exerciseService) withMedia(ctx context.Context, exercise *domain.Exercise) *ExerciseDetail {
	detail := &ExerciseDetail{Exercise: *exercise}
	if exercise.MediaKey == "" {
		return detail
	}
	url, err := s.media.PresignedDownloadURL(ctx, exercise.MediaKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		s.log.Warn("Media URL unavailable", "exercise_id", exercise.ID, "error", err)
		return detail
	}
	detail.MediaURL = url
	return detail
}

// RequestMediaUploadURL issues a presigned PUT for a new demo file.
func (s *exerciseService) RequestMediaUploadURL(ctx context.Context, id int, contentType string) (*UploadURLResponse, error) {
	ct := strings.ToLower(contentType)
	if !strings.HasPrefix(ct, "image/") && !strings.HasPrefix(ct, "video/") {
		return nil, ErrInvalidContentType
	}
	if _, err := s.getExercise(ctx, id); err != nil {
		return nil, err
	}

	objectKey := storage.ExerciseMediaKey(id, ct)
	uploadURL, err := s.media.PresignedUploadURL(ctx, objectKey, ct, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrMediaUnavailable
	}
	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// ConfirmMediaUpload points the exercise at a freshly uploaded object and
// removes the previous one.
func (s *exerciseService) ConfirmMediaUpload(ctx context.Context, id int, objectKey string) (*ExerciseDetail, error) {
	if !strings.HasPrefix(objectKey, fmt.Sprintf("exercise-media/%d/", id)) {
		return nil, ErrMediaKeyMismatch
	}
	exercise, err := s.getExercise(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.media.ObjectExists(ctx, objectKey)
	if err != nil {
		return nil, fmt.Errorf("checking uploaded media: %w", err)
	}
	if !exists {
		return nil, ErrMediaNotUploaded
	}

	if err = s.exerciseRepo.SetMediaKey(ctx, id, objectKey); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	if previous := exercise.MediaKey; previous != "" && previous != objectKey {
		if err := s.media.DeleteObject(ctx, previous); err != nil {
			// The new media is already live; an orphaned object is harmless.
			s.log.Warn("Failed to delete previous exercise media", "exercise_id", id, "key", previous, "error", err)
		}
	}

	exercise.MediaKey = objectKey
	return s.withMedia(ctx, exercise), nil
}
