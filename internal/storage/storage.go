package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// MediaStorage is the object store holding exercise demo media.
type MediaStorage interface {
	// PresignedUploadURL returns a temporary URL accepting a PUT of objectKey.
	PresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// PresignedDownloadURL returns a temporary URL serving objectKey.
	PresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// ObjectExists reports whether objectKey has been uploaded.
	ObjectExists(ctx context.Context, objectKey string) (bool, error)

	DeleteObject(ctx context.Context, objectKey string) error
}

// ExerciseMediaKey builds a unique object key for a new demo file of an
// exercise, e.g. "exercise-media/7/3f2b...c1.gif".
func ExerciseMediaKey(exerciseID int, contentType string) string {
	ext := "bin"
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 && parts[1] != "" {
		ext = parts[1]
	}
	return path.Join("exercise-media", fmt.Sprint(exerciseID), fmt.Sprintf("%s.%s", uuid.NewString(), ext))
}
