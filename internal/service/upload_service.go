package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"time"

	"menucraft/internal/storage"

	"github.com/google/uuid"
)

// MaxImageSize caps uploaded images at 5 MiB
const MaxImageSize = 5 << 20

var (
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrImageTooLarge        = errors.New("image exceeds the maximum allowed size")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var filenameSanitizePattern = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// UploadService validates the uploaded image and hands it to the object
// store, returning the public URL to persist on the owning record.
type UploadService interface {
	UploadImage(ctx context.Context, profileID uuid.UUID, filename, contentType string, size int64, body io.Reader) (string, error)
}

type uploadService struct {
	store storage.ObjectStore
}

// NewUploadService creates a new instance of UploadService
func NewUploadService(store storage.ObjectStore) UploadService {
	return &uploadService{store: store}
}

func (s *uploadService) UploadImage(ctx context.Context, profileID uuid.UUID, filename, contentType string, size int64, body io.Reader) (string, error) {
	if !allowedImageTypes[contentType] {
		return "", ErrUnsupportedImageType
	}
	if size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	key := objectKey(profileID, filename)

	url, err := s.store.Put(ctx, key, contentType, body)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return url, nil
}

// objectKey namespaces uploads per profile and prefixes a timestamp so
// re-uploads of the same filename never collide.
func objectKey(profileID uuid.UUID, filename string) string {
	sanitized := filenameSanitizePattern.ReplaceAllString(filename, "_")
	return fmt.Sprintf("%s/%d-%s", profileID, time.Now().UnixMilli(), sanitized)
}
