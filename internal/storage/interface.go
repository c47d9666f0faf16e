package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	apperrors "teamforge/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxUploadSize is the largest accepted image blob (5 MiB).
const MaxUploadSize = 5 << 20

// allowedImageTypes is the closed set of accepted upload MIME types.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Storage defines the interface for object storage operations.
type Storage interface {
	// PutObject uploads an object to storage.
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
	// DeleteObject removes an object from storage.
	DeleteObject(ctx context.Context, key string) error
	// GetPresignedURL generates a pre-signed URL for downloading an object.
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// MediaKey is the deterministic blob location for a media item: one blob per
// media id, overwritten on re-upload.
func MediaKey(teamID, mediaID primitive.ObjectID) string {
	return fmt.Sprintf("teams/%s/media/%s", teamID.Hex(), mediaID.Hex())
}

// ValidateUpload rejects unsupported content types and oversized blobs before
// any network call is made.
func ValidateUpload(contentType string, size int64) error {
	if !allowedImageTypes[contentType] {
		return apperrors.ErrUploadUnsupportedType
	}
	if size > MaxUploadSize {
		return apperrors.ErrUploadTooLarge
	}
	return nil
}

// Ensure S3Client implements Storage interface
var _ Storage = (*S3Client)(nil)
