package attachment

import (
	"context"
	"strings"
	"time"
)

// AllowedReceiptContentTypes is the whitelist for receipt uploads. Receipts
// are scans or exports, so images and the common document formats are
// accepted. SVG is excluded from every whitelist because it can carry
// scripts.
var AllowedReceiptContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/heic":      true,
	"application/pdf": true,
}

// AllowedPhotoContentTypes is the whitelist for property and work order
// photo uploads
var AllowedPhotoContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/heic": true,
}

// ObjectStorageService is the blob store gateway. Implemented by the
// infrastructure layer (S3 or a stub); the attachment services only ever
// hand out presigned URLs and issue best-effort deletes through it.
type ObjectStorageService interface {
	// GenerateUploadURL returns a presigned URL the client PUTs the file to
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL returns a presigned GET URL for an object
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes an object. Deleting a missing object is not an
	// error.
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks whether an object is present in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// ThumbnailGenerator produces a thumbnail for an uploaded photo and returns
// the thumbnail's storage key. Generation is best-effort everywhere it is
// called: a failure leaves the photo without a thumbnail and is retried
// lazily the next time the photo is read.
type ThumbnailGenerator interface {
	Generate(ctx context.Context, storageKey string) (string, error)
}

// ServiceConfig holds shared configuration for the attachment services
type ServiceConfig struct {
	// UploadURLExpiry is the duration for which upload URLs are valid
	UploadURLExpiry time.Duration
	// DownloadURLExpiry is the duration for which download URLs are valid
	DownloadURLExpiry time.Duration
	// MaxPhotosPerOwner caps the gallery size of one property or work order
	MaxPhotosPerOwner int
}

// DefaultServiceConfig returns the default configuration
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		UploadURLExpiry:   15 * time.Minute,
		DownloadURLExpiry: 1 * time.Hour,
		MaxPhotosPerOwner: 50,
	}
}

// isAllowedReceiptContentType checks a content type against the receipt whitelist
func isAllowedReceiptContentType(contentType string) bool {
	return AllowedReceiptContentTypes[strings.ToLower(contentType)]
}

// isAllowedPhotoContentType checks a content type against the photo whitelist
func isAllowedPhotoContentType(contentType string) bool {
	return AllowedPhotoContentTypes[strings.ToLower(contentType)]
}
