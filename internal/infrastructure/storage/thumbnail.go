package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	"image/jpeg"
	_ "image/png" // register decoder

	attachmentapp "github.com/rentdesk/backend/internal/application/attachment"
	"github.com/rentdesk/backend/internal/domain/attachment"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// Ensure S3ThumbnailGenerator implements ThumbnailGenerator
var _ attachmentapp.ThumbnailGenerator = (*S3ThumbnailGenerator)(nil)

// S3ThumbnailGenerator renders JPEG thumbnails for uploaded photos and writes
// them back to object storage under the thumbs/ convention. Formats the
// standard image decoders cannot handle (webp, heic) fail; callers treat
// generation as best-effort and retry on the next read.
type S3ThumbnailGenerator struct {
	storage *S3ObjectStorage
	maxDim  int
	logger  *zap.Logger
}

// NewS3ThumbnailGenerator creates a thumbnail generator. maxDim bounds the
// longer edge of the thumbnail in pixels; zero falls back to 320.
func NewS3ThumbnailGenerator(storage *S3ObjectStorage, maxDim int, logger *zap.Logger) *S3ThumbnailGenerator {
	if maxDim <= 0 {
		maxDim = 320
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &S3ThumbnailGenerator{
		storage: storage,
		maxDim:  maxDim,
		logger:  logger,
	}
}

// Generate downloads the original photo, scales it down and uploads the
// result. Returns the thumbnail's storage key.
func (g *S3ThumbnailGenerator) Generate(ctx context.Context, storageKey string) (string, error) {
	data, err := g.storage.Download(ctx, storageKey)
	if err != nil {
		return "", fmt.Errorf("failed to fetch original photo: %w", err)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode photo (%d bytes): %w", len(data), err)
	}

	thumb := scaleDown(src, g.maxDim)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	thumbnailKey := attachment.ThumbnailKeyFor(storageKey)
	if err := g.storage.Upload(ctx, thumbnailKey, buf.Bytes(), "image/jpeg"); err != nil {
		return "", fmt.Errorf("failed to store thumbnail: %w", err)
	}

	g.logger.Debug("Generated thumbnail",
		zap.String("storage_key", storageKey),
		zap.String("thumbnail_key", thumbnailKey),
		zap.String("source_format", format),
	)
	return thumbnailKey, nil
}

// scaleDown resizes an image so its longer edge is at most maxDim pixels.
// Images already within bounds are re-encoded without scaling.
func scaleDown(src image.Image, maxDim int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return src
	}

	var tw, th int
	if w >= h {
		tw = maxDim
		th = h * maxDim / w
	} else {
		th = maxDim
		tw = w * maxDim / h
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
