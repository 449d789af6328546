package attachment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rentdesk/backend/internal/domain/attachment"
	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PhotoService operates on one owner's gallery at a time. The primary flag
// and display order invariants are enforced by the photo repository inside
// row-locked transactions; this layer does owner resolution, the idempotent
// fast paths, and the best-effort blob work.
type PhotoService struct {
	photoRepo  attachment.PhotoRepository
	owners     ownerLookup
	storage    ObjectStorageService
	thumbnails ThumbnailGenerator
	config     ServiceConfig
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(
	photoRepo attachment.PhotoRepository,
	propertyRepo property.PropertyRepository,
	workOrderRepo property.WorkOrderRepository,
	storage ObjectStorageService,
	thumbnails ThumbnailGenerator,
) *PhotoService {
	return &PhotoService{
		photoRepo:  photoRepo,
		owners:     ownerLookup{propertyRepo: propertyRepo, workOrderRepo: workOrderRepo},
		storage:    storage,
		thumbnails: thumbnails,
		config:     DefaultServiceConfig(),
	}
}

// SetConfig sets the service configuration
func (s *PhotoService) SetConfig(config ServiceConfig) {
	s.config = config
}

// ListByOwner returns the owner's gallery ordered by display order. Photos
// whose thumbnail generation failed at confirmation time get one retry here.
func (s *PhotoService) ListByOwner(
	ctx context.Context,
	accountID uuid.UUID,
	ownerKind string,
	ownerID uuid.UUID,
) ([]PhotoResponse, error) {
	owner, err := attachment.NewOwnerRef(ownerKind, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.owners.exists(ctx, accountID, owner); err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.FindByOwner(ctx, accountID, owner)
	if err != nil {
		return nil, err
	}

	responses := ToPhotoResponses(photos)
	for i := range photos {
		s.retryThumbnail(ctx, &photos[i])
		s.enrichPhotoURLs(ctx, &responses[i], &photos[i])
	}
	return responses, nil
}

// GetByID returns a single photo with presigned URLs
func (s *PhotoService) GetByID(
	ctx context.Context,
	accountID uuid.UUID,
	photoID uuid.UUID,
) (*PhotoResponse, error) {
	photo, err := s.photoRepo.FindByIDForAccount(ctx, accountID, photoID)
	if err != nil {
		return nil, err
	}

	s.retryThumbnail(ctx, photo)
	response := ToPhotoResponse(photo)
	s.enrichPhotoURLs(ctx, &response, photo)
	return &response, nil
}

// SetPrimary makes the target photo its owner's primary photo. Setting an
// already-primary photo is a no-op that opens no transaction and issues no
// write.
func (s *PhotoService) SetPrimary(
	ctx context.Context,
	accountID uuid.UUID,
	ownerKind string,
	ownerID uuid.UUID,
	photoID uuid.UUID,
) (*PhotoResponse, error) {
	owner, err := attachment.NewOwnerRef(ownerKind, ownerID)
	if err != nil {
		return nil, err
	}

	photo, err := s.findOwned(ctx, accountID, owner, photoID)
	if err != nil {
		return nil, err
	}

	if photo.IsPrimary {
		response := ToPhotoResponse(photo)
		s.enrichPhotoURLs(ctx, &response, photo)
		return &response, nil
	}

	updated, err := s.photoRepo.SwapPrimary(ctx, accountID, owner, photoID)
	if err != nil {
		return nil, err
	}

	response := ToPhotoResponse(updated)
	s.enrichPhotoURLs(ctx, &response, updated)
	return &response, nil
}

// Reorder rewrites the owner's display orders to match the supplied id
// sequence. The sequence must be a permutation of the owner's current
// gallery; the repository re-validates that under lock. Primary flags are
// untouched. A no-op reorder still performs the writes.
func (s *PhotoService) Reorder(
	ctx context.Context,
	accountID uuid.UUID,
	req ReorderPhotosRequest,
) ([]PhotoResponse, error) {
	owner, err := attachment.NewOwnerRef(req.OwnerKind, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if len(req.PhotoIDs) == 0 {
		return nil, shared.NewValidation("EMPTY_PHOTO_LIST", "Photo ID list cannot be empty")
	}
	seen := make(map[uuid.UUID]bool, len(req.PhotoIDs))
	for _, id := range req.PhotoIDs {
		if seen[id] {
			return nil, shared.NewValidation("DUPLICATE_PHOTO_ID", "Photo ID list contains duplicates")
		}
		seen[id] = true
	}
	if err := s.owners.exists(ctx, accountID, owner); err != nil {
		return nil, err
	}

	photos, err := s.photoRepo.Reorder(ctx, accountID, owner, req.PhotoIDs)
	if err != nil {
		return nil, err
	}

	responses := ToPhotoResponses(photos)
	for i := range photos {
		s.enrichPhotoURLs(ctx, &responses[i], &photos[i])
	}
	return responses, nil
}

// Delete removes a photo permanently. Blob objects are deleted before the
// database row; a blob failure is logged and the row delete proceeds, since
// an orphaned blob only costs storage while an orphaned row corrupts the
// gallery. No new primary is promoted: when the deleted photo was primary
// the response names the next photo by display order and the caller follows
// up with SetPrimary.
func (s *PhotoService) Delete(
	ctx context.Context,
	accountID uuid.UUID,
	ownerKind string,
	ownerID uuid.UUID,
	photoID uuid.UUID,
) (*DeletePhotoResponse, error) {
	owner, err := attachment.NewOwnerRef(ownerKind, ownerID)
	if err != nil {
		return nil, err
	}

	photo, err := s.findOwned(ctx, accountID, owner, photoID)
	if err != nil {
		return nil, err
	}

	if err := s.storage.DeleteObject(ctx, photo.StorageKey); err != nil {
		slog.WarnContext(ctx, "failed to delete photo blob, proceeding with row delete",
			"photo_id", photo.ID,
			"storage_key", photo.StorageKey,
			"error", err)
	}
	if photo.ThumbnailStorageKey != nil {
		if err := s.storage.DeleteObject(ctx, *photo.ThumbnailStorageKey); err != nil {
			slog.WarnContext(ctx, "failed to delete photo thumbnail blob",
				"photo_id", photo.ID,
				"thumbnail_key", *photo.ThumbnailStorageKey,
				"error", err)
		}
	}

	if err := s.photoRepo.HardDelete(ctx, accountID, owner, photoID); err != nil {
		return nil, err
	}

	response := &DeletePhotoResponse{
		DeletedID:  photoID,
		WasPrimary: photo.IsPrimary,
	}
	if photo.IsPrimary {
		response.SuggestedPrimaryID = s.nextByDisplayOrder(ctx, accountID, owner, photoID)
	}
	return response, nil
}

// findOwned loads a photo and checks it belongs to the given owner. A photo
// of a different owner or account is reported as absent.
func (s *PhotoService) findOwned(
	ctx context.Context,
	accountID uuid.UUID,
	owner attachment.OwnerRef,
	photoID uuid.UUID,
) (*attachment.Photo, error) {
	photo, err := s.photoRepo.FindByIDForAccount(ctx, accountID, photoID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("PHOTO_NOT_FOUND", "Photo not found")
		}
		return nil, err
	}
	if photo.Owner != owner {
		return nil, shared.NewNotFound("PHOTO_NOT_FOUND", "Photo not found")
	}
	return photo, nil
}

// nextByDisplayOrder returns the id of the remaining photo with the lowest
// display order, or nil when the gallery is now empty. Errors are swallowed;
// the hint is advisory.
func (s *PhotoService) nextByDisplayOrder(
	ctx context.Context,
	accountID uuid.UUID,
	owner attachment.OwnerRef,
	deletedID uuid.UUID,
) *uuid.UUID {
	photos, err := s.photoRepo.FindByOwner(ctx, accountID, owner)
	if err != nil || len(photos) == 0 {
		return nil
	}
	for i := range photos {
		if photos[i].ID != deletedID {
			return &photos[i].ID
		}
	}
	return nil
}

// retryThumbnail attempts thumbnail generation for a photo that has none.
// Failures are logged and the photo stays thumbnail-less until the next read.
func (s *PhotoService) retryThumbnail(ctx context.Context, photo *attachment.Photo) {
	if photo.ThumbnailStorageKey != nil || s.thumbnails == nil {
		return
	}
	thumbKey, err := s.thumbnails.Generate(ctx, photo.StorageKey)
	if err != nil {
		slog.WarnContext(ctx, "lazy thumbnail retry failed",
			"photo_id", photo.ID,
			"storage_key", photo.StorageKey,
			"error", err)
		return
	}
	if err := photo.SetThumbnailKey(thumbKey); err != nil {
		return
	}
	if err := s.photoRepo.Save(ctx, photo); err != nil {
		slog.WarnContext(ctx, "failed to persist regenerated thumbnail key",
			"photo_id", photo.ID,
			"error", err)
	}
}

// enrichPhotoURLs adds presigned download URLs to a photo response
func (s *PhotoService) enrichPhotoURLs(ctx context.Context, response *PhotoResponse, photo *attachment.Photo) {
	if url, _, err := s.storage.GenerateDownloadURL(ctx, photo.StorageKey, s.config.DownloadURLExpiry); err == nil {
		response.URL = url
	}
	if photo.ThumbnailStorageKey != nil {
		if url, _, err := s.storage.GenerateDownloadURL(ctx, *photo.ThumbnailStorageKey, s.config.DownloadURLExpiry); err == nil {
			response.ThumbnailURL = url
		}
	}
}
