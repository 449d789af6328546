package attachment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rentdesk/backend/internal/domain/attachment"
	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ownerLookup resolves photo owners against their backing repositories.
// A missing, soft-deleted or foreign-account owner is reported as absence,
// never as a distinct forbidden signal.
type ownerLookup struct {
	propertyRepo  property.PropertyRepository
	workOrderRepo property.WorkOrderRepository
}

func (l ownerLookup) exists(ctx context.Context, accountID uuid.UUID, owner attachment.OwnerRef) error {
	var err error
	switch owner.Kind {
	case attachment.OwnerKindProperty:
		_, err = l.propertyRepo.FindByIDForAccount(ctx, accountID, owner.ID)
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFound("PROPERTY_NOT_FOUND", "Property not found")
		}
	case attachment.OwnerKindWorkOrder:
		_, err = l.workOrderRepo.FindByIDForAccount(ctx, accountID, owner.ID)
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFound("WORK_ORDER_NOT_FOUND", "Work order not found")
		}
	default:
		return shared.NewValidation("INVALID_PHOTO_OWNER",
			"Photos can only be attached to properties and work orders")
	}
	return err
}

// UploadService issues presigned upload URLs and turns confirmed uploads
// into receipt and photo records. Confirmation trusts the client's completed
// upload; the object is not re-verified against storage.
type UploadService struct {
	receiptRepo attachment.ReceiptRepository
	photoRepo   attachment.PhotoRepository
	owners      ownerLookup
	storage     ObjectStorageService
	thumbnails  ThumbnailGenerator
	config      ServiceConfig
}

// NewUploadService creates a new UploadService
func NewUploadService(
	receiptRepo attachment.ReceiptRepository,
	photoRepo attachment.PhotoRepository,
	propertyRepo property.PropertyRepository,
	workOrderRepo property.WorkOrderRepository,
	storage ObjectStorageService,
	thumbnails ThumbnailGenerator,
) *UploadService {
	return &UploadService{
		receiptRepo: receiptRepo,
		photoRepo:   photoRepo,
		owners:      ownerLookup{propertyRepo: propertyRepo, workOrderRepo: workOrderRepo},
		storage:     storage,
		thumbnails:  thumbnails,
		config:      DefaultServiceConfig(),
	}
}

// SetConfig sets the service configuration
func (s *UploadService) SetConfig(config ServiceConfig) {
	s.config = config
}

// GenerateReceiptUploadURL returns a presigned URL for a receipt upload
// along with the storage key the client must echo back on confirmation
func (s *UploadService) GenerateReceiptUploadURL(
	ctx context.Context,
	accountID uuid.UUID,
	req ReceiptUploadURLRequest,
) (*UploadURLResponse, error) {
	if !isAllowedReceiptContentType(req.ContentType) {
		return nil, shared.NewValidation("DISALLOWED_CONTENT_TYPE",
			fmt.Sprintf("Content type '%s' is not allowed for receipts", req.ContentType))
	}
	if req.PropertyID != nil {
		if err := s.owners.exists(ctx, accountID, attachment.PropertyOwner(*req.PropertyID)); err != nil {
			return nil, err
		}
	}

	storageKey := attachment.BuildStorageKey(accountID, attachment.OwnerKindExpense, req.FileName)

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, req.ContentType, s.config.UploadURLExpiry)
	if err != nil {
		return nil, shared.NewInternal("UPLOAD_URL_FAILED", "Failed to generate upload URL")
	}

	return &UploadURLResponse{
		UploadURL:  uploadURL,
		StorageKey: storageKey,
		ExpiresAt:  expiresAt,
	}, nil
}

// GeneratePhotoUploadURL returns a presigned URL for a photo upload. The
// thumbnail key is derived up front so the client and the thumbnail
// generator agree on where it will live.
func (s *UploadService) GeneratePhotoUploadURL(
	ctx context.Context,
	accountID uuid.UUID,
	req PhotoUploadURLRequest,
) (*UploadURLResponse, error) {
	owner, err := attachment.NewOwnerRef(req.OwnerKind, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if !isAllowedPhotoContentType(req.ContentType) {
		return nil, shared.NewValidation("DISALLOWED_CONTENT_TYPE",
			fmt.Sprintf("Content type '%s' is not allowed for photos", req.ContentType))
	}
	if err := s.owners.exists(ctx, accountID, owner); err != nil {
		return nil, err
	}

	count, err := s.photoRepo.CountByOwner(ctx, accountID, owner)
	if err != nil {
		return nil, err
	}
	if count >= int64(s.config.MaxPhotosPerOwner) {
		return nil, shared.NewConflict("PHOTO_LIMIT_EXCEEDED",
			fmt.Sprintf("Maximum %d photos per %s allowed", s.config.MaxPhotosPerOwner, owner.Kind))
	}

	storageKey := attachment.BuildStorageKey(accountID, owner.Kind, req.FileName)
	thumbnailKey := attachment.ThumbnailKeyFor(storageKey)

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, req.ContentType, s.config.UploadURLExpiry)
	if err != nil {
		return nil, shared.NewInternal("UPLOAD_URL_FAILED", "Failed to generate upload URL")
	}

	return &UploadURLResponse{
		UploadURL:           uploadURL,
		StorageKey:          storageKey,
		ThumbnailStorageKey: &thumbnailKey,
		ExpiresAt:           expiresAt,
	}, nil
}

// ConfirmReceiptUpload records a completed receipt upload
func (s *UploadService) ConfirmReceiptUpload(
	ctx context.Context,
	accountID uuid.UUID,
	req ConfirmReceiptUploadRequest,
	uploadedBy *uuid.UUID,
) (*ReceiptResponse, error) {
	if !isAllowedReceiptContentType(req.ContentType) {
		return nil, shared.NewValidation("DISALLOWED_CONTENT_TYPE",
			fmt.Sprintf("Content type '%s' is not allowed for receipts", req.ContentType))
	}
	if req.PropertyID != nil {
		if err := s.owners.exists(ctx, accountID, attachment.PropertyOwner(*req.PropertyID)); err != nil {
			return nil, err
		}
	}

	receipt, err := attachment.NewReceipt(
		accountID,
		req.StorageKey,
		req.FileName,
		req.ContentType,
		req.FileSize,
		uploadedBy,
		req.PropertyID,
	)
	if err != nil {
		return nil, err
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	response := ToReceiptResponse(receipt)
	if url, _, err := s.storage.GenerateDownloadURL(ctx, receipt.StorageKey, s.config.DownloadURLExpiry); err == nil {
		response.URL = url
	}
	return &response, nil
}

// ConfirmPhotoUpload records a completed photo upload. Placement (primary
// flag and display order) is assigned transactionally against the owner's
// current gallery. Thumbnail generation is attempted once here and retried
// lazily on read if it fails.
func (s *UploadService) ConfirmPhotoUpload(
	ctx context.Context,
	accountID uuid.UUID,
	req ConfirmPhotoUploadRequest,
	uploadedBy *uuid.UUID,
) (*PhotoResponse, error) {
	owner, err := attachment.NewOwnerRef(req.OwnerKind, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if !isAllowedPhotoContentType(req.ContentType) {
		return nil, shared.NewValidation("DISALLOWED_CONTENT_TYPE",
			fmt.Sprintf("Content type '%s' is not allowed for photos", req.ContentType))
	}
	if err := s.owners.exists(ctx, accountID, owner); err != nil {
		return nil, err
	}

	count, err := s.photoRepo.CountByOwner(ctx, accountID, owner)
	if err != nil {
		return nil, err
	}
	if count >= int64(s.config.MaxPhotosPerOwner) {
		return nil, shared.NewConflict("PHOTO_LIMIT_EXCEEDED",
			fmt.Sprintf("Maximum %d photos per %s allowed", s.config.MaxPhotosPerOwner, owner.Kind))
	}

	photo, err := attachment.NewPhoto(
		accountID,
		owner,
		req.StorageKey,
		req.ThumbnailStorageKey,
		req.FileName,
		req.ContentType,
		req.FileSize,
		uploadedBy,
	)
	if err != nil {
		return nil, err
	}

	if photo.ThumbnailStorageKey == nil && s.thumbnails != nil {
		thumbKey, err := s.thumbnails.Generate(ctx, photo.StorageKey)
		if err != nil {
			slog.WarnContext(ctx, "thumbnail generation failed, will retry on read",
				"storage_key", photo.StorageKey,
				"error", err)
		} else if err := photo.SetThumbnailKey(thumbKey); err != nil {
			return nil, err
		}
	}

	if err := s.photoRepo.CreateWithPlacement(ctx, photo); err != nil {
		return nil, err
	}

	response := ToPhotoResponse(photo)
	s.enrichPhotoURLs(ctx, &response, photo)
	return &response, nil
}

// enrichPhotoURLs adds presigned download URLs to a photo response
func (s *UploadService) enrichPhotoURLs(ctx context.Context, response *PhotoResponse, photo *attachment.Photo) {
	if url, _, err := s.storage.GenerateDownloadURL(ctx, photo.StorageKey, s.config.DownloadURLExpiry); err == nil {
		response.URL = url
	}
	if photo.ThumbnailStorageKey != nil {
		if url, _, err := s.storage.GenerateDownloadURL(ctx, *photo.ThumbnailStorageKey, s.config.DownloadURLExpiry); err == nil {
			response.ThumbnailURL = url
		}
	}
}
