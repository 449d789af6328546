package attachment

import (
	"strings"
	"time"

	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Photo is an uploaded image attached to a property or a work order. Among
// the non-deleted photos of one owner, exactly one is primary whenever the
// set is non-empty, and display orders form a dense 0..n-1 sequence. Both
// invariants are maintained transactionally by the photo repository; the
// entity only carries the state.
type Photo struct {
	shared.AccountAggregateRoot
	Owner               OwnerRef
	StorageKey          string
	ThumbnailStorageKey *string // nil until thumbnail generation succeeds
	OriginalFileName    string
	ContentType         string
	FileSizeBytes       int64
	UploadedBy          *uuid.UUID
	IsPrimary           bool
	DisplayOrder        int
	DeletedAt           *time.Time
}

// NewPhoto creates a photo pending placement. IsPrimary and DisplayOrder are
// assigned by the repository when the photo is inserted, since both depend
// on the owner's current photo set.
func NewPhoto(
	accountID uuid.UUID,
	owner OwnerRef,
	storageKey string,
	thumbnailStorageKey *string,
	originalFileName string,
	contentType string,
	fileSizeBytes int64,
	uploadedBy *uuid.UUID,
) (*Photo, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewValidation("INVALID_ACCOUNT_ID", "Account ID cannot be empty")
	}
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if !owner.CanOwnPhotos() {
		return nil, shared.NewValidation("INVALID_PHOTO_OWNER",
			"Photos can only be attached to properties and work orders")
	}
	if err := validateFileName(originalFileName); err != nil {
		return nil, err
	}
	if err := validateContentType(contentType); err != nil {
		return nil, err
	}
	if !isImageContentType(contentType) {
		return nil, shared.NewValidation("INVALID_CONTENT_TYPE", "Photos require an image content type")
	}
	if err := validateFileSize(fileSizeBytes); err != nil {
		return nil, err
	}
	key, err := ParseStorageKey(storageKey)
	if err != nil {
		return nil, err
	}
	if err := key.RequireAccount(accountID); err != nil {
		return nil, err
	}
	if err := key.RequireNamespace(owner.Kind); err != nil {
		return nil, err
	}
	if thumbnailStorageKey != nil {
		thumbKey, err := ParseStorageKey(*thumbnailStorageKey)
		if err != nil {
			return nil, err
		}
		if err := thumbKey.RequireAccount(accountID); err != nil {
			return nil, err
		}
		if err := thumbKey.RequireNamespace(owner.Kind); err != nil {
			return nil, err
		}
	}

	photo := &Photo{
		AccountAggregateRoot: shared.NewAccountAggregateRoot(accountID),
		Owner:                owner,
		StorageKey:           storageKey,
		ThumbnailStorageKey:  thumbnailStorageKey,
		OriginalFileName:     originalFileName,
		ContentType:          contentType,
		FileSizeBytes:        fileSizeBytes,
		UploadedBy:           uploadedBy,
	}

	photo.AddDomainEvent(NewPhotoUploadedEvent(photo))

	return photo, nil
}

// IsDeleted returns true when the photo has been soft-deleted
func (p *Photo) IsDeleted() bool {
	return p.DeletedAt != nil
}

// MakePrimary flags the photo as its owner's primary photo. The repository
// clears the previous holder in the same transaction.
func (p *Photo) MakePrimary() error {
	if p.IsDeleted() {
		return shared.NewNotFound("PHOTO_NOT_FOUND", "Photo not found")
	}
	if p.IsPrimary {
		return nil
	}
	p.IsPrimary = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPhotoPrimaryChangedEvent(p))

	return nil
}

// ClearPrimary removes the primary flag
func (p *Photo) ClearPrimary() {
	if !p.IsPrimary {
		return
	}
	p.IsPrimary = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetDisplayOrder sets the photo's position in its owner's gallery
func (p *Photo) SetDisplayOrder(order int) error {
	if p.IsDeleted() {
		return shared.NewNotFound("PHOTO_NOT_FOUND", "Photo not found")
	}
	if order < 0 {
		return shared.NewValidation("INVALID_DISPLAY_ORDER", "Display order cannot be negative")
	}
	p.DisplayOrder = order
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetThumbnailKey records a generated thumbnail location
func (p *Photo) SetThumbnailKey(key string) error {
	if p.IsDeleted() {
		return shared.NewNotFound("PHOTO_NOT_FOUND", "Photo not found")
	}
	parsed, err := ParseStorageKey(key)
	if err != nil {
		return err
	}
	if err := parsed.RequireAccount(p.AccountID); err != nil {
		return err
	}
	if err := parsed.RequireNamespace(p.Owner.Kind); err != nil {
		return err
	}
	p.ThumbnailStorageKey = &key
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// isImageContentType checks if a content type is an image
func isImageContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "image/")
}
