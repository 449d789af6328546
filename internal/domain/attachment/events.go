package attachment

import (
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeReceipt = "Receipt"
	AggregateTypePhoto   = "Photo"
)

// Event type constants
const (
	EventTypeReceiptUploaded     = "ReceiptUploaded"
	EventTypeReceiptLinked       = "ReceiptLinked"
	EventTypeReceiptUnlinked     = "ReceiptUnlinked"
	EventTypeReceiptDeleted      = "ReceiptDeleted"
	EventTypePhotoUploaded       = "PhotoUploaded"
	EventTypePhotoPrimaryChanged = "PhotoPrimaryChanged"
)

// ReceiptUploadedEvent is published when a receipt upload is confirmed
type ReceiptUploadedEvent struct {
	shared.BaseDomainEvent
	ReceiptID  uuid.UUID  `json:"receipt_id"`
	PropertyID *uuid.UUID `json:"property_id,omitempty"`
	FileName   string     `json:"file_name"`
	StorageKey string     `json:"storage_key"`
}

// NewReceiptUploadedEvent creates a new ReceiptUploadedEvent
func NewReceiptUploadedEvent(r *Receipt) *ReceiptUploadedEvent {
	return &ReceiptUploadedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeReceiptUploaded, AggregateTypeReceipt, r.ID, r.AccountID),
		ReceiptID:  r.ID,
		PropertyID: r.PropertyID,
		FileName:   r.OriginalFileName,
		StorageKey: r.StorageKey,
	}
}

// ReceiptLinkedEvent is published when a receipt is linked to an expense
type ReceiptLinkedEvent struct {
	shared.BaseDomainEvent
	ReceiptID uuid.UUID `json:"receipt_id"`
	ExpenseID uuid.UUID `json:"expense_id"`
}

// NewReceiptLinkedEvent creates a new ReceiptLinkedEvent
func NewReceiptLinkedEvent(r *Receipt, expenseID uuid.UUID) *ReceiptLinkedEvent {
	return &ReceiptLinkedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeReceiptLinked, AggregateTypeReceipt, r.ID, r.AccountID),
		ReceiptID: r.ID,
		ExpenseID: expenseID,
	}
}

// ReceiptUnlinkedEvent is published when a receipt is detached from an expense
type ReceiptUnlinkedEvent struct {
	shared.BaseDomainEvent
	ReceiptID uuid.UUID `json:"receipt_id"`
	ExpenseID uuid.UUID `json:"expense_id"`
}

// NewReceiptUnlinkedEvent creates a new ReceiptUnlinkedEvent
func NewReceiptUnlinkedEvent(r *Receipt, expenseID uuid.UUID) *ReceiptUnlinkedEvent {
	return &ReceiptUnlinkedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeReceiptUnlinked, AggregateTypeReceipt, r.ID, r.AccountID),
		ReceiptID: r.ID,
		ExpenseID: expenseID,
	}
}

// ReceiptDeletedEvent is published when a receipt is soft-deleted
type ReceiptDeletedEvent struct {
	shared.BaseDomainEvent
	ReceiptID  uuid.UUID `json:"receipt_id"`
	StorageKey string    `json:"storage_key"`
}

// NewReceiptDeletedEvent creates a new ReceiptDeletedEvent
func NewReceiptDeletedEvent(r *Receipt) *ReceiptDeletedEvent {
	return &ReceiptDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypeReceiptDeleted, AggregateTypeReceipt, r.ID, r.AccountID),
		ReceiptID:  r.ID,
		StorageKey: r.StorageKey,
	}
}

// PhotoUploadedEvent is published when a photo upload is confirmed
type PhotoUploadedEvent struct {
	shared.BaseDomainEvent
	PhotoID    uuid.UUID `json:"photo_id"`
	OwnerKind  OwnerKind `json:"owner_kind"`
	OwnerID    uuid.UUID `json:"owner_id"`
	StorageKey string    `json:"storage_key"`
}

// NewPhotoUploadedEvent creates a new PhotoUploadedEvent
func NewPhotoUploadedEvent(p *Photo) *PhotoUploadedEvent {
	return &PhotoUploadedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypePhotoUploaded, AggregateTypePhoto, p.ID, p.AccountID),
		PhotoID:    p.ID,
		OwnerKind:  p.Owner.Kind,
		OwnerID:    p.Owner.ID,
		StorageKey: p.StorageKey,
	}
}

// PhotoPrimaryChangedEvent is published when a photo becomes its owner's primary
type PhotoPrimaryChangedEvent struct {
	shared.BaseDomainEvent
	PhotoID   uuid.UUID `json:"photo_id"`
	OwnerKind OwnerKind `json:"owner_kind"`
	OwnerID   uuid.UUID `json:"owner_id"`
}

// NewPhotoPrimaryChangedEvent creates a new PhotoPrimaryChangedEvent
func NewPhotoPrimaryChangedEvent(p *Photo) *PhotoPrimaryChangedEvent {
	return &PhotoPrimaryChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(
			EventTypePhotoPrimaryChanged, AggregateTypePhoto, p.ID, p.AccountID),
		PhotoID:   p.ID,
		OwnerKind: p.Owner.Kind,
		OwnerID:   p.Owner.ID,
	}
}
