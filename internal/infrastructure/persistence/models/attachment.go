package models

import (
	"time"

	"github.com/rentdesk/backend/internal/domain/attachment"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReceiptModel is the persistence model for the Receipt domain entity.
// Note: This model uses a custom embedded struct instead of
// AccountAggregateModel because the receipts table doesn't have a created_by
// column (uses uploaded_by instead).
type ReceiptModel struct {
	AggregateModel
	AccountID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	StorageKey       string     `gorm:"column:storage_key;type:varchar(500);not null"`
	OriginalFileName string     `gorm:"column:original_file_name;type:varchar(255);not null"`
	ContentType      string     `gorm:"column:content_type;type:varchar(100);not null"`
	FileSizeBytes    int64      `gorm:"column:file_size_bytes;type:bigint;not null"`
	UploadedBy       *uuid.UUID `gorm:"column:uploaded_by;type:uuid"`
	PropertyID       *uuid.UUID `gorm:"column:property_id;type:uuid;index"`
	ExpenseID        *uuid.UUID `gorm:"column:expense_id;type:uuid;uniqueIndex"`
	ProcessedAt      *time.Time `gorm:"column:processed_at"`
	DeletedAt        *time.Time `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToDomain converts the persistence model to a domain Receipt entity.
func (m *ReceiptModel) ToDomain() *attachment.Receipt {
	return &attachment.Receipt{
		AccountAggregateRoot: shared.AccountAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			AccountID: m.AccountID,
			CreatedBy: nil, // receipts uses uploaded_by instead of created_by
		},
		StorageKey:       m.StorageKey,
		OriginalFileName: m.OriginalFileName,
		ContentType:      m.ContentType,
		FileSizeBytes:    m.FileSizeBytes,
		UploadedBy:       m.UploadedBy,
		PropertyID:       m.PropertyID,
		ExpenseID:        m.ExpenseID,
		ProcessedAt:      m.ProcessedAt,
		DeletedAt:        m.DeletedAt,
	}
}

// FromDomain populates the persistence model from a domain Receipt entity.
func (m *ReceiptModel) FromDomain(r *attachment.Receipt) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.AccountID = r.AccountID
	m.StorageKey = r.StorageKey
	m.OriginalFileName = r.OriginalFileName
	m.ContentType = r.ContentType
	m.FileSizeBytes = r.FileSizeBytes
	m.UploadedBy = r.UploadedBy
	m.PropertyID = r.PropertyID
	m.ExpenseID = r.ExpenseID
	m.ProcessedAt = r.ProcessedAt
	m.DeletedAt = r.DeletedAt
}

// ReceiptModelFromDomain creates a new persistence model from a domain Receipt entity.
func ReceiptModelFromDomain(r *attachment.Receipt) *ReceiptModel {
	m := &ReceiptModel{}
	m.FromDomain(r)
	return m
}

// PhotoModel is the persistence model for the Photo domain entity. The owner
// reference is stored flattened as (owner_kind, owner_id); the pair together
// with account_id forms the gallery partition the primary and display-order
// invariants apply to.
type PhotoModel struct {
	AggregateModel
	AccountID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	OwnerKind           string     `gorm:"column:owner_kind;type:varchar(20);not null;index:idx_photos_owner"`
	OwnerID             uuid.UUID  `gorm:"column:owner_id;type:uuid;not null;index:idx_photos_owner"`
	StorageKey          string     `gorm:"column:storage_key;type:varchar(500);not null"`
	ThumbnailStorageKey *string    `gorm:"column:thumbnail_storage_key;type:varchar(500)"`
	OriginalFileName    string     `gorm:"column:original_file_name;type:varchar(255);not null"`
	ContentType         string     `gorm:"column:content_type;type:varchar(100);not null"`
	FileSizeBytes       int64      `gorm:"column:file_size_bytes;type:bigint;not null"`
	UploadedBy          *uuid.UUID `gorm:"column:uploaded_by;type:uuid"`
	IsPrimary           bool       `gorm:"column:is_primary;not null;default:false"`
	DisplayOrder        int        `gorm:"column:display_order;type:integer;not null;default:0"`
	DeletedAt           *time.Time `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM
func (PhotoModel) TableName() string {
	return "photos"
}

// ToDomain converts the persistence model to a domain Photo entity.
func (m *PhotoModel) ToDomain() *attachment.Photo {
	return &attachment.Photo{
		AccountAggregateRoot: shared.AccountAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			AccountID: m.AccountID,
			CreatedBy: nil, // photos uses uploaded_by instead of created_by
		},
		Owner: attachment.OwnerRef{
			Kind: attachment.OwnerKind(m.OwnerKind),
			ID:   m.OwnerID,
		},
		StorageKey:          m.StorageKey,
		ThumbnailStorageKey: m.ThumbnailStorageKey,
		OriginalFileName:    m.OriginalFileName,
		ContentType:         m.ContentType,
		FileSizeBytes:       m.FileSizeBytes,
		UploadedBy:          m.UploadedBy,
		IsPrimary:           m.IsPrimary,
		DisplayOrder:        m.DisplayOrder,
		DeletedAt:           m.DeletedAt,
	}
}

// FromDomain populates the persistence model from a domain Photo entity.
func (m *PhotoModel) FromDomain(p *attachment.Photo) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.AccountID = p.AccountID
	m.OwnerKind = string(p.Owner.Kind)
	m.OwnerID = p.Owner.ID
	m.StorageKey = p.StorageKey
	m.ThumbnailStorageKey = p.ThumbnailStorageKey
	m.OriginalFileName = p.OriginalFileName
	m.ContentType = p.ContentType
	m.FileSizeBytes = p.FileSizeBytes
	m.UploadedBy = p.UploadedBy
	m.IsPrimary = p.IsPrimary
	m.DisplayOrder = p.DisplayOrder
	m.DeletedAt = p.DeletedAt
}

// PhotoModelFromDomain creates a new persistence model from a domain Photo entity.
func PhotoModelFromDomain(p *attachment.Photo) *PhotoModel {
	m := &PhotoModel{}
	m.FromDomain(p)
	return m
}
