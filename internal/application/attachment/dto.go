package attachment

import (
	"time"

	"github.com/rentdesk/backend/internal/domain/attachment"
	"github.com/rentdesk/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ============================================================================
// Request DTOs
// ============================================================================

// ReceiptUploadURLRequest asks for a presigned URL to upload a receipt
type ReceiptUploadURLRequest struct {
	FileName    string     `json:"file_name" binding:"required,min=1,max=255"`
	FileSize    int64      `json:"file_size" binding:"required,gt=0"`
	ContentType string     `json:"content_type" binding:"required"`
	PropertyID  *uuid.UUID `json:"property_id"`
}

// PhotoUploadURLRequest asks for a presigned URL to upload a photo
type PhotoUploadURLRequest struct {
	OwnerKind   string    `json:"owner_kind" binding:"required,oneof=property work_order"`
	OwnerID     uuid.UUID `json:"owner_id" binding:"required"`
	FileName    string    `json:"file_name" binding:"required,min=1,max=255"`
	FileSize    int64     `json:"file_size" binding:"required,gt=0"`
	ContentType string    `json:"content_type" binding:"required"`
}

// ConfirmReceiptUploadRequest confirms a completed receipt upload
type ConfirmReceiptUploadRequest struct {
	StorageKey  string     `json:"storage_key" binding:"required"`
	FileName    string     `json:"file_name" binding:"required,min=1,max=255"`
	FileSize    int64      `json:"file_size" binding:"required,gt=0"`
	ContentType string     `json:"content_type" binding:"required"`
	PropertyID  *uuid.UUID `json:"property_id"`
}

// ConfirmPhotoUploadRequest confirms a completed photo upload
type ConfirmPhotoUploadRequest struct {
	OwnerKind           string    `json:"owner_kind" binding:"required,oneof=property work_order"`
	OwnerID             uuid.UUID `json:"owner_id" binding:"required"`
	StorageKey          string    `json:"storage_key" binding:"required"`
	ThumbnailStorageKey *string   `json:"thumbnail_storage_key"`
	FileName            string    `json:"file_name" binding:"required,min=1,max=255"`
	FileSize            int64     `json:"file_size" binding:"required,gt=0"`
	ContentType         string    `json:"content_type" binding:"required"`
}

// LinkReceiptRequest links an existing receipt to an existing expense
type LinkReceiptRequest struct {
	ReceiptID uuid.UUID `json:"receipt_id" binding:"required"`
}

// ProcessReceiptRequest creates an expense from an unprocessed receipt and
// links the two in one step
type ProcessReceiptRequest struct {
	PropertyID  uuid.UUID       `json:"property_id" binding:"required"`
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
	WorkOrderID *uuid.UUID      `json:"work_order_id"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description" binding:"max=1000"`
}

// ReorderPhotosRequest rewrites the display order of an owner's gallery
type ReorderPhotosRequest struct {
	OwnerKind string      `json:"owner_kind" binding:"required,oneof=property work_order"`
	OwnerID   uuid.UUID   `json:"owner_id" binding:"required"`
	PhotoIDs  []uuid.UUID `json:"photo_ids" binding:"required,min=1"`
}

// ReceiptListFilter narrows receipt listings. PropertyID is parsed from the
// query string by the handler; gin form binding cannot map UUIDs.
type ReceiptListFilter struct {
	Processed  *bool      `form:"processed"`
	PropertyID *uuid.UUID `form:"-"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// UploadURLResponse carries a presigned upload URL and the storage keys the
// client must echo back on confirmation
type UploadURLResponse struct {
	UploadURL           string    `json:"upload_url"`
	StorageKey          string    `json:"storage_key"`
	ThumbnailStorageKey *string   `json:"thumbnail_storage_key,omitempty"`
	ExpiresAt           time.Time `json:"expires_at"`
}

// ReceiptResponse represents a receipt in API responses
type ReceiptResponse struct {
	ID          uuid.UUID  `json:"id"`
	AccountID   uuid.UUID  `json:"account_id"`
	FileName    string     `json:"file_name"`
	FileSize    int64      `json:"file_size"`
	ContentType string     `json:"content_type"`
	StorageKey  string     `json:"storage_key"`
	PropertyID  *uuid.UUID `json:"property_id,omitempty"`
	ExpenseID   *uuid.UUID `json:"expense_id,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	UploadedBy  *uuid.UUID `json:"uploaded_by,omitempty"`
	URL         string     `json:"url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int        `json:"version"`
}

// PhotoResponse represents a photo in API responses
type PhotoResponse struct {
	ID           uuid.UUID  `json:"id"`
	AccountID    uuid.UUID  `json:"account_id"`
	OwnerKind    string     `json:"owner_kind"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	FileName     string     `json:"file_name"`
	FileSize     int64      `json:"file_size"`
	ContentType  string     `json:"content_type"`
	StorageKey   string     `json:"storage_key"`
	IsPrimary    bool       `json:"is_primary"`
	DisplayOrder int        `json:"display_order"`
	UploadedBy   *uuid.UUID `json:"uploaded_by,omitempty"`
	URL          string     `json:"url,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Version      int        `json:"version"`
}

// LinkedExpenseResponse is the expense side of a link result. It is a slim
// projection; full expense reads go through the finance service.
type LinkedExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	PropertyID  uuid.UUID       `json:"property_id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	WorkOrderID *uuid.UUID      `json:"work_order_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	ReceiptID   *uuid.UUID      `json:"receipt_id,omitempty"`
}

// ReceiptLinkResponse is returned by link and process operations
type ReceiptLinkResponse struct {
	Receipt ReceiptResponse       `json:"receipt"`
	Expense LinkedExpenseResponse `json:"expense"`
}

// DeletePhotoResponse reports the result of a photo deletion. When the
// deleted photo was primary, SuggestedPrimaryID names the next photo by
// display order; promotion is the caller's follow-up call, not a side
// effect of the delete.
type DeletePhotoResponse struct {
	DeletedID          uuid.UUID  `json:"deleted_id"`
	WasPrimary         bool       `json:"was_primary"`
	SuggestedPrimaryID *uuid.UUID `json:"suggested_primary_id,omitempty"`
}

// ============================================================================
// Conversion Functions
// ============================================================================

// ToReceiptResponse converts a domain Receipt to ReceiptResponse
func ToReceiptResponse(r *attachment.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:          r.ID,
		AccountID:   r.AccountID,
		FileName:    r.OriginalFileName,
		FileSize:    r.FileSizeBytes,
		ContentType: r.ContentType,
		StorageKey:  r.StorageKey,
		PropertyID:  r.PropertyID,
		ExpenseID:   r.ExpenseID,
		ProcessedAt: r.ProcessedAt,
		UploadedBy:  r.UploadedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Version:     r.GetVersion(),
	}
}

// ToPhotoResponse converts a domain Photo to PhotoResponse
func ToPhotoResponse(p *attachment.Photo) PhotoResponse {
	return PhotoResponse{
		ID:           p.ID,
		AccountID:    p.AccountID,
		OwnerKind:    string(p.Owner.Kind),
		OwnerID:      p.Owner.ID,
		FileName:     p.OriginalFileName,
		FileSize:     p.FileSizeBytes,
		ContentType:  p.ContentType,
		StorageKey:   p.StorageKey,
		IsPrimary:    p.IsPrimary,
		DisplayOrder: p.DisplayOrder,
		UploadedBy:   p.UploadedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Version:      p.GetVersion(),
	}
}

// ToPhotoResponses converts a slice of domain Photos to PhotoResponses
func ToPhotoResponses(photos []attachment.Photo) []PhotoResponse {
	responses := make([]PhotoResponse, len(photos))
	for i := range photos {
		responses[i] = ToPhotoResponse(&photos[i])
	}
	return responses
}

// ToLinkedExpenseResponse converts a domain Expense to its link projection
func ToLinkedExpenseResponse(e *finance.Expense) LinkedExpenseResponse {
	return LinkedExpenseResponse{
		ID:          e.ID,
		PropertyID:  e.PropertyID,
		CategoryID:  e.CategoryID,
		WorkOrderID: e.WorkOrderID,
		Amount:      e.Amount,
		Date:        e.Date,
		Description: e.Description,
		ReceiptID:   e.ReceiptID,
	}
}
