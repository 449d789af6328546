package attachment

import (
	"strings"
	"time"

	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MaxAttachmentFileSize is the maximum allowed file size (50MB)
const MaxAttachmentFileSize = 50 * 1024 * 1024

// Receipt is an uploaded expense document. It starts unprocessed and becomes
// processed when linked to an expense; the link is mirrored on the expense
// side and the two columns must never diverge past a transaction boundary.
type Receipt struct {
	shared.AccountAggregateRoot
	StorageKey       string
	OriginalFileName string
	ContentType      string
	FileSizeBytes    int64
	UploadedBy       *uuid.UUID
	PropertyID       *uuid.UUID // optional until linked; enriched from the expense on link
	ExpenseID        *uuid.UUID // mirror of Expense.ReceiptID
	ProcessedAt      *time.Time // non-nil iff linked
	DeletedAt        *time.Time
}

// NewReceipt creates an unprocessed receipt from a confirmed upload
func NewReceipt(
	accountID uuid.UUID,
	storageKey string,
	originalFileName string,
	contentType string,
	fileSizeBytes int64,
	uploadedBy *uuid.UUID,
	propertyID *uuid.UUID,
) (*Receipt, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewValidation("INVALID_ACCOUNT_ID", "Account ID cannot be empty")
	}
	if err := validateFileName(originalFileName); err != nil {
		return nil, err
	}
	if err := validateContentType(contentType); err != nil {
		return nil, err
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
	if err := key.RequireNamespace(OwnerKindExpense); err != nil {
		return nil, err
	}

	receipt := &Receipt{
		AccountAggregateRoot: shared.NewAccountAggregateRoot(accountID),
		StorageKey:           storageKey,
		OriginalFileName:     originalFileName,
		ContentType:          contentType,
		FileSizeBytes:        fileSizeBytes,
		UploadedBy:           uploadedBy,
		PropertyID:           propertyID,
	}

	receipt.AddDomainEvent(NewReceiptUploadedEvent(receipt))

	return receipt, nil
}

// IsProcessed returns true when the receipt is linked to an expense
func (r *Receipt) IsProcessed() bool {
	return r.ProcessedAt != nil
}

// IsDeleted returns true when the receipt has been soft-deleted
func (r *Receipt) IsDeleted() bool {
	return r.DeletedAt != nil
}

// MarkProcessed links the receipt to an expense. The caller is responsible
// for setting the mirrored Expense.ReceiptID in the same transaction.
func (r *Receipt) MarkProcessed(expenseID uuid.UUID, propertyID *uuid.UUID) error {
	if r.IsDeleted() {
		return shared.NewNotFound("RECEIPT_NOT_FOUND", "Receipt not found")
	}
	if r.IsProcessed() {
		return shared.NewConflict("RECEIPT_ALREADY_PROCESSED", "Receipt is already processed")
	}
	if expenseID == uuid.Nil {
		return shared.NewValidation("INVALID_EXPENSE_ID", "Expense ID cannot be empty")
	}

	now := time.Now()
	r.ExpenseID = &expenseID
	r.ProcessedAt = &now
	if r.PropertyID == nil && propertyID != nil {
		r.PropertyID = propertyID
	}
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReceiptLinkedEvent(r, expenseID))

	return nil
}

// ClearLink detaches the receipt from its expense. The caller clears the
// mirrored Expense.ReceiptID in the same transaction.
func (r *Receipt) ClearLink() error {
	if !r.IsProcessed() {
		return shared.NewConflict("RECEIPT_NOT_LINKED", "Receipt is not linked to an expense")
	}

	expenseID := *r.ExpenseID
	r.ExpenseID = nil
	r.ProcessedAt = nil
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewReceiptUnlinkedEvent(r, expenseID))

	return nil
}

// SoftDelete marks the receipt deleted. Blob cleanup is a separate,
// best-effort concern; the row-level delete is authoritative.
func (r *Receipt) SoftDelete() error {
	if r.IsDeleted() {
		return shared.NewNotFound("RECEIPT_NOT_FOUND", "Receipt not found")
	}

	now := time.Now()
	r.DeletedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReceiptDeletedEvent(r))

	return nil
}

// validation helpers shared by receipts and photos

func validateFileName(name string) error {
	if name == "" {
		return shared.NewValidation("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewValidation("INVALID_FILE_NAME", "File name cannot exceed 255 characters")
	}
	for _, r := range name {
		if r < 32 || r == 127 {
			return shared.NewValidation("INVALID_FILE_NAME", "File name contains invalid characters")
		}
	}
	if strings.Contains(name, "/") || strings.Contains(name, "\\") {
		return shared.NewValidation("INVALID_FILE_NAME", "File name cannot contain path separators")
	}
	return nil
}

func validateContentType(contentType string) error {
	if contentType == "" {
		return shared.NewValidation("INVALID_CONTENT_TYPE", "Content type cannot be empty")
	}
	if len(contentType) > 100 {
		return shared.NewValidation("INVALID_CONTENT_TYPE", "Content type cannot exceed 100 characters")
	}
	if !strings.Contains(contentType, "/") ||
		strings.HasPrefix(contentType, "/") || strings.HasSuffix(contentType, "/") {
		return shared.NewValidation("INVALID_CONTENT_TYPE", "Content type must be in type/subtype format")
	}
	return nil
}

func validateFileSize(size int64) error {
	if size <= 0 {
		return shared.NewValidation("INVALID_FILE_SIZE", "File size must be greater than 0")
	}
	if size > MaxAttachmentFileSize {
		return shared.NewValidation("FILE_TOO_LARGE", "File size cannot exceed 50MB")
	}
	return nil
}
