package attachment

import (
	"context"

	"github.com/rentdesk/backend/internal/domain/finance"
	"github.com/google/uuid"
)

// ReceiptFilter narrows receipt listings
type ReceiptFilter struct {
	Processed  *bool
	PropertyID *uuid.UUID
	Page       int
	PageSize   int
	OrderBy    string
	OrderDir   string
}

// ReceiptRepository persists receipts and owns the receipt-expense link
// invariant. The three link operations run their precondition checks and
// both-side writes inside a single transaction with the affected rows
// locked, so under concurrent linking exactly one caller succeeds and the
// loser observes a conflict rather than silently overwriting.
type ReceiptRepository interface {
	FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*Receipt, error)
	FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter ReceiptFilter) ([]Receipt, int64, error)
	Create(ctx context.Context, receipt *Receipt) error
	Save(ctx context.Context, receipt *Receipt) error

	// LinkToExpense sets Expense.ReceiptID, Receipt.ExpenseID and
	// Receipt.ProcessedAt together. Returns the updated pair.
	LinkToExpense(ctx context.Context, accountID, expenseID, receiptID uuid.UUID) (*Receipt, *finance.Expense, error)

	// UnlinkFromExpense clears both sides of the link for the expense's
	// receipt. Returns the detached receipt.
	UnlinkFromExpense(ctx context.Context, accountID, expenseID uuid.UUID) (*Receipt, error)

	// CreateExpenseAndLink inserts the expense and links the receipt to it
	// in one transaction.
	CreateExpenseAndLink(ctx context.Context, expense *finance.Expense, receiptID uuid.UUID) (*Receipt, error)
}

// PhotoRepository persists photos and owns the primary/display-order
// invariants for each (account, owner) partition. Placement, primary swap
// and reorder are transactional; the owner's photo rows are locked for the
// duration so concurrent mutations of one gallery serialize.
type PhotoRepository interface {
	FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*Photo, error)
	FindByOwner(ctx context.Context, accountID uuid.UUID, owner OwnerRef) ([]Photo, error)
	CountByOwner(ctx context.Context, accountID uuid.UUID, owner OwnerRef) (int64, error)
	Save(ctx context.Context, photo *Photo) error

	// CreateWithPlacement inserts the photo, assigning IsPrimary=true and
	// DisplayOrder=0 when it is the owner's first non-deleted photo, and
	// IsPrimary=false with the next display order otherwise.
	CreateWithPlacement(ctx context.Context, photo *Photo) error

	// SwapPrimary clears the current primary (if any) and flags the target
	// photo, atomically. The target must exist for the owner.
	SwapPrimary(ctx context.Context, accountID uuid.UUID, owner OwnerRef, photoID uuid.UUID) (*Photo, error)

	// Reorder re-validates that orderedIDs is a permutation of the owner's
	// current non-deleted photo set under lock, then rewrites display
	// orders to match the given sequence.
	Reorder(ctx context.Context, accountID uuid.UUID, owner OwnerRef, orderedIDs []uuid.UUID) ([]Photo, error)

	// HardDelete removes the photo row. Blob cleanup happens before this
	// call, best-effort, in the service layer.
	HardDelete(ctx context.Context, accountID uuid.UUID, owner OwnerRef, id uuid.UUID) error
}
