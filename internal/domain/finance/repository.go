package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExpenseFilter narrows expense listings. All fields are optional.
type ExpenseFilter struct {
	PropertyID  *uuid.UUID
	WorkOrderID *uuid.UUID
	CategoryID  *uuid.UUID
	DateFrom    *time.Time
	DateTo      *time.Time
	HasReceipt  *bool
	Page        int
	PageSize    int
	OrderBy     string
	OrderDir    string
}

// ExpenseRepository persists expenses. Every method takes the account ID
// explicitly; there is no ambient tenancy filter.
type ExpenseRepository interface {
	FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*Expense, error)
	FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter ExpenseFilter) ([]Expense, int64, error)
	Save(ctx context.Context, expense *Expense) error
}

// ExpenseCategoryRepository persists expense categories
type ExpenseCategoryRepository interface {
	FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*ExpenseCategory, error)
	FindAllForAccount(ctx context.Context, accountID uuid.UUID) ([]ExpenseCategory, error)
	Save(ctx context.Context, category *ExpenseCategory) error
}
