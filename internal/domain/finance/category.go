package finance

import (
	"time"

	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ExpenseCategory classifies expenses within an account
type ExpenseCategory struct {
	shared.AccountAggregateRoot
	Name      string
	DeletedAt *time.Time
}

// NewExpenseCategory creates a new expense category
func NewExpenseCategory(accountID uuid.UUID, name string) (*ExpenseCategory, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewValidation("INVALID_ACCOUNT_ID", "Account ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewValidation("INVALID_CATEGORY_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewValidation("INVALID_CATEGORY_NAME", "Category name cannot exceed 100 characters")
	}
	return &ExpenseCategory{
		AccountAggregateRoot: shared.NewAccountAggregateRoot(accountID),
		Name:                 name,
	}, nil
}

// IsDeleted returns true when the category has been soft-deleted
func (c *ExpenseCategory) IsDeleted() bool {
	return c.DeletedAt != nil
}
