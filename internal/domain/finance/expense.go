package finance

import (
	"fmt"
	"time"

	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a cost booked against a property, optionally tied to a work
// order and to at most one receipt. ReceiptID mirrors Receipt.ExpenseID; the
// pair is only ever written together inside one transaction by the receipt
// linking engine.
type Expense struct {
	shared.AccountAggregateRoot
	PropertyID  uuid.UUID
	WorkOrderID *uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	ReceiptID   *uuid.UUID
	DeletedAt   *time.Time
}

// NewExpense creates a new expense without a receipt
func NewExpense(
	accountID uuid.UUID,
	propertyID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	description string,
	createdBy *uuid.UUID,
) (*Expense, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewValidation("INVALID_ACCOUNT_ID", "Account ID cannot be empty")
	}
	if propertyID == uuid.Nil {
		return nil, shared.NewValidation("INVALID_PROPERTY_ID", "Property ID cannot be empty")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewValidation("INVALID_CATEGORY_ID", "Category ID cannot be empty")
	}
	if amount.IsNegative() || amount.IsZero() {
		return nil, shared.NewValidation("INVALID_AMOUNT", "Expense amount must be positive")
	}
	if date.IsZero() {
		return nil, shared.NewValidation("INVALID_DATE", "Expense date is required")
	}
	if len(description) > 1000 {
		return nil, shared.NewValidation("INVALID_DESCRIPTION", "Description cannot exceed 1000 characters")
	}

	expense := &Expense{
		AccountAggregateRoot: shared.NewAccountAggregateRoot(accountID),
		PropertyID:           propertyID,
		CategoryID:           categoryID,
		Amount:               amount,
		Date:                 date,
		Description:          description,
	}
	if createdBy != nil {
		expense.SetCreatedBy(*createdBy)
	}
	return expense, nil
}

// IsDeleted returns true when the expense has been soft-deleted
func (e *Expense) IsDeleted() bool {
	return e.DeletedAt != nil
}

// HasReceipt returns true when a receipt is linked
func (e *Expense) HasReceipt() bool {
	return e.ReceiptID != nil
}

// AttachReceipt records the receipt link on the expense side
func (e *Expense) AttachReceipt(receiptID uuid.UUID) error {
	if e.IsDeleted() {
		return shared.NewNotFound("EXPENSE_NOT_FOUND", "Expense not found")
	}
	if e.HasReceipt() {
		return shared.NewConflict("EXPENSE_HAS_RECEIPT",
			fmt.Sprintf("Expense %s already has a linked receipt", e.ID))
	}
	if receiptID == uuid.Nil {
		return shared.NewValidation("INVALID_RECEIPT_ID", "Receipt ID cannot be empty")
	}
	e.ReceiptID = &receiptID
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// DetachReceipt clears the receipt link on the expense side
func (e *Expense) DetachReceipt() error {
	if !e.HasReceipt() {
		return shared.NewNotFound("NO_LINKED_RECEIPT", "No receipt linked to this expense")
	}
	e.ReceiptID = nil
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// SetWorkOrder associates or clears the work order reference
func (e *Expense) SetWorkOrder(workOrderID *uuid.UUID) {
	e.WorkOrderID = workOrderID
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// Update applies editable fields
func (e *Expense) Update(categoryID uuid.UUID, amount decimal.Decimal, date time.Time, description string) error {
	if e.IsDeleted() {
		return shared.NewNotFound("EXPENSE_NOT_FOUND", "Expense not found")
	}
	if categoryID == uuid.Nil {
		return shared.NewValidation("INVALID_CATEGORY_ID", "Category ID cannot be empty")
	}
	if amount.IsNegative() || amount.IsZero() {
		return shared.NewValidation("INVALID_AMOUNT", "Expense amount must be positive")
	}
	if date.IsZero() {
		return shared.NewValidation("INVALID_DATE", "Expense date is required")
	}
	if len(description) > 1000 {
		return shared.NewValidation("INVALID_DESCRIPTION", "Description cannot exceed 1000 characters")
	}
	e.CategoryID = categoryID
	e.Amount = amount
	e.Date = date
	e.Description = description
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// SoftDelete marks the expense deleted. Attachments are not cascaded; they
// stay queryable by id but drop out of owner-scoped listings.
func (e *Expense) SoftDelete() error {
	if e.IsDeleted() {
		return shared.NewNotFound("EXPENSE_NOT_FOUND", "Expense not found")
	}
	now := time.Now()
	e.DeletedAt = &now
	e.UpdatedAt = now
	e.IncrementVersion()
	return nil
}
