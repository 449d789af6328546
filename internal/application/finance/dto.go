package finance

import (
	"time"

	"github.com/rentdesk/backend/internal/domain/finance"
	csvimport "github.com/rentdesk/backend/internal/infrastructure/import"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest creates a new expense without a receipt
type CreateExpenseRequest struct {
	PropertyID  uuid.UUID       `json:"property_id" binding:"required"`
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
	WorkOrderID *uuid.UUID      `json:"work_order_id"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description" binding:"max=1000"`
}

// UpdateExpenseRequest updates an expense's editable fields
type UpdateExpenseRequest struct {
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
	WorkOrderID *uuid.UUID      `json:"work_order_id"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description" binding:"max=1000"`
}

// ExpenseListFilter narrows expense listings. The UUID fields are parsed from
// the query string by the handler; gin form binding cannot map UUIDs.
type ExpenseListFilter struct {
	PropertyID  *uuid.UUID `form:"-"`
	WorkOrderID *uuid.UUID `form:"-"`
	CategoryID  *uuid.UUID `form:"-"`
	DateFrom    *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo      *time.Time `form:"date_to" time_format:"2006-01-02"`
	HasReceipt  *bool      `form:"has_receipt"`
	Page        int        `form:"page" binding:"omitempty,min=1"`
	PageSize    int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy     string     `form:"order_by"`
	OrderDir    string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ImportExpensesResponse reports the outcome of a CSV expense import.
// ImportedCount stays zero when any row failed or the run was a dry run.
type ImportExpensesResponse struct {
	TotalRows       int                  `json:"total_rows"`
	ImportedCount   int                  `json:"imported_count"`
	ErrorRows       int                  `json:"error_rows"`
	Errors          []csvimport.RowError `json:"errors,omitempty"`
	TruncatedErrors bool                 `json:"truncated_errors,omitempty"`
	DryRun          bool                 `json:"dry_run"`
}

// CreateCategoryRequest creates an expense category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"account_id"`
	PropertyID  uuid.UUID       `json:"property_id"`
	WorkOrderID *uuid.UUID      `json:"work_order_id,omitempty"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	ReceiptID   *uuid.UUID      `json:"receipt_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// CategoryResponse represents an expense category in API responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToExpenseResponse converts a domain Expense to ExpenseResponse
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		AccountID:   e.AccountID,
		PropertyID:  e.PropertyID,
		WorkOrderID: e.WorkOrderID,
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		Date:        e.Date,
		Description: e.Description,
		ReceiptID:   e.ReceiptID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Version:     e.GetVersion(),
	}
}

// ToExpenseResponses converts a slice of domain Expenses to ExpenseResponses
func ToExpenseResponses(expenses []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}

// ToCategoryResponse converts a domain ExpenseCategory to CategoryResponse
func ToCategoryResponse(c *finance.ExpenseCategory) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}
