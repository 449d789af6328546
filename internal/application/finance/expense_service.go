package finance

import (
	"context"
	"errors"

	"github.com/rentdesk/backend/internal/domain/finance"
	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ExpenseService handles expense CRUD. Receipt linking is not done here;
// the attachment package owns the link state machine and this service only
// surfaces the receiptId it maintains.
type ExpenseService struct {
	expenseRepo   finance.ExpenseRepository
	categoryRepo  finance.ExpenseCategoryRepository
	propertyRepo  property.PropertyRepository
	workOrderRepo property.WorkOrderRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(
	expenseRepo finance.ExpenseRepository,
	categoryRepo finance.ExpenseCategoryRepository,
	propertyRepo property.PropertyRepository,
	workOrderRepo property.WorkOrderRepository,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:   expenseRepo,
		categoryRepo:  categoryRepo,
		propertyRepo:  propertyRepo,
		workOrderRepo: workOrderRepo,
	}
}

// Create creates a new expense without a receipt
func (s *ExpenseService) Create(
	ctx context.Context,
	accountID uuid.UUID,
	req CreateExpenseRequest,
	createdBy *uuid.UUID,
) (*ExpenseResponse, error) {
	if _, err := s.propertyRepo.FindByIDForAccount(ctx, accountID, req.PropertyID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("PROPERTY_NOT_FOUND", "Property not found")
		}
		return nil, err
	}
	if _, err := s.categoryRepo.FindByIDForAccount(ctx, accountID, req.CategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("CATEGORY_NOT_FOUND", "Expense category not found")
		}
		return nil, err
	}
	if req.WorkOrderID != nil {
		workOrder, err := s.workOrderRepo.FindByIDForAccount(ctx, accountID, *req.WorkOrderID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewNotFound("WORK_ORDER_NOT_FOUND", "Work order not found")
			}
			return nil, err
		}
		if workOrder.PropertyID != req.PropertyID {
			return nil, shared.NewValidation("WORK_ORDER_PROPERTY_MISMATCH",
				"Work order does not belong to the given property")
		}
	}

	expense, err := finance.NewExpense(accountID, req.PropertyID, req.CategoryID,
		req.Amount, req.Date, req.Description, createdBy)
	if err != nil {
		return nil, err
	}
	if req.WorkOrderID != nil {
		expense.SetWorkOrder(req.WorkOrderID)
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID returns a single expense
func (s *ExpenseService) GetByID(
	ctx context.Context,
	accountID uuid.UUID,
	expenseID uuid.UUID,
) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByIDForAccount(ctx, accountID, expenseID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("EXPENSE_NOT_FOUND", "Expense not found")
		}
		return nil, err
	}
	response := ToExpenseResponse(expense)
	return &response, nil
}

// List returns expenses matching the filter
func (s *ExpenseService) List(
	ctx context.Context,
	accountID uuid.UUID,
	filter ExpenseListFilter,
) ([]ExpenseResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	expenses, total, err := s.expenseRepo.FindAllForAccount(ctx, accountID, finance.ExpenseFilter{
		PropertyID:  filter.PropertyID,
		WorkOrderID: filter.WorkOrderID,
		CategoryID:  filter.CategoryID,
		DateFrom:    filter.DateFrom,
		DateTo:      filter.DateTo,
		HasReceipt:  filter.HasReceipt,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
		OrderBy:     filter.OrderBy,
		OrderDir:    filter.OrderDir,
	})
	if err != nil {
		return nil, 0, err
	}
	return ToExpenseResponses(expenses), total, nil
}

// Update applies editable fields to an expense
func (s *ExpenseService) Update(
	ctx context.Context,
	accountID uuid.UUID,
	expenseID uuid.UUID,
	req UpdateExpenseRequest,
) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByIDForAccount(ctx, accountID, expenseID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("EXPENSE_NOT_FOUND", "Expense not found")
		}
		return nil, err
	}

	if _, err := s.categoryRepo.FindByIDForAccount(ctx, accountID, req.CategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("CATEGORY_NOT_FOUND", "Expense category not found")
		}
		return nil, err
	}
	if req.WorkOrderID != nil {
		workOrder, err := s.workOrderRepo.FindByIDForAccount(ctx, accountID, *req.WorkOrderID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewNotFound("WORK_ORDER_NOT_FOUND", "Work order not found")
			}
			return nil, err
		}
		if workOrder.PropertyID != expense.PropertyID {
			return nil, shared.NewValidation("WORK_ORDER_PROPERTY_MISMATCH",
				"Work order does not belong to the expense's property")
		}
	}

	if err := expense.Update(req.CategoryID, req.Amount, req.Date, req.Description); err != nil {
		return nil, err
	}
	expense.SetWorkOrder(req.WorkOrderID)

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// Delete soft-deletes an expense. No attachment cleanup is cascaded; a
// linked receipt keeps its expenseId and stays queryable by id.
func (s *ExpenseService) Delete(
	ctx context.Context,
	accountID uuid.UUID,
	expenseID uuid.UUID,
) error {
	expense, err := s.expenseRepo.FindByIDForAccount(ctx, accountID, expenseID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFound("EXPENSE_NOT_FOUND", "Expense not found")
		}
		return err
	}
	if err := expense.SoftDelete(); err != nil {
		return err
	}
	return s.expenseRepo.Save(ctx, expense)
}
