package attachment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentdesk/backend/internal/domain/attachment"
	"github.com/rentdesk/backend/internal/domain/finance"
	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReceiptLinkService drives the receipt-expense link state machine. Every
// mutation keeps Expense.ReceiptID and Receipt.ExpenseID in lockstep; the
// repository commits both sides in one transaction and re-checks the
// preconditions under row locks, so a concurrent double-link loses with a
// conflict instead of silently overwriting.
type ReceiptLinkService struct {
	receiptRepo   attachment.ReceiptRepository
	expenseRepo   finance.ExpenseRepository
	categoryRepo  finance.ExpenseCategoryRepository
	propertyRepo  property.PropertyRepository
	workOrderRepo property.WorkOrderRepository
	config        ServiceConfig
	storage       ObjectStorageService
}

// NewReceiptLinkService creates a new ReceiptLinkService
func NewReceiptLinkService(
	receiptRepo attachment.ReceiptRepository,
	expenseRepo finance.ExpenseRepository,
	categoryRepo finance.ExpenseCategoryRepository,
	propertyRepo property.PropertyRepository,
	workOrderRepo property.WorkOrderRepository,
	storage ObjectStorageService,
) *ReceiptLinkService {
	return &ReceiptLinkService{
		receiptRepo:   receiptRepo,
		expenseRepo:   expenseRepo,
		categoryRepo:  categoryRepo,
		propertyRepo:  propertyRepo,
		workOrderRepo: workOrderRepo,
		storage:       storage,
		config:        DefaultServiceConfig(),
	}
}

// SetConfig sets the service configuration
func (s *ReceiptLinkService) SetConfig(config ServiceConfig) {
	s.config = config
}

// Link attaches an existing receipt to an existing expense. Re-linking an
// already linked pair is rejected as a conflict; callers must unlink first.
func (s *ReceiptLinkService) Link(
	ctx context.Context,
	accountID uuid.UUID,
	expenseID uuid.UUID,
	receiptID uuid.UUID,
) (*ReceiptLinkResponse, error) {
	expense, err := s.expenseRepo.FindByIDForAccount(ctx, accountID, expenseID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("EXPENSE_NOT_FOUND", "Expense not found")
		}
		return nil, err
	}
	receipt, err := s.receiptRepo.FindByIDForAccount(ctx, accountID, receiptID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("RECEIPT_NOT_FOUND", "Receipt not found")
		}
		return nil, err
	}

	// Friendly pre-checks. The repository repeats them under lock; these
	// exist so the common non-racy failure gets a precise answer without
	// opening a transaction.
	if expense.HasReceipt() {
		return nil, shared.NewConflict("EXPENSE_HAS_RECEIPT",
			fmt.Sprintf("Expense %s already has a linked receipt", expense.ID))
	}
	if receipt.IsProcessed() {
		return nil, shared.NewConflict("RECEIPT_ALREADY_PROCESSED", "Receipt is already processed")
	}

	linkedReceipt, linkedExpense, err := s.receiptRepo.LinkToExpense(ctx, accountID, expenseID, receiptID)
	if err != nil {
		return nil, err
	}

	return s.toLinkResponse(ctx, linkedReceipt, linkedExpense), nil
}

// Unlink detaches the receipt currently linked to the given expense
func (s *ReceiptLinkService) Unlink(
	ctx context.Context,
	accountID uuid.UUID,
	expenseID uuid.UUID,
) (*ReceiptResponse, error) {
	expense, err := s.expenseRepo.FindByIDForAccount(ctx, accountID, expenseID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("EXPENSE_NOT_FOUND", "Expense not found")
		}
		return nil, err
	}
	if !expense.HasReceipt() {
		return nil, shared.NewNotFound("NO_LINKED_RECEIPT", "No receipt linked to this expense")
	}

	receipt, err := s.receiptRepo.UnlinkFromExpense(ctx, accountID, expenseID)
	if err != nil {
		return nil, err
	}

	response := ToReceiptResponse(receipt)
	s.enrichReceiptURL(ctx, &response, receipt)
	return &response, nil
}

// Process creates an expense from an unprocessed receipt and links the two
// atomically. The expense insert and both receipt-side link fields commit
// in one transaction.
func (s *ReceiptLinkService) Process(
	ctx context.Context,
	accountID uuid.UUID,
	receiptID uuid.UUID,
	req ProcessReceiptRequest,
	createdBy *uuid.UUID,
) (*ReceiptLinkResponse, error) {
	receipt, err := s.receiptRepo.FindByIDForAccount(ctx, accountID, receiptID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("RECEIPT_NOT_FOUND", "Receipt not found")
		}
		return nil, err
	}
	if receipt.IsProcessed() {
		return nil, shared.NewConflict("RECEIPT_ALREADY_PROCESSED", "Receipt is already processed")
	}

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

	expense, err := finance.NewExpense(
		accountID,
		req.PropertyID,
		req.CategoryID,
		req.Amount,
		req.Date,
		req.Description,
		createdBy,
	)
	if err != nil {
		return nil, err
	}
	if req.WorkOrderID != nil {
		expense.SetWorkOrder(req.WorkOrderID)
	}

	linkedReceipt, err := s.receiptRepo.CreateExpenseAndLink(ctx, expense, receiptID)
	if err != nil {
		return nil, err
	}

	return s.toLinkResponse(ctx, linkedReceipt, expense), nil
}

func (s *ReceiptLinkService) toLinkResponse(
	ctx context.Context,
	receipt *attachment.Receipt,
	expense *finance.Expense,
) *ReceiptLinkResponse {
	receiptResponse := ToReceiptResponse(receipt)
	s.enrichReceiptURL(ctx, &receiptResponse, receipt)
	return &ReceiptLinkResponse{
		Receipt: receiptResponse,
		Expense: ToLinkedExpenseResponse(expense),
	}
}

func (s *ReceiptLinkService) enrichReceiptURL(ctx context.Context, response *ReceiptResponse, receipt *attachment.Receipt) {
	if s.storage == nil {
		return
	}
	if url, _, err := s.storage.GenerateDownloadURL(ctx, receipt.StorageKey, s.config.DownloadURLExpiry); err == nil {
		response.URL = url
	}
}
