package persistence

import (
	"context"
	"errors"

	"github.com/rentdesk/backend/internal/domain/attachment"
	"github.com/rentdesk/backend/internal/domain/finance"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/rentdesk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReceiptSortFields contains allowed sort fields for receipts
var ReceiptSortFields = map[string]bool{
	"id":                 true,
	"created_at":         true,
	"updated_at":         true,
	"original_file_name": true,
	"content_type":       true,
	"file_size_bytes":    true,
	"processed_at":       true,
}

// GormReceiptRepository implements ReceiptRepository using GORM. The three
// link operations re-run their precondition checks inside a transaction with
// the receipt and expense rows locked FOR UPDATE, so the service-layer
// pre-checks are advisory and the lock holder decides.
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GormReceiptRepository
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// FindByIDForAccount finds a receipt by ID within an account. Soft-deleted
// receipts stay reachable by ID.
func (r *GormReceiptRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*attachment.Receipt, error) {
	var model models.ReceiptModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForAccount lists non-deleted receipts for an account
func (r *GormReceiptRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter attachment.ReceiptFilter) ([]attachment.Receipt, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ReceiptModel{}).
		Where("account_id = ? AND deleted_at IS NULL", accountID)

	if filter.Processed != nil {
		if *filter.Processed {
			query = query.Where("processed_at IS NOT NULL")
		} else {
			query = query.Where("processed_at IS NULL")
		}
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, ReceiptSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(sortField + " " + sortOrder)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var receiptModels []models.ReceiptModel
	if err := query.Find(&receiptModels).Error; err != nil {
		return nil, 0, err
	}

	receipts := make([]attachment.Receipt, len(receiptModels))
	for i, model := range receiptModels {
		receipts[i] = *model.ToDomain()
	}
	return receipts, total, nil
}

// Create inserts a new receipt
func (r *GormReceiptRepository) Create(ctx context.Context, receipt *attachment.Receipt) error {
	model := models.ReceiptModelFromDomain(receipt)
	return r.db.WithContext(ctx).Create(model).Error
}

// Save creates or updates a receipt
func (r *GormReceiptRepository) Save(ctx context.Context, receipt *attachment.Receipt) error {
	model := models.ReceiptModelFromDomain(receipt)
	return r.db.WithContext(ctx).Save(model).Error
}

// LinkToExpense links a receipt to an expense. Both rows are locked, the
// preconditions are re-checked under the lock, and both sides of the link are
// written in the same transaction. A concurrent linker loses with a conflict
// instead of silently overwriting.
func (r *GormReceiptRepository) LinkToExpense(ctx context.Context, accountID, expenseID, receiptID uuid.UUID) (*attachment.Receipt, *finance.Expense, error) {
	var (
		receipt *attachment.Receipt
		expense *finance.Expense
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receiptModel, err := lockReceipt(tx, accountID, receiptID)
		if err != nil {
			return err
		}
		expenseModel, err := lockExpense(tx, accountID, expenseID)
		if err != nil {
			return err
		}

		receipt = receiptModel.ToDomain()
		expense = expenseModel.ToDomain()

		if err := expense.AttachReceipt(receiptID); err != nil {
			return err
		}
		if err := receipt.MarkProcessed(expenseID, &expense.PropertyID); err != nil {
			return err
		}

		if err := tx.Save(models.ExpenseModelFromDomain(expense)).Error; err != nil {
			return err
		}
		return tx.Save(models.ReceiptModelFromDomain(receipt)).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return receipt, expense, nil
}

// UnlinkFromExpense clears both sides of the link for the expense's receipt
func (r *GormReceiptRepository) UnlinkFromExpense(ctx context.Context, accountID, expenseID uuid.UUID) (*attachment.Receipt, error) {
	var receipt *attachment.Receipt

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expenseModel, err := lockExpense(tx, accountID, expenseID)
		if err != nil {
			return err
		}
		expense := expenseModel.ToDomain()
		if !expense.HasReceipt() {
			return shared.NewNotFound("NO_LINKED_RECEIPT", "No receipt linked to this expense")
		}

		receiptModel, err := lockReceipt(tx, accountID, *expense.ReceiptID)
		if err != nil {
			return err
		}
		receipt = receiptModel.ToDomain()

		if err := expense.DetachReceipt(); err != nil {
			return err
		}
		if err := receipt.ClearLink(); err != nil {
			return err
		}

		if err := tx.Save(models.ExpenseModelFromDomain(expense)).Error; err != nil {
			return err
		}
		return tx.Save(models.ReceiptModelFromDomain(receipt)).Error
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// CreateExpenseAndLink inserts the expense and links the receipt to it in one
// transaction. The receipt's property is enriched from the new expense when
// it was uploaded without one.
func (r *GormReceiptRepository) CreateExpenseAndLink(ctx context.Context, expense *finance.Expense, receiptID uuid.UUID) (*attachment.Receipt, error) {
	var receipt *attachment.Receipt

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		receiptModel, err := lockReceipt(tx, expense.AccountID, receiptID)
		if err != nil {
			return err
		}
		receipt = receiptModel.ToDomain()

		if err := expense.AttachReceipt(receiptID); err != nil {
			return err
		}
		if err := receipt.MarkProcessed(expense.ID, &expense.PropertyID); err != nil {
			return err
		}

		if err := tx.Create(models.ExpenseModelFromDomain(expense)).Error; err != nil {
			return err
		}
		return tx.Save(models.ReceiptModelFromDomain(receipt)).Error
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// lockReceipt loads a non-deleted receipt row FOR UPDATE
func lockReceipt(tx *gorm.DB, accountID, id uuid.UUID) (*models.ReceiptModel, error) {
	var model models.ReceiptModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ? AND id = ? AND deleted_at IS NULL", accountID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFound("RECEIPT_NOT_FOUND", "Receipt not found")
		}
		return nil, err
	}
	return &model, nil
}

// lockExpense loads a non-deleted expense row FOR UPDATE
func lockExpense(tx *gorm.DB, accountID, id uuid.UUID) (*models.ExpenseModel, error) {
	var model models.ExpenseModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ? AND id = ? AND deleted_at IS NULL", accountID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFound("EXPENSE_NOT_FOUND", "Expense not found")
		}
		return nil, err
	}
	return &model, nil
}

// Compile-time interface compliance check
var _ attachment.ReceiptRepository = (*GormReceiptRepository)(nil)
