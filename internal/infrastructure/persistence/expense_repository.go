package persistence

import (
	"context"
	"errors"

	"github.com/rentdesk/backend/internal/domain/finance"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/rentdesk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseSortFields contains allowed sort fields for expenses
var ExpenseSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"date":        true,
	"amount":      true,
	"property_id": true,
	"category_id": true,
}

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByIDForAccount finds an expense by ID within an account. Soft-deleted
// expenses stay reachable by ID.
func (r *GormExpenseRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*finance.Expense, error) {
	var model models.ExpenseModel
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

// FindAllForAccount lists non-deleted expenses for an account
func (r *GormExpenseRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter finance.ExpenseFilter) ([]finance.Expense, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ExpenseModel{}).
		Where("account_id = ? AND deleted_at IS NULL", accountID)

	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.WorkOrderID != nil {
		query = query.Where("work_order_id = ?", *filter.WorkOrderID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}
	if filter.HasReceipt != nil {
		if *filter.HasReceipt {
			query = query.Where("receipt_id IS NOT NULL")
		} else {
			query = query.Where("receipt_id IS NULL")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, ExpenseSortFields, "date")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(sortField + " " + sortOrder)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var expenseModels []models.ExpenseModel
	if err := query.Find(&expenseModels).Error; err != nil {
		return nil, 0, err
	}

	expenses := make([]finance.Expense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, total, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	model := models.ExpenseModelFromDomain(expense)
	return r.db.WithContext(ctx).Save(model).Error
}

// Compile-time interface compliance check
var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
