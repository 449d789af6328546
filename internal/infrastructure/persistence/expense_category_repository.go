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

// GormExpenseCategoryRepository implements ExpenseCategoryRepository using GORM
type GormExpenseCategoryRepository struct {
	db *gorm.DB
}

// NewGormExpenseCategoryRepository creates a new GormExpenseCategoryRepository
func NewGormExpenseCategoryRepository(db *gorm.DB) *GormExpenseCategoryRepository {
	return &GormExpenseCategoryRepository{db: db}
}

// FindByIDForAccount finds a category by ID within an account
func (r *GormExpenseCategoryRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*finance.ExpenseCategory, error) {
	var model models.ExpenseCategoryModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND id = ? AND deleted_at IS NULL", accountID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForAccount lists non-deleted categories for an account
func (r *GormExpenseCategoryRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID) ([]finance.ExpenseCategory, error) {
	var categoryModels []models.ExpenseCategoryModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND deleted_at IS NULL", accountID).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]finance.ExpenseCategory, len(categoryModels))
	for i, model := range categoryModels {
		categories[i] = *model.ToDomain()
	}
	return categories, nil
}

// Save creates or updates a category
func (r *GormExpenseCategoryRepository) Save(ctx context.Context, category *finance.ExpenseCategory) error {
	model := models.ExpenseCategoryModelFromDomain(category)
	return r.db.WithContext(ctx).Save(model).Error
}

// Compile-time interface compliance check
var _ finance.ExpenseCategoryRepository = (*GormExpenseCategoryRepository)(nil)
