package persistence

import (
	"context"
	"errors"

	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/rentdesk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertySortFields contains allowed sort fields for properties
var PropertySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"address":    true,
	"city":       true,
	"state":      true,
	"zip_code":   true,
}

// GormPropertyRepository implements PropertyRepository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByIDForAccount finds a property by ID within an account
func (r *GormPropertyRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*property.Property, error) {
	var model models.PropertyModel
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

// FindAllForAccount lists non-deleted properties for an account
func (r *GormPropertyRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]property.Property, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.PropertyModel{}).
		Where("account_id = ? AND deleted_at IS NULL", accountID)

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR address ILIKE ?", searchPattern, searchPattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter, PropertySortFields, "name")

	var propertyModels []models.PropertyModel
	if err := query.Find(&propertyModels).Error; err != nil {
		return nil, 0, err
	}

	properties := make([]property.Property, len(propertyModels))
	for i, model := range propertyModels {
		properties[i] = *model.ToDomain()
	}
	return properties, total, nil
}

// Save creates or updates a property
func (r *GormPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	model := models.PropertyModelFromDomain(p)
	return r.db.WithContext(ctx).Save(model).Error
}

// applyPagination applies ordering and pagination shared by the simple
// account-scoped listings
func applyPagination(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool, defaultField string) *gorm.DB {
	sortField := ValidateSortField(filter.OrderBy, allowedFields, defaultField)
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(sortField + " " + sortOrder)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// Compile-time interface compliance check
var _ property.PropertyRepository = (*GormPropertyRepository)(nil)
