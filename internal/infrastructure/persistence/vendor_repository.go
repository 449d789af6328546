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

// VendorSortFields contains allowed sort fields for vendors
var VendorSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"trade":      true,
}

// GormVendorRepository implements VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// FindByIDForAccount finds a vendor by ID within an account
func (r *GormVendorRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*property.Vendor, error) {
	var model models.VendorModel
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

// FindAllForAccount lists non-deleted vendors for an account
func (r *GormVendorRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]property.Vendor, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.VendorModel{}).
		Where("account_id = ? AND deleted_at IS NULL", accountID)

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR trade ILIKE ?", searchPattern, searchPattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter, VendorSortFields, "name")

	var vendorModels []models.VendorModel
	if err := query.Find(&vendorModels).Error; err != nil {
		return nil, 0, err
	}

	vendors := make([]property.Vendor, len(vendorModels))
	for i, model := range vendorModels {
		vendors[i] = *model.ToDomain()
	}
	return vendors, total, nil
}

// Save creates or updates a vendor
func (r *GormVendorRepository) Save(ctx context.Context, vendor *property.Vendor) error {
	model := models.VendorModelFromDomain(vendor)
	return r.db.WithContext(ctx).Save(model).Error
}

// Compile-time interface compliance check
var _ property.VendorRepository = (*GormVendorRepository)(nil)
