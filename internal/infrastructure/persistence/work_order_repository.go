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

// WorkOrderSortFields contains allowed sort fields for work orders
var WorkOrderSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"title":       true,
	"status":      true,
	"property_id": true,
	"vendor_id":   true,
}

// GormWorkOrderRepository implements WorkOrderRepository using GORM
type GormWorkOrderRepository struct {
	db *gorm.DB
}

// NewGormWorkOrderRepository creates a new GormWorkOrderRepository
func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

// FindByIDForAccount finds a work order by ID within an account
func (r *GormWorkOrderRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*property.WorkOrder, error) {
	var model models.WorkOrderModel
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

// FindByPropertyForAccount lists a property's non-deleted work orders
func (r *GormWorkOrderRepository) FindByPropertyForAccount(ctx context.Context, accountID, propertyID uuid.UUID, filter shared.Filter) ([]property.WorkOrder, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.WorkOrderModel{}).
		Where("account_id = ? AND property_id = ? AND deleted_at IS NULL", accountID, propertyID)
	return r.list(query, filter)
}

// FindAllForAccount lists non-deleted work orders for an account
func (r *GormWorkOrderRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]property.WorkOrder, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.WorkOrderModel{}).
		Where("account_id = ? AND deleted_at IS NULL", accountID)
	return r.list(query, filter)
}

// CountActiveByPropertyForAccount counts a property's work orders that are
// still open or in progress
func (r *GormWorkOrderRepository) CountActiveByPropertyForAccount(ctx context.Context, accountID, propertyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WorkOrderModel{}).
		Where("account_id = ? AND property_id = ? AND deleted_at IS NULL AND status IN ?",
			accountID, propertyID,
			[]string{string(property.WorkOrderStatusOpen), string(property.WorkOrderStatusInProgress)}).
		Count(&count).Error
	return count, err
}

// Save creates or updates a work order
func (r *GormWorkOrderRepository) Save(ctx context.Context, workOrder *property.WorkOrder) error {
	model := models.WorkOrderModelFromDomain(workOrder)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *GormWorkOrderRepository) list(query *gorm.DB, filter shared.Filter) ([]property.WorkOrder, int64, error) {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ?", searchPattern)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter, WorkOrderSortFields, "created_at")

	var workOrderModels []models.WorkOrderModel
	if err := query.Find(&workOrderModels).Error; err != nil {
		return nil, 0, err
	}

	workOrders := make([]property.WorkOrder, len(workOrderModels))
	for i, model := range workOrderModels {
		workOrders[i] = *model.ToDomain()
	}
	return workOrders, total, nil
}

// Compile-time interface compliance check
var _ property.WorkOrderRepository = (*GormWorkOrderRepository)(nil)
