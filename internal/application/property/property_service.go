package property

import (
	"context"
	"errors"

	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PropertyService handles property CRUD and soft deletion
type PropertyService struct {
	propertyRepo  property.PropertyRepository
	workOrderRepo property.WorkOrderRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(
	propertyRepo property.PropertyRepository,
	workOrderRepo property.WorkOrderRepository,
) *PropertyService {
	return &PropertyService{
		propertyRepo:  propertyRepo,
		workOrderRepo: workOrderRepo,
	}
}

// Create creates a new property
func (s *PropertyService) Create(
	ctx context.Context,
	accountID uuid.UUID,
	req CreatePropertyRequest,
	createdBy *uuid.UUID,
) (*PropertyResponse, error) {
	p, err := property.NewProperty(accountID, req.Name, req.Address, req.City, req.State, req.ZipCode, req.Notes, createdBy)
	if err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	response := ToPropertyResponse(p)
	return &response, nil
}

// GetByID returns a single property
func (s *PropertyService) GetByID(
	ctx context.Context,
	accountID uuid.UUID,
	propertyID uuid.UUID,
) (*PropertyResponse, error) {
	p, err := s.findProperty(ctx, accountID, propertyID)
	if err != nil {
		return nil, err
	}
	response := ToPropertyResponse(p)
	return &response, nil
}

// List returns properties for the account
func (s *PropertyService) List(
	ctx context.Context,
	accountID uuid.UUID,
	filter ListFilter,
) ([]PropertyResponse, int64, error) {
	properties, total, err := s.propertyRepo.FindAllForAccount(ctx, accountID, toSharedFilter(filter, "name", "asc"))
	if err != nil {
		return nil, 0, err
	}
	return ToPropertyResponses(properties), total, nil
}

// Update applies editable fields to a property
func (s *PropertyService) Update(
	ctx context.Context,
	accountID uuid.UUID,
	propertyID uuid.UUID,
	req UpdatePropertyRequest,
) (*PropertyResponse, error) {
	p, err := s.findProperty(ctx, accountID, propertyID)
	if err != nil {
		return nil, err
	}
	if err := p.Update(req.Name, req.Address, req.City, req.State, req.ZipCode, req.Notes); err != nil {
		return nil, err
	}
	if err := s.propertyRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	response := ToPropertyResponse(p)
	return &response, nil
}

// Delete soft-deletes a property. Photos and expenses are not cascaded;
// they stay queryable by id but drop out of listings scoped to this
// property.
func (s *PropertyService) Delete(
	ctx context.Context,
	accountID uuid.UUID,
	propertyID uuid.UUID,
) error {
	p, err := s.findProperty(ctx, accountID, propertyID)
	if err != nil {
		return err
	}

	active, err := s.workOrderRepo.CountActiveByPropertyForAccount(ctx, accountID, propertyID)
	if err != nil {
		return err
	}
	if active > 0 {
		return shared.NewConflict("PROPERTY_HAS_OPEN_WORK_ORDERS",
			"Property cannot be deleted while it has open or in-progress work orders")
	}

	if err := p.SoftDelete(); err != nil {
		return err
	}
	return s.propertyRepo.Save(ctx, p)
}

func (s *PropertyService) findProperty(ctx context.Context, accountID, propertyID uuid.UUID) (*property.Property, error) {
	p, err := s.propertyRepo.FindByIDForAccount(ctx, accountID, propertyID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("PROPERTY_NOT_FOUND", "Property not found")
		}
		return nil, err
	}
	return p, nil
}

// toSharedFilter applies pagination defaults and converts to the domain filter
func toSharedFilter(filter ListFilter, defaultOrderBy, defaultOrderDir string) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = defaultOrderBy
	}
	if filter.OrderDir == "" {
		filter.OrderDir = defaultOrderDir
	}
	return shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}
}
