package property

import (
	"context"
	"errors"

	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WorkOrderService handles work order CRUD, status transitions and soft
// deletion
type WorkOrderService struct {
	workOrderRepo property.WorkOrderRepository
	propertyRepo  property.PropertyRepository
	vendorRepo    property.VendorRepository
}

// NewWorkOrderService creates a new WorkOrderService
func NewWorkOrderService(
	workOrderRepo property.WorkOrderRepository,
	propertyRepo property.PropertyRepository,
	vendorRepo property.VendorRepository,
) *WorkOrderService {
	return &WorkOrderService{
		workOrderRepo: workOrderRepo,
		propertyRepo:  propertyRepo,
		vendorRepo:    vendorRepo,
	}
}

// Create creates a new open work order
func (s *WorkOrderService) Create(
	ctx context.Context,
	accountID uuid.UUID,
	req CreateWorkOrderRequest,
	createdBy *uuid.UUID,
) (*WorkOrderResponse, error) {
	if _, err := s.propertyRepo.FindByIDForAccount(ctx, accountID, req.PropertyID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("PROPERTY_NOT_FOUND", "Property not found")
		}
		return nil, err
	}
	if req.VendorID != nil {
		if _, err := s.vendorRepo.FindByIDForAccount(ctx, accountID, *req.VendorID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewNotFound("VENDOR_NOT_FOUND", "Vendor not found")
			}
			return nil, err
		}
	}

	wo, err := property.NewWorkOrder(accountID, req.PropertyID, req.Title, req.Description, req.VendorID, createdBy)
	if err != nil {
		return nil, err
	}
	if err := s.workOrderRepo.Save(ctx, wo); err != nil {
		return nil, err
	}
	response := ToWorkOrderResponse(wo)
	return &response, nil
}

// GetByID returns a single work order
func (s *WorkOrderService) GetByID(
	ctx context.Context,
	accountID uuid.UUID,
	workOrderID uuid.UUID,
) (*WorkOrderResponse, error) {
	wo, err := s.findWorkOrder(ctx, accountID, workOrderID)
	if err != nil {
		return nil, err
	}
	response := ToWorkOrderResponse(wo)
	return &response, nil
}

// List returns work orders for the account, optionally scoped to a property
func (s *WorkOrderService) List(
	ctx context.Context,
	accountID uuid.UUID,
	propertyID *uuid.UUID,
	filter ListFilter,
) ([]WorkOrderResponse, int64, error) {
	domainFilter := toSharedFilter(filter, "created_at", "desc")

	var (
		workOrders []property.WorkOrder
		total      int64
		err        error
	)
	if propertyID != nil {
		if _, err := s.propertyRepo.FindByIDForAccount(ctx, accountID, *propertyID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, 0, shared.NewNotFound("PROPERTY_NOT_FOUND", "Property not found")
			}
			return nil, 0, err
		}
		workOrders, total, err = s.workOrderRepo.FindByPropertyForAccount(ctx, accountID, *propertyID, domainFilter)
	} else {
		workOrders, total, err = s.workOrderRepo.FindAllForAccount(ctx, accountID, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}
	return ToWorkOrderResponses(workOrders), total, nil
}

// Update applies editable fields to a work order
func (s *WorkOrderService) Update(
	ctx context.Context,
	accountID uuid.UUID,
	workOrderID uuid.UUID,
	req UpdateWorkOrderRequest,
) (*WorkOrderResponse, error) {
	wo, err := s.findWorkOrder(ctx, accountID, workOrderID)
	if err != nil {
		return nil, err
	}
	if req.VendorID != nil {
		if _, err := s.vendorRepo.FindByIDForAccount(ctx, accountID, *req.VendorID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewNotFound("VENDOR_NOT_FOUND", "Vendor not found")
			}
			return nil, err
		}
	}
	if err := wo.Update(req.Title, req.Description, req.VendorID); err != nil {
		return nil, err
	}
	if err := s.workOrderRepo.Save(ctx, wo); err != nil {
		return nil, err
	}
	response := ToWorkOrderResponse(wo)
	return &response, nil
}

// Transition moves a work order to a new status
func (s *WorkOrderService) Transition(
	ctx context.Context,
	accountID uuid.UUID,
	workOrderID uuid.UUID,
	req TransitionWorkOrderRequest,
) (*WorkOrderResponse, error) {
	wo, err := s.findWorkOrder(ctx, accountID, workOrderID)
	if err != nil {
		return nil, err
	}
	if err := wo.TransitionTo(property.WorkOrderStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.workOrderRepo.Save(ctx, wo); err != nil {
		return nil, err
	}
	response := ToWorkOrderResponse(wo)
	return &response, nil
}

// Delete soft-deletes a work order. Photos are not cascaded.
func (s *WorkOrderService) Delete(
	ctx context.Context,
	accountID uuid.UUID,
	workOrderID uuid.UUID,
) error {
	wo, err := s.findWorkOrder(ctx, accountID, workOrderID)
	if err != nil {
		return err
	}
	if err := wo.SoftDelete(); err != nil {
		return err
	}
	return s.workOrderRepo.Save(ctx, wo)
}

func (s *WorkOrderService) findWorkOrder(ctx context.Context, accountID, workOrderID uuid.UUID) (*property.WorkOrder, error) {
	wo, err := s.workOrderRepo.FindByIDForAccount(ctx, accountID, workOrderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("WORK_ORDER_NOT_FOUND", "Work order not found")
		}
		return nil, err
	}
	return wo, nil
}
