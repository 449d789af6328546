package property

import (
	"time"

	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WorkOrderStatus represents the lifecycle state of a work order
type WorkOrderStatus string

const (
	WorkOrderStatusOpen       WorkOrderStatus = "open"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

// IsValid checks if the status is one of the known states
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusOpen, WorkOrderStatusInProgress, WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return true
	default:
		return false
	}
}

// WorkOrder is a maintenance job against a property, optionally assigned to
// a vendor. Work orders own photo galleries documenting the job.
type WorkOrder struct {
	shared.AccountAggregateRoot
	PropertyID  uuid.UUID
	VendorID    *uuid.UUID
	Title       string
	Description string
	Status      WorkOrderStatus
	DeletedAt   *time.Time
}

// NewWorkOrder creates a new open work order
func NewWorkOrder(accountID, propertyID uuid.UUID, title, description string, vendorID, createdBy *uuid.UUID) (*WorkOrder, error) {
	if accountID == uuid.Nil {
		return nil, shared.NewValidation("INVALID_ACCOUNT_ID", "Account ID cannot be empty")
	}
	if propertyID == uuid.Nil {
		return nil, shared.NewValidation("INVALID_PROPERTY_ID", "Property ID cannot be empty")
	}
	if title == "" {
		return nil, shared.NewValidation("INVALID_TITLE", "Work order title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewValidation("INVALID_TITLE", "Work order title cannot exceed 200 characters")
	}

	wo := &WorkOrder{
		AccountAggregateRoot: shared.NewAccountAggregateRoot(accountID),
		PropertyID:           propertyID,
		VendorID:             vendorID,
		Title:                title,
		Description:          description,
		Status:               WorkOrderStatusOpen,
	}
	if createdBy != nil {
		wo.SetCreatedBy(*createdBy)
	}
	return wo, nil
}

// IsDeleted returns true when the work order has been soft-deleted
func (w *WorkOrder) IsDeleted() bool {
	return w.DeletedAt != nil
}

// Update applies editable fields
func (w *WorkOrder) Update(title, description string, vendorID *uuid.UUID) error {
	if w.IsDeleted() {
		return shared.NewNotFound("WORK_ORDER_NOT_FOUND", "Work order not found")
	}
	if title == "" {
		return shared.NewValidation("INVALID_TITLE", "Work order title cannot be empty")
	}
	w.Title = title
	w.Description = description
	w.VendorID = vendorID
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
	return nil
}

// TransitionTo moves the work order to a new status
func (w *WorkOrder) TransitionTo(status WorkOrderStatus) error {
	if w.IsDeleted() {
		return shared.NewNotFound("WORK_ORDER_NOT_FOUND", "Work order not found")
	}
	if !status.IsValid() {
		return shared.NewValidation("INVALID_STATUS", "Unknown work order status")
	}
	if w.Status == WorkOrderStatusCompleted || w.Status == WorkOrderStatusCancelled {
		return shared.NewConflict("WORK_ORDER_CLOSED", "Work order is already closed")
	}
	w.Status = status
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
	return nil
}

// SoftDelete marks the work order deleted
func (w *WorkOrder) SoftDelete() error {
	if w.IsDeleted() {
		return shared.NewNotFound("WORK_ORDER_NOT_FOUND", "Work order not found")
	}
	now := time.Now()
	w.DeletedAt = &now
	w.UpdatedAt = now
	w.IncrementVersion()
	return nil
}
