package property

import (
	"context"

	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PropertyRepository persists properties
type PropertyRepository interface {
	FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*Property, error)
	FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]Property, int64, error)
	Save(ctx context.Context, property *Property) error
}

// WorkOrderRepository persists work orders
type WorkOrderRepository interface {
	FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*WorkOrder, error)
	FindByPropertyForAccount(ctx context.Context, accountID, propertyID uuid.UUID, filter shared.Filter) ([]WorkOrder, int64, error)
	FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]WorkOrder, int64, error)
	CountActiveByPropertyForAccount(ctx context.Context, accountID, propertyID uuid.UUID) (int64, error)
	Save(ctx context.Context, workOrder *WorkOrder) error
}

// VendorRepository persists vendors
type VendorRepository interface {
	FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*Vendor, error)
	FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]Vendor, int64, error)
	Save(ctx context.Context, vendor *Vendor) error
}
