package property

import (
	"context"

	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository is a mock implementation of property.PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*property.Property, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]property.Property, int64, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]property.Property), args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

var _ property.PropertyRepository = (*MockPropertyRepository)(nil)

// MockWorkOrderRepository is a mock implementation of property.WorkOrderRepository
type MockWorkOrderRepository struct {
	mock.Mock
}

func (m *MockWorkOrderRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*property.WorkOrder, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) FindByPropertyForAccount(ctx context.Context, accountID, propertyID uuid.UUID, filter shared.Filter) ([]property.WorkOrder, int64, error) {
	args := m.Called(ctx, accountID, propertyID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]property.WorkOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockWorkOrderRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]property.WorkOrder, int64, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]property.WorkOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockWorkOrderRepository) CountActiveByPropertyForAccount(ctx context.Context, accountID, propertyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, accountID, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkOrderRepository) Save(ctx context.Context, wo *property.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

var _ property.WorkOrderRepository = (*MockWorkOrderRepository)(nil)

// MockVendorRepository is a mock implementation of property.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*property.Vendor, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]property.Vendor, int64, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]property.Vendor), args.Get(1).(int64), args.Error(2)
}

func (m *MockVendorRepository) Save(ctx context.Context, v *property.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

var _ property.VendorRepository = (*MockVendorRepository)(nil)

func testAccountID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func createProperty(accountID uuid.UUID) *property.Property {
	p, _ := property.NewProperty(accountID, "12 Oak St", "12 Oak St", "Springfield", "IL", "62704", "", nil)
	return p
}

func createWorkOrder(accountID, propertyID uuid.UUID) *property.WorkOrder {
	wo, _ := property.NewWorkOrder(accountID, propertyID, "Fix roof", "Shingles loose", nil, nil)
	return wo
}

func createVendor(accountID uuid.UUID) *property.Vendor {
	v, _ := property.NewVendor(accountID, "Acme Plumbing", "plumbing", "office@acmeplumbing.test", "555-0101")
	return v
}
