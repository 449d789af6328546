package property

import (
	"context"
	"testing"

	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWorkOrderService() (*WorkOrderService, *MockWorkOrderRepository, *MockPropertyRepository, *MockVendorRepository) {
	workOrderRepo := new(MockWorkOrderRepository)
	propertyRepo := new(MockPropertyRepository)
	vendorRepo := new(MockVendorRepository)
	svc := NewWorkOrderService(workOrderRepo, propertyRepo, vendorRepo)
	return svc, workOrderRepo, propertyRepo, vendorRepo
}

func TestWorkOrderServiceCreate(t *testing.T) {
	accountID := testAccountID()
	ctx := context.Background()

	t.Run("creates open work order", func(t *testing.T) {
		svc, workOrderRepo, propertyRepo, _ := newTestWorkOrderService()
		prop := createProperty(accountID)
		propertyRepo.On("FindByIDForAccount", ctx, accountID, prop.ID).Return(prop, nil)
		workOrderRepo.On("Save", ctx, mock.Anything).Return(nil)

		result, err := svc.Create(ctx, accountID, CreateWorkOrderRequest{
			PropertyID: prop.ID,
			Title:      "Fix roof",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "open", result.Status)
		workOrderRepo.AssertExpectations(t)
	})

	t.Run("missing property reports not found", func(t *testing.T) {
		svc, workOrderRepo, propertyRepo, _ := newTestWorkOrderService()
		propertyID := uuid.New()
		propertyRepo.On("FindByIDForAccount", ctx, accountID, propertyID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, accountID, CreateWorkOrderRequest{
			PropertyID: propertyID,
			Title:      "Fix roof",
		}, nil)
		require.Error(t, err)
		assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
		workOrderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("validates vendor reference", func(t *testing.T) {
		svc, workOrderRepo, propertyRepo, vendorRepo := newTestWorkOrderService()
		prop := createProperty(accountID)
		vendorID := uuid.New()
		propertyRepo.On("FindByIDForAccount", ctx, accountID, prop.ID).Return(prop, nil)
		vendorRepo.On("FindByIDForAccount", ctx, accountID, vendorID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, accountID, CreateWorkOrderRequest{
			PropertyID: prop.ID,
			Title:      "Fix roof",
			VendorID:   &vendorID,
		}, nil)
		require.Error(t, err)
		assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
		workOrderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestWorkOrderServiceList(t *testing.T) {
	accountID := testAccountID()
	ctx := context.Background()

	t.Run("lists all for account", func(t *testing.T) {
		svc, workOrderRepo, _, _ := newTestWorkOrderService()
		wo := createWorkOrder(accountID, uuid.New())
		workOrderRepo.On("FindAllForAccount", ctx, accountID, mock.Anything).
			Return([]property.WorkOrder{*wo}, int64(1), nil)

		results, total, err := svc.List(ctx, accountID, nil, ListFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
	})

	t.Run("scopes to property after checking it exists", func(t *testing.T) {
		svc, workOrderRepo, propertyRepo, _ := newTestWorkOrderService()
		prop := createProperty(accountID)
		wo := createWorkOrder(accountID, prop.ID)
		propertyRepo.On("FindByIDForAccount", ctx, accountID, prop.ID).Return(prop, nil)
		workOrderRepo.On("FindByPropertyForAccount", ctx, accountID, prop.ID, mock.Anything).
			Return([]property.WorkOrder{*wo}, int64(1), nil)

		results, _, err := svc.List(ctx, accountID, &prop.ID, ListFilter{})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, prop.ID, results[0].PropertyID)
	})

	t.Run("unknown property reports not found", func(t *testing.T) {
		svc, _, propertyRepo, _ := newTestWorkOrderService()
		propertyID := uuid.New()
		propertyRepo.On("FindByIDForAccount", ctx, accountID, propertyID).Return(nil, shared.ErrNotFound)

		_, _, err := svc.List(ctx, accountID, &propertyID, ListFilter{})
		require.Error(t, err)
		assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
	})
}

func TestWorkOrderServiceTransition(t *testing.T) {
	accountID := testAccountID()
	ctx := context.Background()

	t.Run("moves open to in_progress", func(t *testing.T) {
		svc, workOrderRepo, _, _ := newTestWorkOrderService()
		wo := createWorkOrder(accountID, uuid.New())
		workOrderRepo.On("FindByIDForAccount", ctx, accountID, wo.ID).Return(wo, nil)
		workOrderRepo.On("Save", ctx, mock.Anything).Return(nil)

		result, err := svc.Transition(ctx, accountID, wo.ID, TransitionWorkOrderRequest{Status: "in_progress"})
		require.NoError(t, err)
		assert.Equal(t, "in_progress", result.Status)
	})

	t.Run("closed work orders cannot transition", func(t *testing.T) {
		svc, workOrderRepo, _, _ := newTestWorkOrderService()
		wo := createWorkOrder(accountID, uuid.New())
		require.NoError(t, wo.TransitionTo(property.WorkOrderStatusCompleted))
		workOrderRepo.On("FindByIDForAccount", ctx, accountID, wo.ID).Return(wo, nil)

		_, err := svc.Transition(ctx, accountID, wo.ID, TransitionWorkOrderRequest{Status: "open"})
		require.Error(t, err)
		assert.Equal(t, shared.KindConflict, shared.KindOf(err))
		workOrderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestWorkOrderServiceDelete(t *testing.T) {
	accountID := testAccountID()
	ctx := context.Background()

	t.Run("soft deletes", func(t *testing.T) {
		svc, workOrderRepo, _, _ := newTestWorkOrderService()
		wo := createWorkOrder(accountID, uuid.New())
		workOrderRepo.On("FindByIDForAccount", ctx, accountID, wo.ID).Return(wo, nil)
		workOrderRepo.On("Save", ctx, mock.MatchedBy(func(w *property.WorkOrder) bool {
			return w.DeletedAt != nil
		})).Return(nil)

		err := svc.Delete(ctx, accountID, wo.ID)
		require.NoError(t, err)
		workOrderRepo.AssertExpectations(t)
	})

	t.Run("missing work order reports not found", func(t *testing.T) {
		svc, workOrderRepo, _, _ := newTestWorkOrderService()
		workOrderID := uuid.New()
		workOrderRepo.On("FindByIDForAccount", ctx, accountID, workOrderID).Return(nil, shared.ErrNotFound)

		err := svc.Delete(ctx, accountID, workOrderID)
		require.Error(t, err)
		assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
	})
}
