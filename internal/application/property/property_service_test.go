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

func newTestPropertyService() (*PropertyService, *MockPropertyRepository, *MockWorkOrderRepository) {
	propertyRepo := new(MockPropertyRepository)
	workOrderRepo := new(MockWorkOrderRepository)
	svc := NewPropertyService(propertyRepo, workOrderRepo)
	return svc, propertyRepo, workOrderRepo
}

func TestPropertyServiceCreate(t *testing.T) {
	accountID := testAccountID()
	ctx := context.Background()

	t.Run("creates property", func(t *testing.T) {
		svc, propertyRepo, _ := newTestPropertyService()
		propertyRepo.On("Save", ctx, mock.Anything).Return(nil)

		result, err := svc.Create(ctx, accountID, CreatePropertyRequest{
			Name:    "12 Oak St",
			Address: "12 Oak St",
			City:    "Springfield",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "12 Oak St", result.Name)
		assert.Equal(t, accountID, result.AccountID)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		svc, propertyRepo, _ := newTestPropertyService()

		_, err := svc.Create(ctx, accountID, CreatePropertyRequest{Address: "12 Oak St"}, nil)
		require.Error(t, err)
		assert.Equal(t, shared.KindValidation, shared.KindOf(err))
		propertyRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPropertyServiceGetByID(t *testing.T) {
	accountID := testAccountID()
	ctx := context.Background()

	t.Run("returns property", func(t *testing.T) {
		svc, propertyRepo, _ := newTestPropertyService()
		prop := createProperty(accountID)
		propertyRepo.On("FindByIDForAccount", ctx, accountID, prop.ID).Return(prop, nil)

		result, err := svc.GetByID(ctx, accountID, prop.ID)
		require.NoError(t, err)
		assert.Equal(t, prop.ID, result.ID)
	})

	t.Run("maps missing property to not found", func(t *testing.T) {
		svc, propertyRepo, _ := newTestPropertyService()
		propertyID := uuid.New()
		propertyRepo.On("FindByIDForAccount", ctx, accountID, propertyID).Return(nil, shared.ErrNotFound)

		_, err := svc.GetByID(ctx, accountID, propertyID)
		require.Error(t, err)
		assert.Equal(t, shared.KindNotFound, shared.KindOf(err))
	})
}

func TestPropertyServiceList(t *testing.T) {
	accountID := testAccountID()
	ctx := context.Background()

	t.Run("applies pagination defaults", func(t *testing.T) {
		svc, propertyRepo, _ := newTestPropertyService()
		prop := createProperty(accountID)

		propertyRepo.On("FindAllForAccount", ctx, accountID, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Page == 1 && f.PageSize == 20 && f.OrderBy == "name" && f.OrderDir == "asc"
		})).Return([]property.Property{*prop}, int64(1), nil)

		results, total, err := svc.List(ctx, accountID, ListFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
	})
}

func TestPropertyServiceUpdate(t *testing.T) {
	accountID := testAccountID()
	ctx := context.Background()

	t.Run("updates editable fields", func(t *testing.T) {
		svc, propertyRepo, _ := newTestPropertyService()
		prop := createProperty(accountID)
		propertyRepo.On("FindByIDForAccount", ctx, accountID, prop.ID).Return(prop, nil)
		propertyRepo.On("Save", ctx, mock.Anything).Return(nil)

		result, err := svc.Update(ctx, accountID, prop.ID, UpdatePropertyRequest{
			Name:    "14 Oak St",
			Address: "14 Oak St",
		})
		require.NoError(t, err)
		assert.Equal(t, "14 Oak St", result.Name)
		assert.Equal(t, 2, result.Version)
	})
}

func TestPropertyServiceDelete(t *testing.T) {
	accountID := testAccountID()
	ctx := context.Background()

	t.Run("soft deletes when no active work orders", func(t *testing.T) {
		svc, propertyRepo, workOrderRepo := newTestPropertyService()
		prop := createProperty(accountID)
		propertyRepo.On("FindByIDForAccount", ctx, accountID, prop.ID).Return(prop, nil)
		workOrderRepo.On("CountActiveByPropertyForAccount", ctx, accountID, prop.ID).Return(int64(0), nil)
		propertyRepo.On("Save", ctx, mock.MatchedBy(func(p *property.Property) bool {
			return p.DeletedAt != nil
		})).Return(nil)

		err := svc.Delete(ctx, accountID, prop.ID)
		require.NoError(t, err)
		propertyRepo.AssertExpectations(t)
	})

	t.Run("refuses delete while work orders are active", func(t *testing.T) {
		svc, propertyRepo, workOrderRepo := newTestPropertyService()
		prop := createProperty(accountID)
		propertyRepo.On("FindByIDForAccount", ctx, accountID, prop.ID).Return(prop, nil)
		workOrderRepo.On("CountActiveByPropertyForAccount", ctx, accountID, prop.ID).Return(int64(2), nil)

		err := svc.Delete(ctx, accountID, prop.ID)
		require.Error(t, err)
		assert.Equal(t, shared.KindConflict, shared.KindOf(err))
		propertyRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
