package attachment

import (
	"context"
	"fmt"
	"time"

	"github.com/rentdesk/backend/internal/domain/attachment"
	"github.com/rentdesk/backend/internal/domain/finance"
	"github.com/rentdesk/backend/internal/domain/property"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// ============================================================================
// Mocks
// ============================================================================

// MockReceiptRepository is a mock implementation of attachment.ReceiptRepository
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*attachment.Receipt, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attachment.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter attachment.ReceiptFilter) ([]attachment.Receipt, int64, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]attachment.Receipt), args.Get(1).(int64), args.Error(2)
}

func (m *MockReceiptRepository) Create(ctx context.Context, receipt *attachment.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) Save(ctx context.Context, receipt *attachment.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) LinkToExpense(ctx context.Context, accountID, expenseID, receiptID uuid.UUID) (*attachment.Receipt, *finance.Expense, error) {
	args := m.Called(ctx, accountID, expenseID, receiptID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*attachment.Receipt), args.Get(1).(*finance.Expense), args.Error(2)
}

func (m *MockReceiptRepository) UnlinkFromExpense(ctx context.Context, accountID, expenseID uuid.UUID) (*attachment.Receipt, error) {
	args := m.Called(ctx, accountID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attachment.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) CreateExpenseAndLink(ctx context.Context, expense *finance.Expense, receiptID uuid.UUID) (*attachment.Receipt, error) {
	args := m.Called(ctx, expense, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attachment.Receipt), args.Error(1)
}

var _ attachment.ReceiptRepository = (*MockReceiptRepository)(nil)

// MockPhotoRepository is a mock implementation of attachment.PhotoRepository
type MockPhotoRepository struct {
	mock.Mock
}

func (m *MockPhotoRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*attachment.Photo, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attachment.Photo), args.Error(1)
}

func (m *MockPhotoRepository) FindByOwner(ctx context.Context, accountID uuid.UUID, owner attachment.OwnerRef) ([]attachment.Photo, error) {
	args := m.Called(ctx, accountID, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attachment.Photo), args.Error(1)
}

func (m *MockPhotoRepository) CountByOwner(ctx context.Context, accountID uuid.UUID, owner attachment.OwnerRef) (int64, error) {
	args := m.Called(ctx, accountID, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPhotoRepository) Save(ctx context.Context, photo *attachment.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) CreateWithPlacement(ctx context.Context, photo *attachment.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepository) SwapPrimary(ctx context.Context, accountID uuid.UUID, owner attachment.OwnerRef, photoID uuid.UUID) (*attachment.Photo, error) {
	args := m.Called(ctx, accountID, owner, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attachment.Photo), args.Error(1)
}

func (m *MockPhotoRepository) Reorder(ctx context.Context, accountID uuid.UUID, owner attachment.OwnerRef, orderedIDs []uuid.UUID) ([]attachment.Photo, error) {
	args := m.Called(ctx, accountID, owner, orderedIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]attachment.Photo), args.Error(1)
}

func (m *MockPhotoRepository) HardDelete(ctx context.Context, accountID uuid.UUID, owner attachment.OwnerRef, id uuid.UUID) error {
	args := m.Called(ctx, accountID, owner, id)
	return args.Error(0)
}

var _ attachment.PhotoRepository = (*MockPhotoRepository)(nil)

// MockExpenseRepository is a mock implementation of finance.ExpenseRepository
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*finance.Expense, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID, filter finance.ExpenseFilter) ([]finance.Expense, int64, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]finance.Expense), args.Get(1).(int64), args.Error(2)
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

var _ finance.ExpenseRepository = (*MockExpenseRepository)(nil)

// MockExpenseCategoryRepository is a mock implementation of finance.ExpenseCategoryRepository
type MockExpenseCategoryRepository struct {
	mock.Mock
}

func (m *MockExpenseCategoryRepository) FindByIDForAccount(ctx context.Context, accountID, id uuid.UUID) (*finance.ExpenseCategory, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepository) FindAllForAccount(ctx context.Context, accountID uuid.UUID) ([]finance.ExpenseCategory, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepository) Save(ctx context.Context, category *finance.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

var _ finance.ExpenseCategoryRepository = (*MockExpenseCategoryRepository)(nil)

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

// MockObjectStorageService is a mock implementation of ObjectStorageService
type MockObjectStorageService struct {
	mock.Mock
}

func (m *MockObjectStorageService) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorageService) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorageService) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorageService) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

var _ ObjectStorageService = (*MockObjectStorageService)(nil)

// MockThumbnailGenerator is a mock implementation of ThumbnailGenerator
type MockThumbnailGenerator struct {
	mock.Mock
}

func (m *MockThumbnailGenerator) Generate(ctx context.Context, storageKey string) (string, error) {
	args := m.Called(ctx, storageKey)
	return args.String(0), args.Error(1)
}

var _ ThumbnailGenerator = (*MockThumbnailGenerator)(nil)

// ============================================================================
// Test Helpers
// ============================================================================

func testAccountID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func testPropertyID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func testUserID() uuid.UUID {
	return uuid.MustParse("44444444-4444-4444-4444-444444444444")
}

func testReceiptStorageKey(accountID uuid.UUID) string {
	return fmt.Sprintf("%s/receipts/2026/%s.pdf", accountID, uuid.New())
}

func testPhotoStorageKey(accountID uuid.UUID) string {
	return fmt.Sprintf("%s/property-photos/2026/%s.jpg", accountID, uuid.New())
}

func createTestReceipt(accountID uuid.UUID) *attachment.Receipt {
	userID := testUserID()
	receipt, _ := attachment.NewReceipt(
		accountID,
		testReceiptStorageKey(accountID),
		"receipt.pdf",
		"application/pdf",
		2048,
		&userID,
		nil,
	)
	return receipt
}

func createLinkedTestReceipt(accountID, expenseID uuid.UUID) *attachment.Receipt {
	receipt := createTestReceipt(accountID)
	_ = receipt.MarkProcessed(expenseID, nil)
	return receipt
}

func createTestPhoto(accountID uuid.UUID, owner attachment.OwnerRef) *attachment.Photo {
	userID := testUserID()
	photo, _ := attachment.NewPhoto(
		accountID,
		owner,
		fmt.Sprintf("%s/%s/2026/%s.jpg", accountID, owner.Kind.Namespace(), uuid.New()),
		nil,
		"kitchen.jpg",
		"image/jpeg",
		1024,
		&userID,
	)
	return photo
}

func createTestProperty(accountID uuid.UUID) *property.Property {
	p, _ := property.NewProperty(accountID, "12 Oak St", "12 Oak St", "Springfield", "IL", "62701", "", nil)
	return p
}

func createTestWorkOrder(accountID, propertyID uuid.UUID) *property.WorkOrder {
	wo, _ := property.NewWorkOrder(accountID, propertyID, "Fix leaking sink", "", nil, nil)
	return wo
}

func createTestExpense(accountID, propertyID, categoryID uuid.UUID) *finance.Expense {
	e, _ := finance.NewExpense(accountID, propertyID, categoryID,
		decimal.NewFromFloat(99.95), time.Now(), "Repair", nil)
	return e
}

func createTestCategory(accountID uuid.UUID) *finance.ExpenseCategory {
	c, _ := finance.NewExpenseCategory(accountID, "Maintenance")
	return c
}
