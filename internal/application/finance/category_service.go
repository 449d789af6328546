package finance

import (
	"context"
	"errors"
	"strings"

	"github.com/rentdesk/backend/internal/domain/finance"
	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryService handles expense category management
type CategoryService struct {
	categoryRepo finance.ExpenseCategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo finance.ExpenseCategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new expense category
func (s *CategoryService) Create(
	ctx context.Context,
	accountID uuid.UUID,
	req CreateCategoryRequest,
) (*CategoryResponse, error) {
	existing, err := s.categoryRepo.FindAllForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if strings.EqualFold(existing[i].Name, req.Name) {
			return nil, shared.NewConflict("CATEGORY_ALREADY_EXISTS",
				"An expense category with this name already exists")
		}
	}

	category, err := finance.NewExpenseCategory(accountID, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID returns a single expense category
func (s *CategoryService) GetByID(
	ctx context.Context,
	accountID uuid.UUID,
	categoryID uuid.UUID,
) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForAccount(ctx, accountID, categoryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFound("CATEGORY_NOT_FOUND", "Expense category not found")
		}
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// List returns all categories for the account
func (s *CategoryService) List(
	ctx context.Context,
	accountID uuid.UUID,
) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAllForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses, nil
}
