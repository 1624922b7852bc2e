package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"pennywise/internal/errors"
	"pennywise/internal/model"
	"pennywise/internal/repository"
)

// CategoryService handles category operations.
type CategoryService interface {
	Create(ctx context.Context, budgetID uint, name string, budgetedAmount decimal.Decimal) (*model.Category, error)
	ListByBudget(ctx context.Context, budgetID uint) ([]model.Category, error)
	Update(ctx context.Context, id uint, newName string, newBudgetedAmount decimal.Decimal) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	budgetRepo   repository.BudgetRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, budgetRepo repository.BudgetRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
	}
}

// Create adds a category to a budget. The referenced budget must exist; the
// check runs here rather than relying on engine-level foreign keys.
func (s *categoryService) Create(ctx context.Context, budgetID uint, name string, budgetedAmount decimal.Decimal) (*model.Category, error) {
	if budgetedAmount.IsNegative() {
		return nil, errors.ErrInvalidAmount
	}

	ok, err := s.budgetRepo.Exists(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("check budget: %w", err)
	}
	if !ok {
		return nil, errors.ErrUnknownBudget
	}

	category := &model.Category{
		BudgetID:       budgetID,
		Name:           name,
		BudgetedAmount: budgetedAmount,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// ListByBudget returns a budget's categories. A budget with no categories
// yields an empty list, not an error; an unknown budget yields not-found.
func (s *categoryService) ListByBudget(ctx context.Context, budgetID uint) ([]model.Category, error) {
	ok, err := s.budgetRepo.Exists(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("check budget: %w", err)
	}
	if !ok {
		return nil, errors.ErrBudgetNotFound
	}
	return s.categoryRepo.ListByBudgetID(ctx, budgetID)
}

// Update renames a category and replaces its allocation. Returns true iff
// the category existed.
func (s *categoryService) Update(ctx context.Context, id uint, newName string, newBudgetedAmount decimal.Decimal) (bool, error) {
	if newBudgetedAmount.IsNegative() {
		return false, errors.ErrInvalidAmount
	}
	return s.categoryRepo.Update(ctx, id, newName, newBudgetedAmount)
}

// Delete removes a category and its transactions. Returns true iff the
// category existed.
func (s *categoryService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.categoryRepo.Delete(ctx, id)
}
