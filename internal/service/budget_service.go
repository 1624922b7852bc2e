package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pennywise/internal/errors"
	"pennywise/internal/model"
	"pennywise/internal/repository"
)

// defaultCategoryNames are seeded with every new budget, allocation zero
// until the user assigns one.
var defaultCategoryNames = []string{"Housing", "Food", "Transport", "Savings"}

// BudgetService handles budget operations.
type BudgetService interface {
	Create(ctx context.Context, userID uint, amount decimal.Decimal) (*model.Budget, error)
	GetByUser(ctx context.Context, userID uint) (*model.Budget, error)
	UpdateAmount(ctx context.Context, userID uint, amount decimal.Decimal) (bool, error)
	Delete(ctx context.Context, userID uint) (bool, error)
}

type budgetService struct {
	budgetRepo repository.BudgetRepository
	userRepo   repository.UserRepository
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo repository.BudgetRepository, userRepo repository.UserRepository) BudgetService {
	return &budgetService{
		budgetRepo: budgetRepo,
		userRepo:   userRepo,
	}
}

// Create sets up a budget for a user and seeds the default categories in the
// same transaction. A user can hold only one budget.
func (s *budgetService) Create(ctx context.Context, userID uint, amount decimal.Decimal) (*model.Budget, error) {
	if amount.IsNegative() {
		return nil, errors.ErrInvalidAmount
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("check user: %w", err)
	}

	existing, err := s.budgetRepo.FindByUserID(ctx, userID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check budget existence: %w", err)
	}
	if existing != nil {
		return nil, errors.ErrBudgetExists
	}

	budget := &model.Budget{
		UserID: userID,
		Amount: amount,
	}
	seed := make([]model.Category, 0, len(defaultCategoryNames))
	for _, name := range defaultCategoryNames {
		seed = append(seed, model.Category{
			Name:           name,
			BudgetedAmount: decimal.Zero,
		})
	}
	if err := s.budgetRepo.CreateWithCategories(ctx, budget, seed); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrBudgetExists
		}
		return nil, fmt.Errorf("create budget: %w", err)
	}
	return budget, nil
}

// GetByUser returns a user's budget.
func (s *budgetService) GetByUser(ctx context.Context, userID uint) (*model.Budget, error) {
	budget, err := s.budgetRepo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// UpdateAmount replaces the total allocatable amount. Returns true iff the
// user had a budget.
func (s *budgetService) UpdateAmount(ctx context.Context, userID uint, amount decimal.Decimal) (bool, error) {
	if amount.IsNegative() {
		return false, errors.ErrInvalidAmount
	}
	return s.budgetRepo.UpdateAmount(ctx, userID, amount)
}

// Delete removes a user's budget and everything under it. Returns true iff
// the user had a budget.
func (s *budgetService) Delete(ctx context.Context, userID uint) (bool, error) {
	return s.budgetRepo.DeleteByUserID(ctx, userID)
}
