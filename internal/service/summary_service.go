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

// SummaryService computes derived monetary figures. Every sum treats "no
// rows" as zero; not-found is raised only when the budget or category row
// itself is absent. Results carry full precision and are rounded only at
// the response boundary.
type SummaryService interface {
	RemainingBudget(ctx context.Context, budgetID uint) (decimal.Decimal, error)
	TotalSpent(ctx context.Context, budgetID uint) (decimal.Decimal, error)
	TotalBudgeted(ctx context.Context, budgetID uint) (decimal.Decimal, error)
	CategoryRemaining(ctx context.Context, categoryID uint) (decimal.Decimal, error)
	CategoryTotalSpent(ctx context.Context, categoryID uint) (decimal.Decimal, error)
}

type summaryService struct {
	budgetRepo      repository.BudgetRepository
	categoryRepo    repository.CategoryRepository
	transactionRepo repository.TransactionRepository
}

// NewSummaryService creates a new summary service.
func NewSummaryService(
	budgetRepo repository.BudgetRepository,
	categoryRepo repository.CategoryRepository,
	transactionRepo repository.TransactionRepository,
) SummaryService {
	return &summaryService{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// RemainingBudget is the budget amount minus the sum of its category
// allocations. A budget with zero categories retains its full amount.
func (s *summaryService) RemainingBudget(ctx context.Context, budgetID uint) (decimal.Decimal, error) {
	budget, err := s.findBudget(ctx, budgetID)
	if err != nil {
		return decimal.Zero, err
	}
	allocated, err := s.categoryRepo.SumBudgeted(ctx, budgetID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum budgeted: %w", err)
	}
	return budget.Amount.Sub(allocated), nil
}

// TotalSpent is the sum of a budget's transactions.
func (s *summaryService) TotalSpent(ctx context.Context, budgetID uint) (decimal.Decimal, error) {
	if _, err := s.findBudget(ctx, budgetID); err != nil {
		return decimal.Zero, err
	}
	total, err := s.transactionRepo.SumByBudgetID(ctx, budgetID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum spent: %w", err)
	}
	return total, nil
}

// TotalBudgeted is the sum of a budget's category allocations.
func (s *summaryService) TotalBudgeted(ctx context.Context, budgetID uint) (decimal.Decimal, error) {
	if _, err := s.findBudget(ctx, budgetID); err != nil {
		return decimal.Zero, err
	}
	total, err := s.categoryRepo.SumBudgeted(ctx, budgetID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum budgeted: %w", err)
	}
	return total, nil
}

// CategoryRemaining is the category allocation minus the sum of its
// transactions. A category with zero transactions retains its full
// allocation.
func (s *summaryService) CategoryRemaining(ctx context.Context, categoryID uint) (decimal.Decimal, error) {
	category, err := s.findCategory(ctx, categoryID)
	if err != nil {
		return decimal.Zero, err
	}
	spent, err := s.transactionRepo.SumByCategoryID(ctx, categoryID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum spent: %w", err)
	}
	return category.BudgetedAmount.Sub(spent), nil
}

// CategoryTotalSpent is the sum of a category's transactions.
func (s *summaryService) CategoryTotalSpent(ctx context.Context, categoryID uint) (decimal.Decimal, error) {
	if _, err := s.findCategory(ctx, categoryID); err != nil {
		return decimal.Zero, err
	}
	total, err := s.transactionRepo.SumByCategoryID(ctx, categoryID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum spent: %w", err)
	}
	return total, nil
}

func (s *summaryService) findBudget(ctx context.Context, budgetID uint) (*model.Budget, error) {
	budget, err := s.budgetRepo.FindByID(ctx, budgetID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBudgetNotFound
		}
		return nil, fmt.Errorf("find budget: %w", err)
	}
	return budget, nil
}

func (s *summaryService) findCategory(ctx context.Context, categoryID uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}
