package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pennywise/internal/errors"
	"pennywise/internal/model"
	"pennywise/internal/repository"
)

// TransactionService handles expense recording.
type TransactionService interface {
	Create(ctx context.Context, budgetID uint, amount decimal.Decimal, categoryID uint, date time.Time, description string) (*model.Transaction, error)
	ListByBudget(ctx context.Context, budgetID uint) ([]model.Transaction, error)
	Update(ctx context.Context, id uint, newAmount decimal.Decimal, newCategoryID uint, newDate time.Time, newDescription string) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	categoryRepo    repository.CategoryRepository
	budgetRepo      repository.BudgetRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	categoryRepo repository.CategoryRepository,
	budgetRepo repository.BudgetRepository,
) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
	}
}

// Create records an expense. Both references are verified before the write:
// the budget must exist and the category must belong to it.
func (s *transactionService) Create(ctx context.Context, budgetID uint, amount decimal.Decimal, categoryID uint, date time.Time, description string) (*model.Transaction, error) {
	if amount.IsNegative() {
		return nil, errors.ErrInvalidAmount
	}

	ok, err := s.budgetRepo.Exists(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("check budget: %w", err)
	}
	if !ok {
		return nil, errors.ErrUnknownBudget
	}

	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUnknownCategory
		}
		return nil, fmt.Errorf("check category: %w", err)
	}
	if category.BudgetID != budgetID {
		return nil, errors.ErrUnknownCategory
	}

	transaction := &model.Transaction{
		BudgetID:        budgetID,
		CategoryID:      categoryID,
		Amount:          amount,
		TransactionDate: date,
		Description:     description,
	}
	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return transaction, nil
}

// ListByBudget returns a budget's transactions, newest date first.
func (s *transactionService) ListByBudget(ctx context.Context, budgetID uint) ([]model.Transaction, error) {
	ok, err := s.budgetRepo.Exists(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("check budget: %w", err)
	}
	if !ok {
		return nil, errors.ErrBudgetNotFound
	}
	return s.transactionRepo.ListByBudgetID(ctx, budgetID)
}

// Update replaces a transaction's amount, category, date and description.
// The new category must belong to the transaction's own budget, the same
// rule Create enforces. Returns true iff the transaction existed.
func (s *transactionService) Update(ctx context.Context, id uint, newAmount decimal.Decimal, newCategoryID uint, newDate time.Time, newDescription string) (bool, error) {
	if newAmount.IsNegative() {
		return false, errors.ErrInvalidAmount
	}

	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, fmt.Errorf("find transaction: %w", err)
	}

	category, err := s.categoryRepo.FindByID(ctx, newCategoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, errors.ErrUnknownCategory
		}
		return false, fmt.Errorf("check category: %w", err)
	}
	if category.BudgetID != transaction.BudgetID {
		return false, errors.ErrUnknownCategory
	}

	return s.transactionRepo.Update(ctx, id, newAmount, newCategoryID, newDate, newDescription)
}

// Delete removes a transaction. Returns true iff it existed.
func (s *transactionService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.transactionRepo.Delete(ctx, id)
}
