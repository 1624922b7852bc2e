package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"pennywise/internal/errors"
	"pennywise/internal/model"
)

func newSummaryMocks() (*MockBudgetRepository, *MockCategoryRepository, *MockTransactionRepository, SummaryService) {
	mockBudgetRepo := new(MockBudgetRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	mockTxRepo := new(MockTransactionRepository)
	svc := NewSummaryService(mockBudgetRepo, mockCategoryRepo, mockTxRepo)
	return mockBudgetRepo, mockCategoryRepo, mockTxRepo, svc
}

// A budget of 1000 with Rent (500) and Food (200) allocated, and 50 + 100
// spent in Food. Every summary figure below derives from this one setup.
func TestSummaryService_WorkedExample(t *testing.T) {
	const budgetID, foodID = uint(1), uint(2)

	budget := &model.Budget{ID: budgetID, UserID: 1, Amount: decimal.NewFromInt(1000)}
	food := &model.Category{ID: foodID, BudgetID: budgetID, Name: "Food", BudgetedAmount: decimal.NewFromInt(200)}

	t.Run("remaining budget is amount minus allocations", func(t *testing.T) {
		mockBudgetRepo, mockCategoryRepo, _, svc := newSummaryMocks()
		mockBudgetRepo.On("FindByID", mock.Anything, budgetID).Return(budget, nil)
		mockCategoryRepo.On("SumBudgeted", mock.Anything, budgetID).Return(decimal.NewFromInt(700), nil)

		remaining, err := svc.RemainingBudget(context.Background(), budgetID)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(300).Equal(remaining), "got %s", remaining)
	})

	t.Run("total budgeted is the sum of allocations", func(t *testing.T) {
		mockBudgetRepo, mockCategoryRepo, _, svc := newSummaryMocks()
		mockBudgetRepo.On("FindByID", mock.Anything, budgetID).Return(budget, nil)
		mockCategoryRepo.On("SumBudgeted", mock.Anything, budgetID).Return(decimal.NewFromInt(700), nil)

		total, err := svc.TotalBudgeted(context.Background(), budgetID)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(700).Equal(total), "got %s", total)
	})

	t.Run("total spent is the sum of the budget's transactions", func(t *testing.T) {
		mockBudgetRepo, _, mockTxRepo, svc := newSummaryMocks()
		mockBudgetRepo.On("FindByID", mock.Anything, budgetID).Return(budget, nil)
		mockTxRepo.On("SumByBudgetID", mock.Anything, budgetID).Return(decimal.NewFromInt(150), nil)

		spent, err := svc.TotalSpent(context.Background(), budgetID)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(150).Equal(spent), "got %s", spent)
	})

	t.Run("category spent is the sum of its transactions", func(t *testing.T) {
		_, mockCategoryRepo, mockTxRepo, svc := newSummaryMocks()
		mockCategoryRepo.On("FindByID", mock.Anything, foodID).Return(food, nil)
		mockTxRepo.On("SumByCategoryID", mock.Anything, foodID).Return(decimal.NewFromInt(150), nil)

		spent, err := svc.CategoryTotalSpent(context.Background(), foodID)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(150).Equal(spent), "got %s", spent)
	})

	t.Run("category remaining is allocation minus its spend", func(t *testing.T) {
		_, mockCategoryRepo, mockTxRepo, svc := newSummaryMocks()
		mockCategoryRepo.On("FindByID", mock.Anything, foodID).Return(food, nil)
		mockTxRepo.On("SumByCategoryID", mock.Anything, foodID).Return(decimal.NewFromInt(150), nil)

		remaining, err := svc.CategoryRemaining(context.Background(), foodID)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(remaining), "got %s", remaining)
	})
}

func TestSummaryService_ZeroChildren(t *testing.T) {
	t.Run("budget with no categories retains its full amount", func(t *testing.T) {
		mockBudgetRepo, mockCategoryRepo, _, svc := newSummaryMocks()
		mockBudgetRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Budget{
			ID:     1,
			Amount: decimal.NewFromInt(1000),
		}, nil)
		mockCategoryRepo.On("SumBudgeted", mock.Anything, uint(1)).Return(decimal.Zero, nil)

		remaining, err := svc.RemainingBudget(context.Background(), 1)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1000).Equal(remaining), "got %s", remaining)
	})

	t.Run("budget with no transactions has zero spend", func(t *testing.T) {
		mockBudgetRepo, _, mockTxRepo, svc := newSummaryMocks()
		mockBudgetRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Budget{ID: 1}, nil)
		mockTxRepo.On("SumByBudgetID", mock.Anything, uint(1)).Return(decimal.Zero, nil)

		spent, err := svc.TotalSpent(context.Background(), 1)

		assert.NoError(t, err)
		assert.True(t, spent.IsZero(), "got %s", spent)
	})

	t.Run("category with no transactions retains its full allocation", func(t *testing.T) {
		_, mockCategoryRepo, mockTxRepo, svc := newSummaryMocks()
		mockCategoryRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.Category{
			ID:             2,
			BudgetedAmount: decimal.NewFromInt(200),
		}, nil)
		mockTxRepo.On("SumByCategoryID", mock.Anything, uint(2)).Return(decimal.Zero, nil)

		remaining, err := svc.CategoryRemaining(context.Background(), 2)

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(200).Equal(remaining), "got %s", remaining)
	})
}

func TestSummaryService_Overspend(t *testing.T) {
	// Spending past the allocation goes negative instead of clamping.
	_, mockCategoryRepo, mockTxRepo, svc := newSummaryMocks()
	mockCategoryRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.Category{
		ID:             2,
		BudgetedAmount: decimal.NewFromInt(100),
	}, nil)
	mockTxRepo.On("SumByCategoryID", mock.Anything, uint(2)).Return(decimal.RequireFromString("120.50"), nil)

	remaining, err := svc.CategoryRemaining(context.Background(), 2)

	assert.NoError(t, err)
	assert.True(t, decimal.RequireFromString("-20.50").Equal(remaining), "got %s", remaining)
}

func TestSummaryService_NotFound(t *testing.T) {
	t.Run("unknown budget", func(t *testing.T) {
		mockBudgetRepo, mockCategoryRepo, mockTxRepo, svc := newSummaryMocks()
		mockBudgetRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.RemainingBudget(context.Background(), 99)
		assert.Equal(t, errors.ErrBudgetNotFound, err)

		_, err = svc.TotalSpent(context.Background(), 99)
		assert.Equal(t, errors.ErrBudgetNotFound, err)

		_, err = svc.TotalBudgeted(context.Background(), 99)
		assert.Equal(t, errors.ErrBudgetNotFound, err)

		mockCategoryRepo.AssertNotCalled(t, "SumBudgeted", mock.Anything, mock.Anything)
		mockTxRepo.AssertNotCalled(t, "SumByBudgetID", mock.Anything, mock.Anything)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, mockCategoryRepo, mockTxRepo, svc := newSummaryMocks()
		mockCategoryRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CategoryRemaining(context.Background(), 99)
		assert.Equal(t, errors.ErrCategoryNotFound, err)

		_, err = svc.CategoryTotalSpent(context.Background(), 99)
		assert.Equal(t, errors.ErrCategoryNotFound, err)

		mockTxRepo.AssertNotCalled(t, "SumByCategoryID", mock.Anything, mock.Anything)
	})
}
