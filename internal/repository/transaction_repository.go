package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pennywise/internal/model"
)

// TransactionRepository defines transaction persistence operations.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *model.Transaction) error
	FindByID(ctx context.Context, id uint) (*model.Transaction, error)
	ListByBudgetID(ctx context.Context, budgetID uint) ([]model.Transaction, error)
	Update(ctx context.Context, id uint, amount decimal.Decimal, categoryID uint, date time.Time, description string) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	SumByBudgetID(ctx context.Context, budgetID uint) (decimal.Decimal, error)
	SumByCategoryID(ctx context.Context, categoryID uint) (decimal.Decimal, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create creates a new transaction record.
func (r *transactionRepository) Create(ctx context.Context, transaction *model.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

// FindByID finds a transaction by ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uint) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.db.WithContext(ctx).First(&transaction, id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// ListByBudgetID lists a budget's transactions newest date first.
func (r *transactionRepository) ListByBudgetID(ctx context.Context, budgetID uint) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := r.db.WithContext(ctx).
		Where("budget_id = ?", budgetID).
		Order("transaction_date DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// Update replaces a transaction's mutable fields. Returns true iff a row matched.
func (r *transactionRepository) Update(ctx context.Context, id uint, amount decimal.Decimal, categoryID uint, date time.Time, description string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"amount":           amount,
			"category_id":      categoryID,
			"transaction_date": date,
			"description":      description,
		})
	return res.RowsAffected > 0, res.Error
}

// Delete removes a transaction. Returns true iff a row matched.
func (r *transactionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Transaction{})
	return res.RowsAffected > 0, res.Error
}

// SumByBudgetID returns the total spent against a budget; zero when it has
// no transactions.
func (r *transactionRepository) SumByBudgetID(ctx context.Context, budgetID uint) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("budget_id = ?", budgetID).
		Scan(&result).Error
	return result.Total, err
}

// SumByCategoryID returns the total spent against a category; zero when it
// has no transactions.
func (r *transactionRepository) SumByCategoryID(ctx context.Context, categoryID uint) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("category_id = ?", categoryID).
		Scan(&result).Error
	return result.Total, err
}
