package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pennywise/internal/model"
)

// BudgetRepository defines budget persistence operations.
type BudgetRepository interface {
	CreateWithCategories(ctx context.Context, budget *model.Budget, categories []model.Category) error
	FindByID(ctx context.Context, id uint) (*model.Budget, error)
	FindByUserID(ctx context.Context, userID uint) (*model.Budget, error)
	Exists(ctx context.Context, id uint) (bool, error)
	UpdateAmount(ctx context.Context, userID uint, amount decimal.Decimal) (bool, error)
	DeleteByUserID(ctx context.Context, userID uint) (bool, error)
}

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository.
func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

// CreateWithCategories inserts a budget and its seed categories in a single
// transaction, so a partial failure leaves no budget behind.
func (r *budgetRepository) CreateWithCategories(ctx context.Context, budget *model.Budget, categories []model.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(budget).Error; err != nil {
			return err
		}
		if len(categories) == 0 {
			return nil
		}
		for i := range categories {
			categories[i].BudgetID = budget.ID
		}
		return tx.Create(&categories).Error
	})
}

// FindByID finds a budget by ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uint) (*model.Budget, error) {
	var budget model.Budget
	if err := r.db.WithContext(ctx).First(&budget, id).Error; err != nil {
		return nil, err
	}
	return &budget, nil
}

// FindByUserID finds a user's budget.
func (r *budgetRepository) FindByUserID(ctx context.Context, userID uint) (*model.Budget, error) {
	var budget model.Budget
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&budget).Error; err != nil {
		return nil, err
	}
	return &budget, nil
}

// Exists reports whether a budget row with the given ID is present.
func (r *budgetRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Budget{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// UpdateAmount replaces the budget amount for a user. Returns true iff a row matched.
func (r *budgetRepository) UpdateAmount(ctx context.Context, userID uint, amount decimal.Decimal) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("user_id = ?", userID).
		Update("budget", amount)
	return res.RowsAffected > 0, res.Error
}

// DeleteByUserID removes a user's budget together with its categories and
// transactions in one transaction. Returns true iff a budget existed.
func (r *budgetRepository) DeleteByUserID(ctx context.Context, userID uint) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var budget model.Budget
		if err := tx.Where("user_id = ?", userID).First(&budget).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		if err := tx.Where("budget_id = ?", budget.ID).Delete(&model.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("budget_id = ?", budget.ID).Delete(&model.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&budget).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}
