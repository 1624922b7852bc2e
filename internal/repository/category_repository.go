package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pennywise/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	ListByBudgetID(ctx context.Context, budgetID uint) ([]model.Category, error)
	Update(ctx context.Context, id uint, name string, budgetedAmount decimal.Decimal) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	SumBudgeted(ctx context.Context, budgetID uint) (decimal.Decimal, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// FindByID finds a category by ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListByBudgetID lists all categories of a budget in creation order.
func (r *categoryRepository) ListByBudgetID(ctx context.Context, budgetID uint) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Where("budget_id = ?", budgetID).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Update renames a category and replaces its allocation. Returns true iff a row matched.
func (r *categoryRepository) Update(ctx context.Context, id uint, name string, budgetedAmount decimal.Decimal) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":            name,
			"budgeted_amount": budgetedAmount,
		})
	return res.RowsAffected > 0, res.Error
}

// Delete removes a category and its transactions in one transaction.
// Returns true iff the category existed.
func (r *categoryRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&model.Category{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if err := tx.Where("category_id = ?", id).Delete(&model.Transaction{}).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

// SumBudgeted returns the sum of budgeted amounts over a budget's
// categories; zero when the budget has none.
func (r *categoryRepository) SumBudgeted(ctx context.Context, budgetID uint) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Select("COALESCE(SUM(budgeted_amount), 0) AS total").
		Where("budget_id = ?", budgetID).
		Scan(&result).Error
	return result.Total, err
}
