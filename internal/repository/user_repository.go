package repository

import (
	"context"

	"gorm.io/gorm"

	"pennywise/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error)
	DeleteByEmail(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword stores a new password hash. Returns true iff a row matched.
func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash)
	return res.RowsAffected > 0, res.Error
}

// DeleteByEmail removes a user and, in the same transaction, the user's
// budget with its categories and transactions. Returns true iff the user
// existed.
func (r *userRepository) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("email = ?", email).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		var budget model.Budget
		err := tx.Where("user_id = ?", user.ID).First(&budget).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
		if err == nil {
			if err := tx.Where("budget_id = ?", budget.ID).Delete(&model.Transaction{}).Error; err != nil {
				return err
			}
			if err := tx.Where("budget_id = ?", budget.ID).Delete(&model.Category{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&budget).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&user).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}
