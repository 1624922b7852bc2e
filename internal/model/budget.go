package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a user's total allocatable amount. A user has at most one
// budget, enforced by the unique index on user_id.
type Budget struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	Amount    decimal.Decimal `json:"budget" gorm:"column:budget;type:decimal(20,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relations
	Categories []Category `json:"categories,omitempty" gorm:"foreignKey:BudgetID"`
}
