package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is a named sub-allocation of a budget with its own ceiling.
// BudgetedAmount may be zero but never negative.
type Category struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	BudgetID       uint            `json:"budget_id" gorm:"not null;index"`
	Name           string          `json:"name" gorm:"size:255;not null"`
	BudgetedAmount decimal.Decimal `json:"budgeted_amount" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
