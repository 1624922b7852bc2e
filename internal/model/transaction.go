package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single recorded expense against a category.
type Transaction struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	BudgetID        uint            `json:"budget_id" gorm:"not null;index"`
	CategoryID      uint            `json:"category_id" gorm:"not null;index"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	TransactionDate time.Time       `json:"transaction_date" gorm:"not null;index"`
	Description     string          `json:"description" gorm:"size:500;not null;default:''"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
