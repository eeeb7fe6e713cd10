package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddIncomeRequest represents a request to record an income.
type AddIncomeRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// AddExpenseRequest represents a request to record an expense.
type AddExpenseRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
}

// SetLimitRequest represents a request to overwrite the monthly limit.
type SetLimitRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
