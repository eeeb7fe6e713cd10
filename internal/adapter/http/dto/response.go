package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// IncomeResponse represents an income entry in API responses.
type IncomeResponse struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// IncomeFromDomain converts a domain income to a response.
func IncomeFromDomain(in domain.Income) IncomeResponse {
	return IncomeResponse{ID: in.ID, Amount: in.Amount, Date: in.Date}
}

// IncomesFromDomain converts domain incomes to responses.
func IncomesFromDomain(incomes []domain.Income) []IncomeResponse {
	result := make([]IncomeResponse, len(incomes))
	for i, in := range incomes {
		result[i] = IncomeFromDomain(in)
	}
	return result
}

// ExpenseResponse represents an expense entry in API responses.
type ExpenseResponse struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(ex domain.Expense) ExpenseResponse {
	return ExpenseResponse{ID: ex.ID, Amount: ex.Amount, Category: ex.Category, Date: ex.Date}
}

// ExpensesFromDomain converts domain expenses to responses.
func ExpensesFromDomain(expenses []domain.Expense) []ExpenseResponse {
	result := make([]ExpenseResponse, len(expenses))
	for i, ex := range expenses {
		result[i] = ExpenseFromDomain(ex)
	}
	return result
}

// ListIncomesResponse wraps an income listing.
type ListIncomesResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
	Total   int64            `json:"total"`
}

// ListExpensesResponse wraps an expense listing.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int64             `json:"total"`
}

// LimitResponse represents the monthly limit.
type LimitResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

// BudgetResponse is the dashboard summary for the current month.
type BudgetResponse struct {
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// BudgetFromSummary converts a usecase summary to a response.
func BudgetFromSummary(s usecase.BudgetSummary) BudgetResponse {
	return BudgetResponse{
		MonthlyLimit: s.MonthlyLimit,
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
	}
}

// ReportResponse wraps a generated report.
type ReportResponse struct {
	Mode   string `json:"mode"`
	Report string `json:"report"`
}

// PredictionResponse wraps a predicted next-month amount.
type PredictionResponse struct {
	Mode   string          `json:"mode"`
	Amount decimal.Decimal `json:"amount"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
