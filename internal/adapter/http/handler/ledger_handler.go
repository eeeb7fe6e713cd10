package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	AddIncome(ctx context.Context, amount decimal.Decimal, date time.Time) (domain.Income, error)
	AddExpense(ctx context.Context, amount decimal.Decimal, category string, date time.Time) (domain.Expense, error)
	RemoveIncome(ctx context.Context, id string)
	RemoveExpense(ctx context.Context, id string)
	Incomes() []domain.Income
	Expenses() []domain.Expense
	SetMonthlyLimit(ctx context.Context, limit decimal.Decimal) error
	MonthlyLimit() decimal.Decimal
	Budget(at time.Time) usecase.BudgetSummary
}

// LedgerHandler handles entry and limit HTTP requests.
type LedgerHandler struct {
	budgetUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(budgetUC LedgerService) *LedgerHandler {
	return &LedgerHandler{budgetUC: budgetUC}
}

// AddIncome records a new income entry.
func (h *LedgerHandler) AddIncome(w http.ResponseWriter, r *http.Request) {
	var req dto.AddIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	income, err := h.budgetUC.AddIncome(r.Context(), req.Amount, req.Date)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add income", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.IncomeFromDomain(income))
}

// ListIncomes lists all income entries in insertion order.
func (h *LedgerHandler) ListIncomes(w http.ResponseWriter, r *http.Request) {
	incomes := h.budgetUC.Incomes()
	writeJSON(w, http.StatusOK, dto.ListIncomesResponse{
		Incomes: dto.IncomesFromDomain(incomes),
		Total:   int64(len(incomes)),
	})
}

// RemoveIncome removes an income by id. Unknown ids are a silent no-op.
func (h *LedgerHandler) RemoveIncome(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing income ID", "")
		return
	}

	h.budgetUC.RemoveIncome(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// AddExpense records a new expense entry. The category must belong to the
// closed set; the engine below this layer accepts any non-empty label.
func (h *LedgerHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := domain.ValidateKnownCategory(req.Category); err != nil {
		writeError(w, mapDomainError(err), "invalid category", err.Error())
		return
	}

	expense, err := h.budgetUC.AddExpense(r.Context(), req.Amount, req.Category, req.Date)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add expense", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ExpenseFromDomain(expense))
}

// ListExpenses lists all expense entries in insertion order.
func (h *LedgerHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses := h.budgetUC.Expenses()
	writeJSON(w, http.StatusOK, dto.ListExpensesResponse{
		Expenses: dto.ExpensesFromDomain(expenses),
		Total:    int64(len(expenses)),
	})
}

// RemoveExpense removes an expense by id. Unknown ids are a silent no-op.
func (h *LedgerHandler) RemoveExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing expense ID", "")
		return
	}

	h.budgetUC.RemoveExpense(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// SetLimit overwrites the monthly limit.
func (h *LedgerHandler) SetLimit(w http.ResponseWriter, r *http.Request) {
	var req dto.SetLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.budgetUC.SetMonthlyLimit(r.Context(), req.Amount); err != nil {
		writeError(w, mapDomainError(err), "failed to set limit", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LimitResponse{Amount: req.Amount})
}

// GetLimit returns the monthly limit.
func (h *LedgerHandler) GetLimit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.LimitResponse{Amount: h.budgetUC.MonthlyLimit()})
}

// GetBudget returns the current month's dashboard summary.
func (h *LedgerHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	summary := h.budgetUC.Budget(time.Now().UTC())
	writeJSON(w, http.StatusOK, dto.BudgetFromSummary(summary))
}
