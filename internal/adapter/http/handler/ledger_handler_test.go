package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// stubLedgerService implements LedgerService for handler tests.
type stubLedgerService struct {
	incomes  []domain.Income
	expenses []domain.Expense
	limit    decimal.Decimal
	removed  []string
}

func (s *stubLedgerService) AddIncome(_ context.Context, amount decimal.Decimal, date time.Time) (domain.Income, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return domain.Income{}, err
	}
	if err := domain.ValidateDate(date); err != nil {
		return domain.Income{}, err
	}
	income := domain.Income{ID: "ID-1", Amount: amount, Date: date}
	s.incomes = append(s.incomes, income)
	return income, nil
}

func (s *stubLedgerService) AddExpense(_ context.Context, amount decimal.Decimal, category string, date time.Time) (domain.Expense, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return domain.Expense{}, err
	}
	if err := domain.ValidateDate(date); err != nil {
		return domain.Expense{}, err
	}
	expense := domain.Expense{ID: "ID-1", Amount: amount, Category: category, Date: date}
	s.expenses = append(s.expenses, expense)
	return expense, nil
}

func (s *stubLedgerService) RemoveIncome(_ context.Context, id string)  { s.removed = append(s.removed, id) }
func (s *stubLedgerService) RemoveExpense(_ context.Context, id string) { s.removed = append(s.removed, id) }
func (s *stubLedgerService) Incomes() []domain.Income                   { return s.incomes }
func (s *stubLedgerService) Expenses() []domain.Expense                 { return s.expenses }
func (s *stubLedgerService) MonthlyLimit() decimal.Decimal              { return s.limit }

func (s *stubLedgerService) SetMonthlyLimit(_ context.Context, limit decimal.Decimal) error {
	if err := domain.ValidateLimit(limit); err != nil {
		return err
	}
	s.limit = limit
	return nil
}

func (s *stubLedgerService) Budget(_ time.Time) usecase.BudgetSummary {
	return usecase.BudgetSummary{
		MonthlyLimit: s.limit,
		TotalIncome:  decimal.NewFromInt(900),
		TotalExpense: decimal.NewFromInt(300),
	}
}

func newLedgerRouter(svc *stubLedgerService) http.Handler {
	h := NewLedgerHandler(svc)
	r := chi.NewRouter()
	r.Post("/incomes", h.AddIncome)
	r.Get("/incomes", h.ListIncomes)
	r.Delete("/incomes/{id}", h.RemoveIncome)
	r.Post("/expenses", h.AddExpense)
	r.Get("/expenses", h.ListExpenses)
	r.Delete("/expenses/{id}", h.RemoveExpense)
	r.Put("/limit", h.SetLimit)
	r.Get("/limit", h.GetLimit)
	r.Get("/budget", h.GetBudget)
	return r
}

func TestLedgerHandler_AddIncome(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid income",
			body:       `{"amount": "900", "date": "2024-03-01T00:00:00Z"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "zero amount",
			body:       `{"amount": "0", "date": "2024-03-01T00:00:00Z"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing date",
			body:       `{"amount": "100"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newLedgerRouter(&stubLedgerService{})
			req := httptest.NewRequest(http.MethodPost, "/incomes", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestLedgerHandler_AddExpense_CategoryPolicy(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "known category",
			body:       `{"amount": "50", "category": "Food", "date": "2024-03-01T00:00:00Z"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown category",
			body:       `{"amount": "50", "category": "Gadgets", "date": "2024-03-01T00:00:00Z"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty category",
			body:       `{"amount": "50", "category": "", "date": "2024-03-01T00:00:00Z"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubLedgerService{}
			router := newLedgerRouter(svc)
			req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus != http.StatusCreated && len(svc.expenses) != 0 {
				t.Error("rejected request must not reach the service")
			}
		})
	}
}

func TestLedgerHandler_ListIncomes(t *testing.T) {
	svc := &stubLedgerService{
		incomes: []domain.Income{
			{ID: "ID-1", Amount: decimal.NewFromInt(100), Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	router := newLedgerRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/incomes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Incomes []struct {
			ID string `json:"id"`
		} `json:"incomes"`
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Incomes) != 1 || resp.Incomes[0].ID != "ID-1" {
		t.Errorf("unexpected response: %s", rec.Body.String())
	}
}

func TestLedgerHandler_RemoveIncome(t *testing.T) {
	svc := &stubLedgerService{}
	router := newLedgerRouter(svc)

	// Unknown ids still return 204
	req := httptest.NewRequest(http.MethodDelete, "/incomes/ID-999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if len(svc.removed) != 1 || svc.removed[0] != "ID-999" {
		t.Errorf("expected removal forwarded with the raw id, got %v", svc.removed)
	}
}

func TestLedgerHandler_Limit(t *testing.T) {
	svc := &stubLedgerService{}
	router := newLedgerRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/limit", strings.NewReader(`{"amount": "2000"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPut, "/limit", strings.NewReader(`{"amount": "-1"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative limit, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/limit", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Amount.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected limit 2000, got %s", resp.Amount)
	}
}

func TestLedgerHandler_GetBudget(t *testing.T) {
	svc := &stubLedgerService{limit: decimal.NewFromInt(1000)}
	router := newLedgerRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/budget", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		MonthlyLimit decimal.Decimal `json:"monthly_limit"`
		TotalIncome  decimal.Decimal `json:"total_income"`
		TotalExpense decimal.Decimal `json:"total_expense"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.MonthlyLimit.Equal(decimal.NewFromInt(1000)) ||
		!resp.TotalIncome.Equal(decimal.NewFromInt(900)) ||
		!resp.TotalExpense.Equal(decimal.NewFromInt(300)) {
		t.Errorf("unexpected budget response: %s", rec.Body.String())
	}
}
