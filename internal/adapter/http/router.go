package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/gobudget/internal/adapter/http/handler"
	"github.com/iho/gobudget/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LedgerHandler  *handler.LedgerHandler
	InsightHandler *handler.InsightHandler
	HealthHandler  *handler.HealthHandler
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Recoverer)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Incomes
		r.Route("/incomes", func(r chi.Router) {
			r.Post("/", cfg.LedgerHandler.AddIncome)
			r.Get("/", cfg.LedgerHandler.ListIncomes)
			r.Delete("/{id}", cfg.LedgerHandler.RemoveIncome)
		})

		// Expenses
		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", cfg.LedgerHandler.AddExpense)
			r.Get("/", cfg.LedgerHandler.ListExpenses)
			r.Delete("/{id}", cfg.LedgerHandler.RemoveExpense)
		})

		// Limit and dashboard summary
		r.Put("/limit", cfg.LedgerHandler.SetLimit)
		r.Get("/limit", cfg.LedgerHandler.GetLimit)
		r.Get("/budget", cfg.LedgerHandler.GetBudget)

		// Derived outputs
		r.Get("/reports", cfg.InsightHandler.GenerateReport)
		r.Get("/predictions", cfg.InsightHandler.PredictExpenses)
		r.Get("/exports", cfg.InsightHandler.ExportData)
	})

	return r
}
