package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/export"
	"github.com/iho/gobudget/internal/predict"
	"github.com/iho/gobudget/internal/report"
)

// InsightService defines the behavior needed by InsightHandler.
type InsightService interface {
	GenerateReport(mode report.Mode, start, end *time.Time) (string, error)
	PredictExpenses(mode predict.Mode) (decimal.Decimal, error)
	ExportData(format export.Format) (string, error)
}

// InsightHandler handles report, prediction and export HTTP requests.
type InsightHandler struct {
	budgetUC InsightService
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(budgetUC InsightService) *InsightHandler {
	return &InsightHandler{budgetUC: budgetUC}
}

// GenerateReport renders a report; mode defaults to "category".
func (h *InsightHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("mode")
	if tag == "" {
		tag = "category"
	}

	mode, err := report.ParseMode(tag)
	if err != nil {
		writeError(w, mapDomainError(err), "unknown report mode", tag)
		return
	}

	start, err := parseTimeQuery(r, "start")
	if err != nil {
		writeError(w, mapDomainError(err), "invalid start date", r.URL.Query().Get("start"))
		return
	}
	end, err := parseTimeQuery(r, "end")
	if err != nil {
		writeError(w, mapDomainError(err), "invalid end date", r.URL.Query().Get("end"))
		return
	}

	out, err := h.budgetUC.GenerateReport(mode, start, end)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to generate report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReportResponse{Mode: mode.String(), Report: out})
}

// PredictExpenses returns the predicted next-month amount; mode defaults to
// "average".
func (h *InsightHandler) PredictExpenses(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("mode")
	if tag == "" {
		tag = "average"
	}

	mode, err := predict.ParseMode(tag)
	if err != nil {
		writeError(w, mapDomainError(err), "unknown prediction mode", tag)
		return
	}

	amount, err := h.budgetUC.PredictExpenses(mode)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to predict expenses", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PredictionResponse{Mode: mode.String(), Amount: amount})
}

// ExportData serves the serialized snapshot under the format's MIME type.
func (h *InsightHandler) ExportData(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("format")
	if tag == "" {
		tag = "json"
	}

	format, err := export.ParseFormat(tag)
	if err != nil {
		writeError(w, mapDomainError(err), "unknown export format", tag)
		return
	}

	doc, err := h.budgetUC.ExportData(format)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to export data", err.Error())
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
