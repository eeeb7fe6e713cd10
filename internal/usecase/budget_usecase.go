package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/export"
	"github.com/iho/gobudget/internal/infrastructure/metrics"
	"github.com/iho/gobudget/internal/ledger"
	"github.com/iho/gobudget/internal/predict"
	"github.com/iho/gobudget/internal/report"
)

// Snapshot save retry settings.
const (
	saveInitialInterval = 50 * time.Millisecond
	saveMaxInterval     = 1 * time.Second
	saveMaxElapsedTime  = 5 * time.Second
)

// BudgetUseCase is the single call surface over the ledger and the
// reporting, prediction and export strategies. It owns one ledger per
// profile and writes the full snapshot to the store after every mutation.
type BudgetUseCase struct {
	ledger    *ledger.Ledger
	store     SnapshotStore
	profileID string
	logger    zerolog.Logger
}

// NewBudgetUseCase creates a BudgetUseCase with an empty ledger. Call Load
// to seed it from the store.
func NewBudgetUseCase(store SnapshotStore, profileID string, logger zerolog.Logger) *BudgetUseCase {
	return &BudgetUseCase{
		ledger:    ledger.New(),
		store:     store,
		profileID: profileID,
		logger:    logger.With().Str("profile_id", profileID).Logger(),
	}
}

// Load seeds the ledger from the persisted snapshot, keeping stored entry
// ids. A missing snapshot leaves the ledger empty.
func (uc *BudgetUseCase) Load(ctx context.Context) error {
	blob, found, err := uc.store.Load(ctx, uc.profileID)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if !found {
		return nil
	}

	incomes, expenses, limit, err := decodeSnapshot(blob)
	if err != nil {
		return err
	}

	uc.ledger.Restore(incomes, expenses, limit)
	uc.logger.Info().
		Int("incomes", len(incomes)).
		Int("expenses", len(expenses)).
		Msg("ledger restored from snapshot")

	return nil
}

// AddIncome records an income and persists the snapshot.
func (uc *BudgetUseCase) AddIncome(ctx context.Context, amount decimal.Decimal, date time.Time) (domain.Income, error) {
	income, err := uc.ledger.AddIncome(amount, date)
	if err != nil {
		return domain.Income{}, err
	}

	metrics.EntriesCreated.WithLabelValues("income").Inc()
	uc.persist(ctx)

	return income, nil
}

// AddExpense records an expense and persists the snapshot.
func (uc *BudgetUseCase) AddExpense(ctx context.Context, amount decimal.Decimal, category string, date time.Time) (domain.Expense, error) {
	expense, err := uc.ledger.AddExpense(amount, category, date)
	if err != nil {
		return domain.Expense{}, err
	}

	metrics.EntriesCreated.WithLabelValues("expense").Inc()
	uc.persist(ctx)

	return expense, nil
}

// RemoveIncome removes an income by id; an unknown id is a silent no-op.
func (uc *BudgetUseCase) RemoveIncome(ctx context.Context, id string) {
	uc.ledger.RemoveIncome(id)
	metrics.EntriesRemoved.WithLabelValues("income").Inc()
	uc.persist(ctx)
}

// RemoveExpense removes an expense by id; an unknown id is a silent no-op.
func (uc *BudgetUseCase) RemoveExpense(ctx context.Context, id string) {
	uc.ledger.RemoveExpense(id)
	metrics.EntriesRemoved.WithLabelValues("expense").Inc()
	uc.persist(ctx)
}

// SetMonthlyLimit overwrites the limit and persists the snapshot.
func (uc *BudgetUseCase) SetMonthlyLimit(ctx context.Context, limit decimal.Decimal) error {
	if err := uc.ledger.SetMonthlyLimit(limit); err != nil {
		return err
	}

	metrics.LimitUpdates.Inc()
	uc.persist(ctx)

	return nil
}

// MonthlyLimit returns the configured limit.
func (uc *BudgetUseCase) MonthlyLimit() decimal.Decimal {
	return uc.ledger.MonthlyLimit()
}

// Incomes returns the recorded incomes in insertion order.
func (uc *BudgetUseCase) Incomes() []domain.Income {
	return uc.ledger.Incomes()
}

// Expenses returns the recorded expenses in insertion order.
func (uc *BudgetUseCase) Expenses() []domain.Expense {
	return uc.ledger.Expenses()
}

// BudgetSummary is the dashboard view: the limit plus both totals for the
// month containing the reference time.
type BudgetSummary struct {
	MonthlyLimit decimal.Decimal
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// Budget computes the summary for the month of at. The reference time is an
// explicit parameter; callers pass the wall clock.
func (uc *BudgetUseCase) Budget(at time.Time) BudgetSummary {
	return BudgetSummary{
		MonthlyLimit: uc.ledger.MonthlyLimit(),
		TotalIncome:  uc.ledger.TotalIncome(at),
		TotalExpense: uc.ledger.TotalExpense(at),
	}
}

// TotalIncomeCurrentMonth sums incomes in the month of at.
func (uc *BudgetUseCase) TotalIncomeCurrentMonth(at time.Time) decimal.Decimal {
	return uc.ledger.TotalIncome(at)
}

// TotalExpenseCurrentMonth sums expenses in the month of at.
func (uc *BudgetUseCase) TotalExpenseCurrentMonth(at time.Time) decimal.Decimal {
	return uc.ledger.TotalExpense(at)
}

// GenerateReport renders the selected report over the current snapshot,
// restricted to [start, end] when bounds are set.
func (uc *BudgetUseCase) GenerateReport(mode report.Mode, start, end *time.Time) (string, error) {
	out, err := report.Generate(mode, uc.ledger.Incomes(), uc.ledger.Expenses(), start, end)
	if err != nil {
		return "", err
	}

	metrics.ReportsGenerated.WithLabelValues(mode.String()).Inc()

	return out, nil
}

// PredictExpenses runs the selected prediction strategy over the expense
// history.
func (uc *BudgetUseCase) PredictExpenses(mode predict.Mode) (decimal.Decimal, error) {
	amount, err := predict.Predict(mode, uc.ledger.Expenses())
	if err != nil {
		return decimal.Zero, err
	}

	metrics.Predictions.WithLabelValues(mode.String()).Inc()

	return amount, nil
}

// ExportData serializes the current snapshot in the selected format.
func (uc *BudgetUseCase) ExportData(format export.Format) (string, error) {
	doc, err := export.Export(format, uc.ledger.Incomes(), uc.ledger.Expenses())
	if err != nil {
		return "", err
	}

	metrics.Exports.WithLabelValues(format.String()).Inc()

	return doc, nil
}

// persist writes the full snapshot to the store, retrying transient
// failures with exponential backoff. A save that still fails is logged and
// dropped: in-memory state is never rolled back, so memory and storage can
// diverge until the next successful save.
func (uc *BudgetUseCase) persist(ctx context.Context) {
	blob, err := encodeSnapshot(uc.ledger.Incomes(), uc.ledger.Expenses(), uc.ledger.MonthlyLimit())
	if err != nil {
		metrics.SnapshotSaves.WithLabelValues("error").Inc()
		uc.logger.Error().Err(err).Msg("failed to encode snapshot")
		return
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = saveInitialInterval
	b.MaxInterval = saveMaxInterval
	b.MaxElapsedTime = saveMaxElapsedTime

	err = backoff.Retry(func() error {
		return uc.store.Save(ctx, uc.profileID, blob)
	}, backoff.WithContext(b, ctx))
	if err != nil {
		metrics.SnapshotSaves.WithLabelValues("error").Inc()
		uc.logger.Error().Err(err).Msg("failed to persist snapshot")
		return
	}

	metrics.SnapshotSaves.WithLabelValues("ok").Inc()
}
