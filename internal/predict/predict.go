// Package predict estimates next-month spending from expense history.
//
// Both strategies treat the chronologically last month bucket as the
// current, still-accumulating month and exclude it from the history they
// look at.
package predict

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

// Mode selects the prediction strategy.
type Mode int

const (
	// Average averages the monthly totals of every closed month.
	Average Mode = iota
	// LastMonth returns the total of the most recent closed month.
	LastMonth
)

// ParseMode maps a caller-supplied tag to a Mode.
func ParseMode(tag string) (Mode, error) {
	switch tag {
	case "average":
		return Average, nil
	case "lastMonth":
		return LastMonth, nil
	default:
		return 0, domain.ErrUnsupportedFormat
	}
}

// String returns the wire tag of the mode.
func (m Mode) String() string {
	if m == LastMonth {
		return "lastMonth"
	}
	return "average"
}

// Predict returns the predicted next-month expense amount. An empty history
// predicts zero.
func Predict(mode Mode, expenses []domain.Expense) (decimal.Decimal, error) {
	if len(expenses) == 0 {
		return decimal.Zero, nil
	}

	totals := domain.GroupByMonth(domain.ExpenseCashflows(expenses))
	sorted := totals.SortedKeys()

	switch mode {
	case Average:
		return averageClosedMonths(totals, sorted), nil
	case LastMonth:
		return lastClosedMonth(totals, sorted), nil
	default:
		return decimal.Zero, domain.ErrUnsupportedFormat
	}
}

// averageClosedMonths divides the total of all buckets but the last by
// (bucket count - 1). A single bucket has no closed months, so the divisor
// guard returns zero instead of dividing by zero.
func averageClosedMonths(totals *domain.MonthlyTotals, sorted []domain.MonthKey) decimal.Decimal {
	closed := len(sorted) - 1
	if closed < 1 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, key := range sorted[:closed] {
		sum = sum.Add(totals.Total(key))
	}
	return sum.Div(decimal.NewFromInt(int64(closed)))
}

// lastClosedMonth returns the second-to-last bucket total, zero when fewer
// than two buckets exist.
func lastClosedMonth(totals *domain.MonthlyTotals, sorted []domain.MonthKey) decimal.Decimal {
	if len(sorted) < 2 {
		return decimal.Zero
	}
	return totals.Total(sorted[len(sorted)-2])
}
