// Package report renders textual income/expense reports from ledger
// snapshots. The two report variants share the income section and differ in
// how the expense section is grouped.
package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

// Mode selects the report variant.
type Mode int

const (
	// Category groups filtered expenses by category.
	Category Mode = iota
	// Date groups filtered expenses by calendar month.
	Date
)

// ParseMode maps a caller-supplied tag to a Mode.
func ParseMode(tag string) (Mode, error) {
	switch tag {
	case "category":
		return Category, nil
	case "date":
		return Date, nil
	default:
		return 0, domain.ErrUnsupportedFormat
	}
}

// String returns the wire tag of the mode.
func (m Mode) String() string {
	if m == Date {
		return "date"
	}
	return "category"
}

// Generate renders a two-section report over the entries whose dates lie
// within [start, end] inclusive. A nil bound imposes no constraint on that
// side.
func Generate(mode Mode, incomes []domain.Income, expenses []domain.Expense, start, end *time.Time) (string, error) {
	incomes = filterIncomes(incomes, start, end)
	expenses = filterExpenses(expenses, start, end)

	incomeSection := formatTotals(domain.GroupByMonth(domain.IncomeCashflows(incomes)))

	switch mode {
	case Category:
		return "Income Report:\n" + incomeSection + "\nCategory Report:\n" + formatCategories(expenses), nil
	case Date:
		expenseSection := formatTotals(domain.GroupByMonth(domain.ExpenseCashflows(expenses)))
		return "Income Report:\n" + incomeSection + "\n Date Report:\n" + expenseSection, nil
	default:
		return "", domain.ErrUnsupportedFormat
	}
}

func inRange(date time.Time, start, end *time.Time) bool {
	if start != nil && date.Before(*start) {
		return false
	}
	if end != nil && date.After(*end) {
		return false
	}
	return true
}

func filterIncomes(incomes []domain.Income, start, end *time.Time) []domain.Income {
	filtered := make([]domain.Income, 0, len(incomes))
	for _, income := range incomes {
		if inRange(income.Date, start, end) {
			filtered = append(filtered, income)
		}
	}
	return filtered
}

func filterExpenses(expenses []domain.Expense, start, end *time.Time) []domain.Expense {
	filtered := make([]domain.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if inRange(expense.Date, start, end) {
			filtered = append(filtered, expense)
		}
	}
	return filtered
}

// formatTotals renders month buckets in first-seen order, one
// "[<key>]:<currency>" line per bucket.
func formatTotals(totals *domain.MonthlyTotals) string {
	lines := make([]string, 0, totals.Len())
	for _, key := range totals.Keys() {
		lines = append(lines, "["+key.String()+"]:"+domain.FormatCurrency(totals.Total(key)))
	}
	return strings.Join(lines, "\n")
}

// formatCategories sums expenses per category and renders one line per
// category in first-seen order.
func formatCategories(expenses []domain.Expense) string {
	order := make([]string, 0)
	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		if _, ok := totals[expense.Category]; !ok {
			order = append(order, expense.Category)
		}
		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
	}

	lines := make([]string, 0, len(order))
	for _, category := range order {
		lines = append(lines, "["+category+"]:"+domain.FormatCurrency(totals[category]))
	}
	return strings.Join(lines, "\n")
}
