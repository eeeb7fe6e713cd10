package export

import (
	"strings"

	"github.com/iho/gobudget/internal/domain"
)

// exportCSV emits one section per non-empty collection: a header line of
// field names, then one line per entry with fields in declaration order.
// Empty collections contribute nothing; non-empty sections are joined by a
// blank line.
func exportCSV(incomes []domain.Income, expenses []domain.Expense) string {
	sections := make([]string, 0, 2)

	if len(incomes) > 0 {
		lines := make([]string, 0, len(incomes)+1)
		lines = append(lines, "id,amount,date")
		for _, income := range incomes {
			lines = append(lines, strings.Join([]string{
				income.ID,
				income.Amount.String(),
				formatLongDate(income.Date),
			}, ","))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(expenses) > 0 {
		lines := make([]string, 0, len(expenses)+1)
		lines = append(lines, "id,amount,category,date")
		for _, expense := range expenses {
			lines = append(lines, strings.Join([]string{
				expense.ID,
				expense.Amount.String(),
				expense.Category,
				formatLongDate(expense.Date),
			}, ","))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n")
}
