package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iho/gobudget/internal/domain"
)

type jsonIncomeRow struct {
	ID     string      `json:"id"`
	Amount json.Number `json:"amount"`
	Date   time.Time   `json:"date"`
}

type jsonExpenseRow struct {
	ID       string      `json:"id"`
	Amount   json.Number `json:"amount"`
	Category string      `json:"category"`
	Date     time.Time   `json:"date"`
}

type jsonExport struct {
	Incomes  []jsonIncomeRow  `json:"incomes"`
	Expenses []jsonExpenseRow `json:"expenses"`
}

// exportJSON emits a single pretty-printed object with both collections.
// Amounts are plain JSON numbers, dates Go's default RFC 3339 form.
func exportJSON(incomes []domain.Income, expenses []domain.Expense) (string, error) {
	doc := jsonExport{
		Incomes:  make([]jsonIncomeRow, len(incomes)),
		Expenses: make([]jsonExpenseRow, len(expenses)),
	}

	for i, income := range incomes {
		doc.Incomes[i] = jsonIncomeRow{
			ID:     income.ID,
			Amount: json.Number(income.Amount.String()),
			Date:   income.Date,
		}
	}
	for i, expense := range expenses {
		doc.Expenses[i] = jsonExpenseRow{
			ID:       expense.ID,
			Amount:   json.Number(expense.Amount.String()),
			Category: expense.Category,
			Date:     expense.Date,
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON export: %w", err)
	}
	return string(data), nil
}
