package export

import (
	"encoding/xml"
	"fmt"

	"github.com/iho/gobudget/internal/domain"
)

type xmlIncomeRow struct {
	ID     string `xml:"id"`
	Amount string `xml:"amount"`
	Date   string `xml:"date"`
}

type xmlExpenseRow struct {
	ID       string `xml:"id"`
	Amount   string `xml:"amount"`
	Category string `xml:"category"`
	Date     string `xml:"date"`
}

type xmlIncomes struct {
	Rows []xmlIncomeRow `xml:"row"`
}

type xmlExpenses struct {
	Rows []xmlExpenseRow `xml:"row"`
}

type xmlExport struct {
	XMLName  xml.Name    `xml:"data"`
	Incomes  xmlIncomes  `xml:"incomes"`
	Expenses xmlExpenses `xml:"expenses"`
}

// exportXML emits <data> with one <row> per entry, each field as a
// same-named element. Dates use the long locale form, other fields their
// raw string form.
func exportXML(incomes []domain.Income, expenses []domain.Expense) (string, error) {
	doc := xmlExport{
		Incomes:  xmlIncomes{Rows: make([]xmlIncomeRow, len(incomes))},
		Expenses: xmlExpenses{Rows: make([]xmlExpenseRow, len(expenses))},
	}

	for i, income := range incomes {
		doc.Incomes.Rows[i] = xmlIncomeRow{
			ID:     income.ID,
			Amount: income.Amount.String(),
			Date:   formatLongDate(income.Date),
		}
	}
	for i, expense := range expenses {
		doc.Expenses.Rows[i] = xmlExpenseRow{
			ID:       expense.ID,
			Amount:   expense.Amount.String(),
			Category: expense.Category,
			Date:     formatLongDate(expense.Date),
		}
	}

	data, err := xml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode XML export: %w", err)
	}
	return string(data), nil
}
