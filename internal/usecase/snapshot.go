package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

// looseDecimal decodes amounts tolerantly: storage written by older clients
// may carry string-typed numbers.
type looseDecimal struct {
	decimal.Decimal
}

func (d *looseDecimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		d.Decimal = decimal.Zero
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		d.Decimal = decimal.Zero
		return nil
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	d.Decimal = v

	return nil
}

func (d looseDecimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}

type snapshotIncome struct {
	ID     string       `json:"id"`
	Amount looseDecimal `json:"amount"`
	Date   time.Time    `json:"date"`
}

type snapshotExpense struct {
	ID       string       `json:"id"`
	Amount   looseDecimal `json:"amount"`
	Category string       `json:"category"`
	Date     time.Time    `json:"date"`
}

type snapshotDoc struct {
	Incomes      []snapshotIncome  `json:"incomes"`
	Expenses     []snapshotExpense `json:"expenses"`
	MonthlyLimit looseDecimal      `json:"monthlyLimit"`
}

// encodeSnapshot serializes the full ledger state into the persistence blob.
func encodeSnapshot(incomes []domain.Income, expenses []domain.Expense, limit decimal.Decimal) (string, error) {
	doc := snapshotDoc{
		Incomes:      make([]snapshotIncome, len(incomes)),
		Expenses:     make([]snapshotExpense, len(expenses)),
		MonthlyLimit: looseDecimal{limit},
	}
	for i, in := range incomes {
		doc.Incomes[i] = snapshotIncome{ID: in.ID, Amount: looseDecimal{in.Amount}, Date: in.Date}
	}
	for i, ex := range expenses {
		doc.Expenses[i] = snapshotExpense{ID: ex.ID, Amount: looseDecimal{ex.Amount}, Category: ex.Category, Date: ex.Date}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(data), nil
}

// decodeSnapshot parses a persistence blob back into ledger state.
func decodeSnapshot(blob string) ([]domain.Income, []domain.Expense, decimal.Decimal, error) {
	var doc snapshotDoc
	if err := json.Unmarshal([]byte(blob), &doc); err != nil {
		return nil, nil, decimal.Zero, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	incomes := make([]domain.Income, len(doc.Incomes))
	for i, in := range doc.Incomes {
		incomes[i] = domain.Income{ID: in.ID, Amount: in.Amount.Decimal, Date: in.Date}
	}
	expenses := make([]domain.Expense, len(doc.Expenses))
	for i, ex := range doc.Expenses {
		expenses[i] = domain.Expense{ID: ex.ID, Amount: ex.Amount.Decimal, Category: ex.Category, Date: ex.Date}
	}

	return incomes, expenses, doc.MonthlyLimit.Decimal, nil
}
