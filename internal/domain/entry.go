package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income represents a single recorded income entry. Immutable once created;
// destroyed only by explicit removal by id.
type Income struct {
	Date   time.Time
	ID     string
	Amount decimal.Decimal
}

// Expense represents a single recorded expense entry. The category is an
// opaque label at this layer; the closed category set is enforced at the
// API boundary.
type Expense struct {
	Date     time.Time
	ID       string
	Category string
	Amount   decimal.Decimal
}

// Cashflow is the amount/date pair the temporal aggregator operates on.
type Cashflow struct {
	Date   time.Time
	Amount decimal.Decimal
}

// IncomeCashflows projects incomes onto their aggregation shape.
func IncomeCashflows(incomes []Income) []Cashflow {
	flows := make([]Cashflow, len(incomes))
	for i, in := range incomes {
		flows[i] = Cashflow{Date: in.Date, Amount: in.Amount}
	}
	return flows
}

// ExpenseCashflows projects expenses onto their aggregation shape.
func ExpenseCashflows(expenses []Expense) []Cashflow {
	flows := make([]Cashflow, len(expenses))
	for i, ex := range expenses {
		flows[i] = Cashflow{Date: ex.Date, Amount: ex.Amount}
	}
	return flows
}
