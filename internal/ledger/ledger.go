package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

// Ledger owns the recorded incomes, expenses and the monthly spending limit.
// Entries keep insertion order, which is display order only. All access goes
// through the mutex: one mutation at a time, readers get consistent copies.
type Ledger struct {
	mu       sync.RWMutex
	idGen    *SequenceGenerator
	incomes  []domain.Income
	expenses []domain.Expense
	limit    decimal.Decimal
}

// New creates an empty ledger with its own id sequence.
func New() *Ledger {
	return &Ledger{idGen: NewSequenceGenerator()}
}

// AddIncome validates and appends an income entry, returning the stored copy.
func (l *Ledger) AddIncome(amount decimal.Decimal, date time.Time) (domain.Income, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return domain.Income{}, err
	}
	if err := domain.ValidateDate(date); err != nil {
		return domain.Income{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	income := domain.Income{
		ID:     l.idGen.Generate(),
		Amount: amount,
		Date:   date,
	}
	l.incomes = append(l.incomes, income)

	return income, nil
}

// AddExpense validates and appends an expense entry, returning the stored
// copy. The category may be any non-empty string.
func (l *Ledger) AddExpense(amount decimal.Decimal, category string, date time.Time) (domain.Expense, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return domain.Expense{}, err
	}
	if err := domain.ValidateCategory(category); err != nil {
		return domain.Expense{}, err
	}
	if err := domain.ValidateDate(date); err != nil {
		return domain.Expense{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	expense := domain.Expense{
		ID:       l.idGen.Generate(),
		Amount:   amount,
		Category: category,
		Date:     date,
	}
	l.expenses = append(l.expenses, expense)

	return expense, nil
}

// RemoveIncome removes the income with the given id. Removing an unknown id
// is a no-op, not an error.
func (l *Ledger) RemoveIncome(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, income := range l.incomes {
		if income.ID == id {
			l.incomes = append(l.incomes[:i], l.incomes[i+1:]...)
			return
		}
	}
}

// RemoveExpense removes the expense with the given id. Removing an unknown
// id is a no-op, not an error.
func (l *Ledger) RemoveExpense(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, expense := range l.expenses {
		if expense.ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			return
		}
	}
}

// Incomes returns a copy of the income entries in insertion order.
func (l *Ledger) Incomes() []domain.Income {
	l.mu.RLock()
	defer l.mu.RUnlock()

	incomes := make([]domain.Income, len(l.incomes))
	copy(incomes, l.incomes)
	return incomes
}

// Expenses returns a copy of the expense entries in insertion order.
func (l *Ledger) Expenses() []domain.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()

	expenses := make([]domain.Expense, len(l.expenses))
	copy(expenses, l.expenses)
	return expenses
}

// TotalIncome sums incomes dated in the same calendar year and month as at.
// The reference time is an explicit parameter so callers control the clock.
func (l *Ledger) TotalIncome(at time.Time) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	key := domain.MonthKeyOf(at)
	total := decimal.Zero
	for _, income := range l.incomes {
		if domain.MonthKeyOf(income.Date) == key {
			total = total.Add(income.Amount)
		}
	}
	return total
}

// TotalExpense sums expenses dated in the same calendar year and month as at.
func (l *Ledger) TotalExpense(at time.Time) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	key := domain.MonthKeyOf(at)
	total := decimal.Zero
	for _, expense := range l.expenses {
		if domain.MonthKeyOf(expense.Date) == key {
			total = total.Add(expense.Amount)
		}
	}
	return total
}

// SetMonthlyLimit overwrites the limit wholesale. No history is kept.
func (l *Ledger) SetMonthlyLimit(limit decimal.Decimal) error {
	if err := domain.ValidateLimit(limit); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.limit = limit

	return nil
}

// MonthlyLimit returns the configured limit.
func (l *Ledger) MonthlyLimit() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.limit
}

// Restore replaces the ledger contents with persisted entries, keeping their
// stored ids and advancing the id sequence past the highest suffix seen.
func (l *Ledger) Restore(incomes []domain.Income, expenses []domain.Expense, limit decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.incomes = make([]domain.Income, len(incomes))
	copy(l.incomes, incomes)
	l.expenses = make([]domain.Expense, len(expenses))
	copy(l.expenses, expenses)
	l.limit = limit

	for _, income := range l.incomes {
		l.idGen.Advance(sequenceOf(income.ID))
	}
	for _, expense := range l.expenses {
		l.idGen.Advance(sequenceOf(expense.ID))
	}
}
