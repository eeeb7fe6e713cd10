package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MonthKey identifies an aggregation bucket by calendar year and month.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthKeyOf derives the bucket key for a timestamp.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// String renders the key as "<year>-<month>" with a 1-based month and no
// zero padding, e.g. "2024-1".
func (k MonthKey) String() string {
	return fmt.Sprintf("%d-%d", k.Year, int(k.Month))
}

// Before reports whether k is chronologically earlier than other, comparing
// year first and month second. The ordering is total: distinct keys never
// compare equal.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// MonthlyTotals maps month buckets to summed amounts. Keys keep their
// first-seen order so textual output stays deterministic.
type MonthlyTotals struct {
	totals map[MonthKey]decimal.Decimal
	keys   []MonthKey
}

// NewMonthlyTotals creates an empty bucket map.
func NewMonthlyTotals() *MonthlyTotals {
	return &MonthlyTotals{totals: make(map[MonthKey]decimal.Decimal)}
}

// Add accumulates an amount into the key's bucket.
func (m *MonthlyTotals) Add(key MonthKey, amount decimal.Decimal) {
	if _, ok := m.totals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.totals[key] = m.totals[key].Add(amount)
}

// Total returns the bucket sum for key, zero for an unknown key.
func (m *MonthlyTotals) Total(key MonthKey) decimal.Decimal {
	return m.totals[key]
}

// Len returns the number of buckets.
func (m *MonthlyTotals) Len() int {
	return len(m.keys)
}

// Keys returns bucket keys in first-seen order.
func (m *MonthlyTotals) Keys() []MonthKey {
	keys := make([]MonthKey, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// SortedKeys returns bucket keys ascending by (year, month). This is the
// sole chronology contract the prediction strategies rely on.
func (m *MonthlyTotals) SortedKeys() []MonthKey {
	keys := m.Keys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}

// Sum returns the total across all buckets.
func (m *MonthlyTotals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, total := range m.totals {
		sum = sum.Add(total)
	}
	return sum
}

// GroupByMonth buckets cashflows by calendar month and sums amounts per
// bucket.
func GroupByMonth(flows []Cashflow) *MonthlyTotals {
	totals := NewMonthlyTotals()
	for _, flow := range flows {
		totals.Add(MonthKeyOf(flow.Date), flow.Amount)
	}
	return totals
}
