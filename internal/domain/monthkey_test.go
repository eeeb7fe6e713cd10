package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestMonthKey_String(t *testing.T) {
	tests := []struct {
		name string
		key  MonthKey
		want string
	}{
		{name: "single digit month", key: MonthKey{Year: 2024, Month: time.January}, want: "2024-1"},
		{name: "double digit month", key: MonthKey{Year: 2023, Month: time.December}, want: "2023-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestGroupByMonth_SumsPerBucket(t *testing.T) {
	flows := []Cashflow{
		{Date: date(2024, time.January, 5), Amount: decimal.NewFromInt(100)},
		{Date: date(2024, time.January, 20), Amount: decimal.NewFromInt(50)},
		{Date: date(2024, time.February, 3), Amount: decimal.NewFromInt(30)},
	}

	totals := GroupByMonth(flows)

	if totals.Len() != 2 {
		t.Fatalf("expected 2 buckets, got %d", totals.Len())
	}

	jan := MonthKey{Year: 2024, Month: time.January}
	if !totals.Total(jan).Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected january total 150, got %s", totals.Total(jan))
	}

	feb := MonthKey{Year: 2024, Month: time.February}
	if !totals.Total(feb).Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected february total 30, got %s", totals.Total(feb))
	}
}

func TestGroupByMonth_KeepsFirstSeenOrder(t *testing.T) {
	flows := []Cashflow{
		{Date: date(2024, time.March, 1), Amount: decimal.NewFromInt(1)},
		{Date: date(2024, time.January, 1), Amount: decimal.NewFromInt(1)},
		{Date: date(2024, time.March, 15), Amount: decimal.NewFromInt(1)},
	}

	keys := GroupByMonth(flows).Keys()

	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
	if keys[0].String() != "2024-3" || keys[1].String() != "2024-1" {
		t.Errorf("expected first-seen order [2024-3 2024-1], got %v", keys)
	}
}

func TestMonthlyTotals_SortedKeysAscending(t *testing.T) {
	flows := []Cashflow{
		{Date: date(2024, time.February, 1), Amount: decimal.NewFromInt(1)},
		{Date: date(2023, time.December, 1), Amount: decimal.NewFromInt(1)},
		{Date: date(2024, time.January, 1), Amount: decimal.NewFromInt(1)},
	}

	sorted := GroupByMonth(flows).SortedKeys()

	want := []string{"2023-12", "2024-1", "2024-2"}
	for i, key := range sorted {
		if key.String() != want[i] {
			t.Fatalf("expected order %v, got %v", want, sorted)
		}
	}

	// Ordering must be strictly ascending
	for i := 1; i < len(sorted); i++ {
		if !sorted[i-1].Before(sorted[i]) {
			t.Errorf("expected %v before %v", sorted[i-1], sorted[i])
		}
	}
}

func TestMonthlyTotals_Sum(t *testing.T) {
	totals := NewMonthlyTotals()
	totals.Add(MonthKey{Year: 2024, Month: time.January}, decimal.NewFromInt(100))
	totals.Add(MonthKey{Year: 2024, Month: time.February}, decimal.NewFromInt(200))

	if !totals.Sum().Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected sum 300, got %s", totals.Sum())
	}
}
