package report

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestParseMode(t *testing.T) {
	tests := []struct {
		tag       string
		want      Mode
		expectErr bool
	}{
		{tag: "category", want: Category},
		{tag: "date", want: Date},
		{tag: "Date", expectErr: true},
		{tag: "", expectErr: true},
		{tag: "monthly", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			mode, err := ParseMode(tt.tag)
			if tt.expectErr {
				if !errors.Is(err, domain.ErrUnsupportedFormat) {
					t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mode != tt.want {
				t.Errorf("expected %v, got %v", tt.want, mode)
			}
		})
	}
}

func TestGenerate_CategoryReport(t *testing.T) {
	incomes := []domain.Income{
		{ID: "ID-1", Amount: decimal.NewFromInt(900), Date: date(2024, time.March, 1)},
		{ID: "ID-2", Amount: decimal.NewFromInt(500), Date: date(2024, time.April, 1)},
	}
	expenses := []domain.Expense{
		{ID: "ID-3", Amount: decimal.NewFromInt(100), Category: "Food", Date: date(2024, time.March, 3)},
		{ID: "ID-4", Amount: decimal.NewFromInt(30), Category: "Transport", Date: date(2024, time.March, 5)},
		{ID: "ID-5", Amount: decimal.NewFromInt(50), Category: "Food", Date: date(2024, time.March, 10)},
	}

	got, err := Generate(Category, incomes, expenses, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Income Report:\n" +
		"[2024-3]:900,00 zł\n" +
		"[2024-4]:500,00 zł\n" +
		"Category Report:\n" +
		"[Food]:150,00 zł\n" +
		"[Transport]:30,00 zł"
	if got != want {
		t.Errorf("unexpected report:\n got: %q\nwant: %q", got, want)
	}
}

func TestGenerate_DateReport(t *testing.T) {
	incomes := []domain.Income{
		{ID: "ID-1", Amount: decimal.NewFromInt(900), Date: date(2024, time.March, 1)},
	}
	expenses := []domain.Expense{
		{ID: "ID-2", Amount: decimal.NewFromInt(100), Category: "Food", Date: date(2024, time.March, 3)},
		{ID: "ID-3", Amount: decimal.NewFromInt(70), Category: "Bills", Date: date(2024, time.April, 3)},
	}

	got, err := Generate(Date, incomes, expenses, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The expense header carries a leading space, matching the historical
	// output consumers already parse.
	want := "Income Report:\n" +
		"[2024-3]:900,00 zł\n" +
		" Date Report:\n" +
		"[2024-3]:100,00 zł\n" +
		"[2024-4]:70,00 zł"
	if got != want {
		t.Errorf("unexpected report:\n got: %q\nwant: %q", got, want)
	}
}

func TestGenerate_DateRangeInclusive(t *testing.T) {
	incomes := []domain.Income{
		{ID: "ID-1", Amount: decimal.NewFromInt(10), Date: date(2024, time.January, 1)},
		{ID: "ID-2", Amount: decimal.NewFromInt(20), Date: date(2024, time.February, 1)},
		{ID: "ID-3", Amount: decimal.NewFromInt(40), Date: date(2024, time.March, 1)},
	}

	start := ptr(date(2024, time.February, 1))
	end := ptr(date(2024, time.March, 1))

	got, err := Generate(Category, incomes, nil, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Income Report:\n" +
		"[2024-2]:20,00 zł\n" +
		"[2024-3]:40,00 zł\n" +
		"Category Report:\n"
	if got != want {
		t.Errorf("boundary entries must be included:\n got: %q\nwant: %q", got, want)
	}
}

func TestGenerate_OpenEndedBounds(t *testing.T) {
	expenses := []domain.Expense{
		{ID: "ID-1", Amount: decimal.NewFromInt(5), Category: "Food", Date: date(2024, time.January, 1)},
		{ID: "ID-2", Amount: decimal.NewFromInt(7), Category: "Food", Date: date(2024, time.June, 1)},
	}

	got, err := Generate(Category, nil, expenses, ptr(date(2024, time.March, 1)), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Income Report:\n\nCategory Report:\n[Food]:7,00 zł"
	if got != want {
		t.Errorf("unexpected report:\n got: %q\nwant: %q", got, want)
	}
}

func TestGenerate_Empty(t *testing.T) {
	got, err := Generate(Date, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Income Report:\n\n Date Report:\n" {
		t.Errorf("unexpected empty report: %q", got)
	}
}
