package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "whole amount", amount: decimal.NewFromInt(150), want: "150,00 zł"},
		{name: "fractional amount", amount: decimal.NewFromFloat(49.99), want: "49,99 zł"},
		{name: "zero", amount: decimal.Zero, want: "0,00 zł"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.amount); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatCurrency_GroupsThousands(t *testing.T) {
	got := FormatCurrency(decimal.NewFromInt(1500))

	// Polish grouping separates thousands; the exact separator rune is
	// locale data, so only assert the shape.
	if !strings.HasPrefix(got, "1") || !strings.HasSuffix(got, "500,00 zł") {
		t.Errorf("expected grouped form of 1500, got %q", got)
	}
	if got == "1500,00 zł" {
		t.Errorf("expected a thousands separator in %q", got)
	}
}
