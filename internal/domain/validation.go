package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownCategory is a boundary-layer error: the engine accepts any
// non-empty category, but the API restricts input to the closed set below.
var ErrUnknownCategory = fmt.Errorf("category is not in the known set")

// Categories is the closed category set enforced at the API boundary.
var Categories = []string{"Food", "Transport", "Entertainment", "Bills", "Other"}

var knownCategories = func() map[string]bool {
	m := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// ValidateAmount rejects non-positive entry amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateLimit rejects negative monthly limits. Zero is allowed: it means
// "no budget configured".
func ValidateLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return fmt.Errorf("%w: limit cannot be negative", ErrInvalidAmount)
	}
	return nil
}

// ValidateDate rejects the zero timestamp.
func ValidateDate(date time.Time) error {
	if date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// ValidateCategory rejects blank categories. Any other string is accepted
// at this layer.
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// ValidateKnownCategory checks a category against the closed set. Used by
// the HTTP boundary, never by the ledger itself.
func ValidateKnownCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	if !knownCategories[category] {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return nil
}
