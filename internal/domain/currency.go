package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reports render amounts the way the dashboard does: Polish digit grouping,
// comma decimals, trailing currency unit.
var plnPrinter = message.NewPrinter(language.Polish)

// FormatCurrency renders an amount as a pl-PL currency string, e.g.
// "1 234,56 zł".
func FormatCurrency(amount decimal.Decimal) string {
	return plnPrinter.Sprintf("%.2f zł", amount.InexactFloat64())
}
