package pricing

import (
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places shown for every currency.
const DisplayPrecision = 2

// RoundForDisplay rounds half away from zero to DisplayPrecision places.
// Example: 2.345 returns 2.35 and -2.345 returns -2.35 (not banker's rounding).
func RoundForDisplay(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(DisplayPrecision)
}

// FormatAmount renders an amount with its currency symbol, e.g. "108.00 $".
func FormatAmount(amount decimal.Decimal, currency domain.Currency) string {
	return amount.StringFixed(DisplayPrecision) + " " + currency.Symbol()
}
