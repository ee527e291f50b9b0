package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Currency is one of the fixed set of currencies the storefront can display prices in.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

// BaseCurrency is the currency every product price is stored in.
const BaseCurrency = EUR

type currencyInfo struct {
	symbol string
	name   string
	factor decimal.Decimal
}

var currencyTable = map[Currency]currencyInfo{
	EUR: {symbol: "€", name: "Euro", factor: decimal.NewFromInt(1)},
	USD: {symbol: "$", name: "US Dollar", factor: decimal.RequireFromString("1.08")},
	GBP: {symbol: "£", name: "Pound Sterling", factor: decimal.RequireFromString("0.86")},
}

// Currencies returns the supported currencies in display order.
func Currencies() []Currency {
	return []Currency{EUR, USD, GBP}
}

// ParseCurrency resolves a currency code (case-insensitive).
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := currencyTable[c]; !ok {
		return "", fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, code)
	}
	return c, nil
}

// Valid reports whether c belongs to the supported set.
func (c Currency) Valid() bool {
	_, ok := currencyTable[c]
	return ok
}

// Code returns the ISO code, e.g. "USD".
func (c Currency) Code() string { return string(c) }

// Symbol returns the display symbol, e.g. "$".
func (c Currency) Symbol() string { return currencyTable[c].symbol }

// Name returns the human readable name.
func (c Currency) Name() string { return currencyTable[c].name }

// FactorFromBase is the multiplier applied to an amount in BaseCurrency.
// Unsupported currencies have a zero factor.
func (c Currency) FactorFromBase() decimal.Decimal {
	info, ok := currencyTable[c]
	if !ok {
		return decimal.Zero
	}
	return info.factor
}

// ConvertFromBase converts an amount expressed in BaseCurrency into c.
// No rounding is applied here; rounding belongs to display formatting.
func (c Currency) ConvertFromBase(amountInBase decimal.Decimal) decimal.Decimal {
	return amountInBase.Mul(c.FactorFromBase())
}
