package dto

import (
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse describes a supported display currency.
type CurrencyResponse struct {
	Code           string          `json:"code"`
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name"`
	FactorFromBase decimal.Decimal `json:"factorFromBase"`
	IsBase         bool            `json:"isBase"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:           c.Code(),
		Symbol:         c.Symbol(),
		Name:           c.Name(),
		FactorFromBase: c.FactorFromBase(),
		IsBase:         c == domain.BaseCurrency,
	}
}

// ToCurrencyResponses converts every supported currency, in display order.
func ToCurrencyResponses(currencies []domain.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		out[i] = ToCurrencyResponse(c)
	}
	return out
}
