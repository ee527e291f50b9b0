package dto

import (
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/SscSPs/flymarket_pos/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

// CashRequest carries the cash amount exactly as typed; "," and "." are both accepted.
type CashRequest struct {
	CashReceived string `json:"cashReceived"`
}

// CashPaymentResponse is the cash calculator state for the session's currency.
type CashPaymentResponse struct {
	Currency            string          `json:"currency"`
	AmountDue           decimal.Decimal `json:"amountDue"`
	AmountDueDisplay    string          `json:"amountDueDisplay"`
	CashReceived        decimal.Decimal `json:"cashReceived"`
	Change              decimal.Decimal `json:"change"`
	ChangeDisplay       string          `json:"changeDisplay"`
	RemainingAmount     decimal.Decimal `json:"remainingAmount"`
	RemainingAmountText string          `json:"remainingAmountDisplay"`
	IsEnoughCash        bool            `json:"isEnoughCash"`
}

// ToCashPaymentResponse converts a domain.CashPayment to its response DTO
func ToCashPaymentResponse(p domain.CashPayment) CashPaymentResponse {
	currency := p.Currency
	change := pricing.RoundForDisplay(p.Change)
	remaining := pricing.RoundForDisplay(p.Remaining)
	return CashPaymentResponse{
		Currency:            currency.Code(),
		AmountDue:           p.AmountDue,
		AmountDueDisplay:    pricing.FormatAmount(p.AmountDue, currency),
		CashReceived:        p.CashReceived,
		Change:              change,
		ChangeDisplay:       pricing.FormatAmount(change, currency),
		RemainingAmount:     remaining,
		RemainingAmountText: pricing.FormatAmount(remaining, currency),
		IsEnoughCash:        p.Enough,
	}
}
