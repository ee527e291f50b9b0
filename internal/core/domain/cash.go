package domain

import "github.com/shopspring/decimal"

// CashPayment is the derived state of a cash transaction.
// Exactly one of Change and Remaining can be non-zero.
type CashPayment struct {
	Currency     Currency        `json:"currency"`
	AmountDue    decimal.Decimal `json:"amountDue"`
	CashReceived decimal.Decimal `json:"cashReceived"`
	Change       decimal.Decimal `json:"change"`
	Remaining    decimal.Decimal `json:"remaining"`
	Enough       bool            `json:"isEnoughCash"`
}
