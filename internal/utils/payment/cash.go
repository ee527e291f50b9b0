package payment

import (
	"regexp"
	"strings"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/shopspring/decimal"
)

// cashAmountPattern is what a cash keypad can produce: up to twelve integer digits
// and at most two decimals after either separator.
var cashAmountPattern = regexp.MustCompile(`^\d{1,12}([.,]\d{1,2})?$`)

// ParseCashAmount reads an amount typed with either "." or "," as decimal separator.
// Anything else, including signs, exponents and grouping separators, counts as zero.
func ParseCashAmount(text string) decimal.Decimal {
	trimmed := strings.TrimSpace(text)
	if !cashAmountPattern.MatchString(trimmed) {
		return decimal.Zero
	}
	value, err := decimal.NewFromString(strings.Replace(trimmed, ",", ".", 1))
	if err != nil {
		return decimal.Zero
	}
	return value
}

// CalculateCashPayment derives change or remaining amount for the cash received.
func CalculateCashPayment(amountDue decimal.Decimal, cashReceivedText string) domain.CashPayment {
	received := ParseCashAmount(cashReceivedText)

	state := domain.CashPayment{
		AmountDue:    amountDue,
		CashReceived: received,
		Change:       decimal.Zero,
		Remaining:    decimal.Zero,
	}
	if received.GreaterThanOrEqual(amountDue) {
		state.Enough = true
		state.Change = received.Sub(amountDue)
	} else {
		state.Remaining = amountDue.Sub(received)
	}
	return state
}
