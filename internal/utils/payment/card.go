package payment

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
)

const (
	maxCardDigits   = 16
	cardGroupSize   = 4
	maxExpiryLength = 5 // "MM/YY"
)

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatCardNumber keeps at most 16 digits and groups them in blocks of four,
// e.g. "4532015112830366123" becomes "4532 0151 1283 0366".
// Formatting an already formatted number returns it unchanged.
func FormatCardNumber(input string) string {
	digits := digitsOnly(input)
	if len(digits) > maxCardDigits {
		digits = digits[:maxCardDigits]
	}

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if i != 0 && i%cardGroupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// RawCardNumber strips the grouping spaces from a card number.
func RawCardNumber(number string) string {
	return strings.ReplaceAll(number, " ", "")
}

// IsCardNumberValid runs the Luhn check on the number without spaces.
func IsCardNumberValid(number string) bool {
	return Luhn(RawCardNumber(number))
}

// DetectCardBrand derives the brand from the leading digits.
func DetectCardBrand(number string) domain.CardBrand {
	n := digitsOnly(number)
	switch {
	case strings.HasPrefix(n, "4"):
		return domain.CardBrandVisa
	case len(n) >= 2 && n[0] == '5' && n[1] >= '1' && n[1] <= '5':
		return domain.CardBrandMastercard
	case strings.HasPrefix(n, "34"), strings.HasPrefix(n, "37"):
		return domain.CardBrandAmex
	default:
		return domain.CardBrandNone
	}
}

// IsCardHolderValid requires more than three characters once surrounding whitespace is trimmed.
func IsCardHolderValid(holder string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(holder)) > 3
}

// FormatExpiry keeps the digits, inserts "/" after the month once a third digit
// is typed and truncates to "MM/YY".
func FormatExpiry(input string) string {
	digits := digitsOnly(input)
	result := digits
	if len(digits) > 2 {
		result = digits[:2] + "/" + digits[2:]
	}
	if len(result) > maxExpiryLength {
		result = result[:maxExpiryLength]
	}
	return result
}

// IsExpiryValid accepts "MM/YY" whose month lies in 1..12 and which does not fall
// before the month of now.
func IsExpiryValid(value string, now time.Time) bool {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return false
	}
	for _, p := range parts {
		if p == "" || !allDigits(p) {
			return false
		}
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	fullYear := 2000 + year
	currentYear, currentMonth := now.Year(), int(now.Month())
	if fullYear < currentYear {
		return false
	}
	if fullYear == currentYear && month < currentMonth {
		return false
	}
	return true
}

// IsCVVValid accepts three or four digits.
func IsCVVValid(cvv string) bool {
	trimmed := strings.TrimSpace(cvv)
	return len(trimmed) >= 3 && len(trimmed) <= 4 && allDigits(trimmed)
}

// ValidateCard formats the card fields the same way the input form does and
// validates each one independently.
func ValidateCard(details domain.CardDetails, now time.Time) domain.CardValidation {
	number := FormatCardNumber(details.Number)
	expiry := FormatExpiry(details.Expiry)

	return domain.CardValidation{
		FormattedNumber: number,
		FormattedExpiry: expiry,
		Brand:           DetectCardBrand(number),
		NumberValid:     IsCardNumberValid(number),
		HolderValid:     IsCardHolderValid(details.Holder),
		ExpiryValid:     IsExpiryValid(expiry, now),
		CVVValid:        IsCVVValid(details.CVV),
	}
}

// MaskedLast4 returns the last four digits of a card number, or fewer if it is shorter.
func MaskedLast4(number string) string {
	digits := digitsOnly(number)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
