package payment

import (
	"testing"
	"time"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

var march2025 = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"4532015112830366123", "4532 0151 1283 0366"},
		{"4532", "4532"},
		{"45320", "4532 0"},
		{"4532-0151 1283x0366", "4532 0151 1283 0366"},
		{"", ""},
		{"abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCardNumber(tt.input))
		})
	}
}

func TestFormatCardNumber_Idempotent(t *testing.T) {
	for _, input := range []string{"4532015112830366123", "45320", "378282246310005", ""} {
		once := FormatCardNumber(input)
		assert.Equal(t, once, FormatCardNumber(once), "input %q", input)
	}
}

func TestIsCardNumberValid(t *testing.T) {
	assert.True(t, IsCardNumberValid("4532 0151 1283 0366"))
	assert.True(t, IsCardNumberValid("4532015112830366"))
	assert.False(t, IsCardNumberValid("1234 5678 1234 5678"))
	assert.False(t, IsCardNumberValid(""))
}

func TestDetectCardBrand(t *testing.T) {
	tests := []struct {
		number string
		want   domain.CardBrand
	}{
		{"4532 0151", domain.CardBrandVisa},
		{"5105 1051", domain.CardBrandMastercard},
		{"5555", domain.CardBrandMastercard},
		{"5612", domain.CardBrandNone},
		{"5012", domain.CardBrandNone},
		{"3782", domain.CardBrandAmex},
		{"3412", domain.CardBrandAmex},
		{"3612", domain.CardBrandNone},
		{"5", domain.CardBrandNone},
		{"", domain.CardBrandNone},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCardBrand(tt.number))
		})
	}
}

func TestIsCardHolderValid(t *testing.T) {
	assert.False(t, IsCardHolderValid("Ann"))
	assert.False(t, IsCardHolderValid("  Ann  "))
	assert.True(t, IsCardHolderValid("Anna"))
	assert.True(t, IsCardHolderValid("José"))
	assert.False(t, IsCardHolderValid(""))
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"03", "03"},
		{"032", "03/2"},
		{"0325", "03/25"},
		{"03/25", "03/25"},
		{"032599", "03/25"},
		{"ab", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatExpiry(tt.input))
		})
	}
}

func TestIsExpiryValid(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"02/25", false},
		{"03/25", true},
		{"01/26", true},
		{"13/25", false},
		{"00/26", false},
		{"12/24", false},
		{"03", false},
		{"03/", false},
		{"/25", false},
		{"0a/25", false},
		{"03/25/01", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpiryValid(tt.value, march2025))
		})
	}
}

func TestIsCVVValid(t *testing.T) {
	tests := []struct {
		cvv  string
		want bool
	}{
		{"12", false},
		{"123", true},
		{"1234", true},
		{"12345", false},
		{" 123 ", true},
		{"12a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.cvv, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCVVValid(tt.cvv))
		})
	}
}

func TestValidateCard(t *testing.T) {
	details := domain.CardDetails{
		Number: "4532015112830366",
		Holder: "Jane Doe",
		Expiry: "0326",
		CVV:    "123",
	}

	v := ValidateCard(details, march2025)
	assert.Equal(t, "4532 0151 1283 0366", v.FormattedNumber)
	assert.Equal(t, "03/26", v.FormattedExpiry)
	assert.Equal(t, domain.CardBrandVisa, v.Brand)
	assert.True(t, v.Payable())

	details.CVV = "12"
	v = ValidateCard(details, march2025)
	assert.False(t, v.CVVValid)
	assert.True(t, v.NumberValid)
	assert.False(t, v.Payable())
}

func TestMaskedLast4(t *testing.T) {
	assert.Equal(t, "0366", MaskedLast4("4532 0151 1283 0366"))
	assert.Equal(t, "12", MaskedLast4("12"))
	assert.Equal(t, "", MaskedLast4(""))
}
