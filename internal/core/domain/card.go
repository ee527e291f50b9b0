package domain

// CardBrand is detected from the card number prefix. It is informational only.
type CardBrand string

const (
	CardBrandNone       CardBrand = ""
	CardBrandVisa       CardBrand = "Visa"
	CardBrandMastercard CardBrand = "Mastercard"
	CardBrandAmex       CardBrand = "American Express"
)

// CardDetails are the raw card fields as typed by the operator. Never persisted.
type CardDetails struct {
	Number string `json:"cardNumber"`
	Holder string `json:"cardHolder"`
	Expiry string `json:"expiryDate"`
	CVV    string `json:"cvv"`
}

// CardValidation is the outcome of formatting and validating CardDetails field by field.
type CardValidation struct {
	FormattedNumber string
	FormattedExpiry string
	Brand           CardBrand
	NumberValid     bool
	HolderValid     bool
	ExpiryValid     bool
	CVVValid        bool
}

// Payable is true only when every field is valid.
func (v CardValidation) Payable() bool {
	return v.NumberValid && v.HolderValid && v.ExpiryValid && v.CVVValid
}
