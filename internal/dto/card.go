package dto

import "github.com/SscSPs/flymarket_pos/internal/core/domain"

// CardDetailsRequest carries the raw card fields as typed. Formatting is applied server side.
type CardDetailsRequest struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// CardValidationResponse reports the formatted fields and the validity of each one.
type CardValidationResponse struct {
	CardNumber   string `json:"cardNumber"`
	ExpiryDate   string `json:"expiryDate"`
	CardBrand    string `json:"cardBrand,omitempty"`
	NumberValid  bool   `json:"isCardNumberValid"`
	HolderValid  bool   `json:"isCardHolderValid"`
	ExpiryValid  bool   `json:"isExpiryDateValid"`
	CVVValid     bool   `json:"isCVVValid"`
	CanBePayable bool   `json:"canBePayable"`
}

// ToCardDetails converts the request to domain.CardDetails.
func (r CardDetailsRequest) ToCardDetails() domain.CardDetails {
	return domain.CardDetails{
		Number: r.CardNumber,
		Holder: r.CardHolder,
		Expiry: r.ExpiryDate,
		CVV:    r.CVV,
	}
}

// ToCardValidationResponse converts a domain.CardValidation to its response DTO
func ToCardValidationResponse(v domain.CardValidation) CardValidationResponse {
	return CardValidationResponse{
		CardNumber:   v.FormattedNumber,
		ExpiryDate:   v.FormattedExpiry,
		CardBrand:    string(v.Brand),
		NumberValid:  v.NumberValid,
		HolderValid:  v.HolderValid,
		ExpiryValid:  v.ExpiryValid,
		CVVValid:     v.CVVValid,
		CanBePayable: v.Payable(),
	}
}
