package dto

import (
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the "currency" and "seat" binding tags to v.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("currency", validateCurrency); err != nil {
		return err
	}
	return v.RegisterValidation("seat", validateSeat)
}

func validateCurrency(fl validator.FieldLevel) bool {
	_, err := domain.ParseCurrency(fl.Field().String())
	return err == nil
}

func validateSeat(fl validator.FieldLevel) bool {
	_, err := domain.ParseSeat(fl.Field().String())
	return err == nil
}
