package domain

import (
	"fmt"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CustomerType is a discount tier applied to every price in the cart.
type CustomerType struct {
	CustomerTypeID     string          `json:"id"`
	Name               string          `json:"name"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"` // 0..100
}

var hundred = decimal.NewFromInt(100)

// DefaultCustomerType is used when no customer types could be fetched.
func DefaultCustomerType() CustomerType {
	return CustomerType{
		CustomerTypeID:     "standard",
		Name:               "Standard",
		DiscountPercentage: decimal.Zero,
	}
}

// Validate ensures the discount lies within [0, 100].
func (ct CustomerType) Validate() error {
	if ct.CustomerTypeID == "" {
		return fmt.Errorf("%w: customer type id is required", apperrors.ErrValidation)
	}
	if ct.DiscountPercentage.IsNegative() || ct.DiscountPercentage.GreaterThan(hundred) {
		return fmt.Errorf("%w: discount for customer type '%s' must be between 0 and 100, got %s",
			apperrors.ErrValidation, ct.CustomerTypeID, ct.DiscountPercentage.String())
	}
	return nil
}
