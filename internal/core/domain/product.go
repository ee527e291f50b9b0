package domain

import (
	"fmt"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CategoryAll selects every product when filtering the catalog.
const CategoryAll = "All"

// Product is a sellable catalog item. BasePrice is expressed in BaseCurrency.
type Product struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"imageUrl"`
	Units     int             `json:"units"` // Units available on board
	BasePrice decimal.Decimal `json:"basePrice"`
	Category  string          `json:"category"`
}

// Validate checks the invariants a product must hold before it enters the catalog.
func (p Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if p.Units < 0 {
		return fmt.Errorf("%w: product '%s' has negative units", apperrors.ErrValidation, p.Name)
	}
	if p.BasePrice.IsNegative() {
		return fmt.Errorf("%w: product '%s' has a negative price", apperrors.ErrValidation, p.Name)
	}
	return nil
}

// InCategory reports whether the product matches a category filter.
// An empty filter or CategoryAll matches everything.
func (p Product) InCategory(category string) bool {
	return category == "" || category == CategoryAll || p.Category == category
}
