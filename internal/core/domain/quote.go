package domain

import "github.com/shopspring/decimal"

// PricedProduct is a catalog product as displayed for the active customer type and currency.
type PricedProduct struct {
	Product   Product
	UnitPrice decimal.Decimal // discounted and converted, unrounded
	Quantity  int             // quantity currently in the cart
}

// SoldOut reports whether no further unit can be added to the cart.
func (p PricedProduct) SoldOut() bool {
	return p.Quantity >= p.Product.Units
}

// QuoteLine is the derived pricing of a single cart line.
type QuoteLine struct {
	ProductID           string
	Name                string
	Category            string
	Quantity            int
	UnitBasePrice       decimal.Decimal // catalog price, base currency
	UnitDiscountedPrice decimal.Decimal // after discount, base currency
	UnitPrice           decimal.Decimal // after discount, display currency
	LineTotal           decimal.Decimal // UnitPrice * Quantity
}

// Quote is the full derived pricing of a cart. It is recomputed from the cart on
// every read and never stored.
type Quote struct {
	Currency     Currency
	CustomerType CustomerType
	Lines        []QuoteLine
	ItemCount    int
	Subtotal     decimal.Decimal // undiscounted, base currency
	BaseTotal    decimal.Decimal // discounted, base currency
	Total        decimal.Decimal // discounted, display currency, unrounded
}
