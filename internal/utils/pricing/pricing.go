package pricing

import (
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ApplyDiscount returns amount reduced by the customer type's discount percentage.
func ApplyDiscount(amount decimal.Decimal, customerType domain.CustomerType) decimal.Decimal {
	factor := one.Sub(customerType.DiscountPercentage.Div(hundred))
	return amount.Mul(factor)
}

// UnitPrice is the price of one unit of product as displayed: discounted, then converted.
func UnitPrice(product domain.Product, customerType domain.CustomerType, currency domain.Currency) decimal.Decimal {
	return currency.ConvertFromBase(ApplyDiscount(product.BasePrice, customerType))
}

// PriceProducts prices the whole catalog for display, annotating each product with
// the quantity currently selected in cart.
func PriceProducts(products []domain.Product, cart domain.Cart, customerType domain.CustomerType, currency domain.Currency) []domain.PricedProduct {
	priced := make([]domain.PricedProduct, len(products))
	for i, p := range products {
		priced[i] = domain.PricedProduct{
			Product:   p,
			UnitPrice: UnitPrice(p, customerType, currency),
			Quantity:  cart.Quantity(p.ProductID),
		}
	}
	return priced
}

// QuoteCart computes every line and total of cart from its quantities and base
// prices. Nothing is carried over between calls, so switching customer type or
// currency can never leave a stale figure behind.
func QuoteCart(cart domain.Cart, customerType domain.CustomerType, currency domain.Currency) domain.Quote {
	quote := domain.Quote{
		Currency:     currency,
		CustomerType: customerType,
		Subtotal:     decimal.Zero,
		BaseTotal:    decimal.Zero,
	}

	for _, line := range cart.Lines() {
		qty := decimal.NewFromInt(int64(line.Quantity))
		discounted := ApplyDiscount(line.Product.BasePrice, customerType)
		unitPrice := currency.ConvertFromBase(discounted)

		quote.Lines = append(quote.Lines, domain.QuoteLine{
			ProductID:           line.Product.ProductID,
			Name:                line.Product.Name,
			Category:            line.Product.Category,
			Quantity:            line.Quantity,
			UnitBasePrice:       line.Product.BasePrice,
			UnitDiscountedPrice: discounted,
			UnitPrice:           unitPrice,
			LineTotal:           unitPrice.Mul(qty),
		})
		quote.ItemCount += line.Quantity
		quote.Subtotal = quote.Subtotal.Add(line.Product.BasePrice.Mul(qty))
		quote.BaseTotal = quote.BaseTotal.Add(discounted.Mul(qty))
	}

	quote.Total = currency.ConvertFromBase(quote.BaseTotal)
	return quote
}

// AmountDue is the quote total as it is charged: rounded to display precision.
func AmountDue(quote domain.Quote) decimal.Decimal {
	return RoundForDisplay(quote.Total)
}
