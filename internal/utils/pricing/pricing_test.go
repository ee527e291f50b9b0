package pricing

import (
	"testing"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func customerType(discount string) domain.CustomerType {
	return domain.CustomerType{CustomerTypeID: "ct", Name: "CT", DiscountPercentage: dec(discount)}
}

func TestApplyDiscount(t *testing.T) {
	assert.True(t, dec("8.50").Equal(ApplyDiscount(dec("10.00"), customerType("15"))))
	assert.True(t, dec("10").Equal(ApplyDiscount(dec("10"), customerType("0"))))
	assert.True(t, ApplyDiscount(dec("10"), customerType("100")).IsZero())
}

func TestConversionAndRounding(t *testing.T) {
	converted := domain.USD.ConvertFromBase(dec("100"))
	assert.True(t, dec("108.00").Equal(converted))
	assert.Equal(t, "108.00 $", FormatAmount(RoundForDisplay(converted), domain.USD))

	tests := []struct {
		in   string
		want string
	}{
		{"2.345", "2.35"},
		{"-2.345", "-2.35"},
		{"2.344", "2.34"},
		{"0.125", "0.13"},
		{"0.135", "0.14"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundForDisplay(dec(tt.in)).StringFixed(DisplayPrecision))
		})
	}
}

func TestQuoteCart(t *testing.T) {
	var cart domain.Cart
	sandwich := domain.Product{ProductID: "p1", Name: "Sandwich", Units: 5, BasePrice: dec("10.00"), Category: "Sandwiches"}
	water := domain.Product{ProductID: "p2", Name: "Water", Units: 5, BasePrice: dec("5.00"), Category: "Drinks"}
	cart.Increment(sandwich)
	cart.Increment(sandwich)

	quote := QuoteCart(cart, customerType("15"), domain.EUR)
	require.Len(t, quote.Lines, 1)
	assert.True(t, dec("8.50").Equal(quote.Lines[0].UnitPrice))
	assert.True(t, dec("17.00").Equal(quote.Lines[0].LineTotal))

	cart.Increment(water)
	quote = QuoteCart(cart, customerType("0"), domain.EUR)
	assert.True(t, dec("25.00").Equal(quote.Total))

	discounted := QuoteCart(cart, customerType("15"), domain.EUR)
	assert.Equal(t, 3, discounted.ItemCount)
	assert.True(t, dec("25.00").Equal(discounted.Subtotal))
	assert.True(t, dec("21.25").Equal(discounted.BaseTotal))
}

func TestQuoteCart_TwoLineBaseTotal(t *testing.T) {
	var cart domain.Cart
	a := domain.Product{ProductID: "a", Name: "A", Units: 5, BasePrice: dec("8.50")}
	b := domain.Product{ProductID: "b", Name: "B", Units: 5, BasePrice: dec("5.00")}
	cart.Increment(a)
	cart.Increment(a)
	cart.Increment(b)

	quote := QuoteCart(cart, domain.DefaultCustomerType(), domain.EUR)
	assert.True(t, dec("22.00").Equal(quote.BaseTotal))
	assert.True(t, dec("22.00").Equal(AmountDue(quote)))
}

func TestQuoteCart_SwitchingCurrencyRecomputes(t *testing.T) {
	var cart domain.Cart
	p := domain.Product{ProductID: "p", Name: "P", Units: 5, BasePrice: dec("10")}
	cart.Increment(p)

	usd := QuoteCart(cart, customerType("15"), domain.USD)
	gbp := QuoteCart(cart, customerType("15"), domain.GBP)
	eur := QuoteCart(cart, customerType("15"), domain.EUR)

	assert.True(t, dec("9.18").Equal(usd.Total))
	assert.True(t, dec("7.31").Equal(gbp.Total))
	assert.True(t, dec("8.5").Equal(eur.Total))
	assert.Equal(t, 1, cart.Quantity("p"), "pricing must not touch quantities")
}

func TestPriceProducts(t *testing.T) {
	var cart domain.Cart
	p1 := domain.Product{ProductID: "p1", Name: "P1", Units: 1, BasePrice: dec("10")}
	p2 := domain.Product{ProductID: "p2", Name: "P2", Units: 3, BasePrice: dec("4")}
	cart.Increment(p1)

	priced := PriceProducts([]domain.Product{p1, p2}, cart, customerType("50"), domain.USD)
	require.Len(t, priced, 2)

	assert.True(t, dec("5.4").Equal(priced[0].UnitPrice))
	assert.Equal(t, 1, priced[0].Quantity)
	assert.True(t, priced[0].SoldOut())

	assert.True(t, dec("2.16").Equal(priced[1].UnitPrice))
	assert.Equal(t, 0, priced[1].Quantity)
	assert.False(t, priced[1].SoldOut())
}

func TestQuoteCart_Empty(t *testing.T) {
	quote := QuoteCart(domain.Cart{}, domain.DefaultCustomerType(), domain.GBP)

	assert.Empty(t, quote.Lines)
	assert.Equal(t, 0, quote.ItemCount)
	assert.True(t, quote.Total.IsZero())
	assert.Equal(t, "0.00 £", FormatAmount(AmountDue(quote), domain.GBP))
}
