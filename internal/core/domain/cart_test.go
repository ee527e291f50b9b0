package domain_test

import (
	"testing"

	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, units int, price string) domain.Product {
	return domain.Product{
		ProductID: id,
		Name:      "Product " + id,
		Units:     units,
		BasePrice: decimal.RequireFromString(price),
		Category:  "Drinks",
	}
}

func TestCart_IncrementCapsAtUnits(t *testing.T) {
	var cart domain.Cart
	p := product("p1", 2, "3.50")

	assert.True(t, cart.Increment(p))
	assert.True(t, cart.Increment(p))
	assert.False(t, cart.Increment(p), "third unit must be refused")
	assert.Equal(t, 2, cart.Quantity("p1"))
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCart_IncrementSoldOutProduct(t *testing.T) {
	var cart domain.Cart

	assert.False(t, cart.Increment(product("p1", 0, "1")))
	assert.True(t, cart.IsEmpty())
}

func TestCart_DecrementRemovesLineAtZero(t *testing.T) {
	var cart domain.Cart
	cart.Increment(product("p1", 5, "1"))
	cart.Increment(product("p2", 5, "2"))
	cart.Increment(product("p1", 5, "1"))

	assert.True(t, cart.Decrement("p1"))
	assert.Equal(t, 1, cart.Quantity("p1"))
	assert.True(t, cart.Decrement("p1"))
	assert.Equal(t, 0, cart.Quantity("p1"))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].Product.ProductID)

	assert.False(t, cart.Decrement("missing"))
}

func TestCart_KeepsInsertionOrder(t *testing.T) {
	var cart domain.Cart
	for _, id := range []string{"c", "a", "b"} {
		cart.Increment(product(id, 1, "1"))
	}

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "c", lines[0].Product.ProductID)
	assert.Equal(t, "a", lines[1].Product.ProductID)
	assert.Equal(t, "b", lines[2].Product.ProductID)
}

func TestCart_CloneIsIndependent(t *testing.T) {
	var cart domain.Cart
	p := product("p1", 5, "1")
	cart.Increment(p)

	clone := cart.Clone()
	clone.Increment(p)
	clone.Increment(product("p2", 1, "1"))

	assert.Equal(t, 1, cart.Quantity("p1"))
	assert.Equal(t, 0, cart.Quantity("p2"))
	assert.Equal(t, 2, clone.Quantity("p1"))

	lines := cart.Lines()
	lines[0].Quantity = 42
	assert.Equal(t, 1, cart.Quantity("p1"), "Lines must return a copy")
}

func TestCart_Clear(t *testing.T) {
	var cart domain.Cart
	cart.Increment(product("p1", 5, "1"))
	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCart_IncrementUsesCurrentUnits(t *testing.T) {
	var cart domain.Cart
	require.True(t, cart.Increment(product("p1", 1, "5.00")))
	assert.False(t, cart.Increment(product("p1", 1, "5.00")))

	restocked := product("p1", 5, "7.00")
	assert.True(t, cart.Increment(restocked))
	assert.Equal(t, 2, cart.Quantity("p1"))
	assert.True(t, restocked.BasePrice.Equal(cart.Lines()[0].Product.BasePrice))
}

func TestCart_Reconcile(t *testing.T) {
	var cart domain.Cart
	for i := 0; i < 4; i++ {
		cart.Increment(product("p1", 5, "1.00"))
	}
	cart.Increment(product("p2", 5, "2.00"))
	cart.Increment(product("p3", 5, "3.00"))

	catalog := map[string]domain.Product{
		"p1": product("p1", 2, "1.50"),
		"p3": product("p3", 0, "3.00"),
	}
	changed := cart.Reconcile(func(id string) (domain.Product, bool) {
		p, ok := catalog[id]
		return p, ok
	})

	assert.True(t, changed)
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].Product.ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, decimal.RequireFromString("1.50").Equal(lines[0].Product.BasePrice))

	assert.False(t, cart.Reconcile(func(id string) (domain.Product, bool) {
		p, ok := catalog[id]
		return p, ok
	}), "second pass has nothing left to change")
}

func TestCart_ReconcileEmptiesCart(t *testing.T) {
	var cart domain.Cart
	cart.Increment(product("p1", 5, "1"))

	cart.Reconcile(func(string) (domain.Product, bool) { return domain.Product{}, false })

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount())
}
