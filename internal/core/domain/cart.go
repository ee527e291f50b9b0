package domain

// CartLine is a product together with its selected quantity.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the single authoritative record of what has been selected in a transaction.
// Every line keeps 1 <= Quantity <= Product.Units; lines keep insertion order.
type Cart struct {
	lines []CartLine
}

func (c Cart) indexOf(productID string) int {
	for i := range c.lines {
		if c.lines[i].Product.ProductID == productID {
			return i
		}
	}
	return -1
}

// Increment adds one unit of product. A new line is created on first selection.
// The line takes product as its current catalog entry, so the cap is always the
// units the caller passes in. It returns false, leaving the quantity untouched,
// once the quantity reaches the units available.
func (c *Cart) Increment(product Product) bool {
	i := c.indexOf(product.ProductID)
	if i < 0 {
		if product.Units <= 0 {
			return false
		}
		c.lines = append(c.lines, CartLine{Product: product, Quantity: 1})
		return true
	}
	c.lines[i].Product = product
	if c.lines[i].Quantity >= product.Units {
		return false
	}
	c.lines[i].Quantity++
	return true
}

// Reconcile replaces every line's product with the entry lookup returns for it.
// Lines whose product is gone, or has no units left, are dropped; the rest are
// clamped to the current units. It reports whether any quantity changed.
func (c *Cart) Reconcile(lookup func(productID string) (Product, bool)) bool {
	changed := false
	kept := make([]CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		current, ok := lookup(line.Product.ProductID)
		if !ok || current.Units <= 0 {
			changed = true
			continue
		}
		if line.Quantity > current.Units {
			line.Quantity = current.Units
			changed = true
		}
		line.Product = current
		kept = append(kept, line)
	}
	if len(kept) == 0 {
		c.lines = nil
	} else {
		c.lines = kept
	}
	return changed
}

// Decrement removes one unit of the product, dropping the line when it reaches zero.
// It returns false when the product is not in the cart.
func (c *Cart) Decrement(productID string) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity--
	if c.lines[i].Quantity == 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
	return true
}

// Quantity returns the selected quantity for a product, 0 when absent.
func (c Cart) Quantity(productID string) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Lines returns a copy of the cart lines.
func (c Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount is the total number of units across all lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Clear empties the cart.
func (c *Cart) Clear() { c.lines = nil }

// Clone returns a deep copy that shares no backing storage with c.
func (c Cart) Clone() Cart {
	if c.lines == nil {
		return Cart{}
	}
	return Cart{lines: c.Lines()}
}
