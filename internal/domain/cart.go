package domain

// CartLine is one product plus the quantity the customer intends to order.
// The product is a snapshot taken when the line was added; its price is never
// re-fetched afterwards.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

// Cart holds the ordered cart lines, at most one per product id.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add increments the quantity of an existing line or appends a new line with
// quantity 1. Stock is not enforced here; the upstream API rejects oversells
// at checkout.
func (c *Cart) Add(p Product) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: 1})
}

// Remove drops the line for productID if present, no-op otherwise.
func (c *Cart) Remove(productID uint64) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the exact quantity for productID. Zero or negative removes
// the line. Unknown product ids are ignored.
func (c *Cart) SetQuantity(productID uint64, quantity int64) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums price*quantity using each line's captured product price.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Product.Price * l.Quantity
	}
	return total
}
