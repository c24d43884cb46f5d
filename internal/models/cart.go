package models

import "encoding/json"

// CartItem is one (product, quantity) line. Quantity is always >= 1 for a
// line that exists; a line that would drop to zero is removed instead.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart keys lines by product id so add/remove/set are O(1). A Cart is owned
// by a single logical session; concurrent mutators need external locking
// (CartService holds the lock in this app).
type Cart struct {
	items map[string]*CartItem
}

func NewCart() *Cart {
	return &Cart{items: make(map[string]*CartItem)}
}

// Add increments the existing line for product.ID by qty, or creates one.
// qty must be positive; that is the caller's precondition.
func (c *Cart) Add(product Product, qty int) {
	if existing, ok := c.items[product.ID]; ok {
		existing.Quantity += qty
		return
	}
	c.items[product.ID] = &CartItem{Product: product, Quantity: qty}
}

// Remove deletes the line if present. Removing an absent line is a no-op.
func (c *Cart) Remove(productID string) {
	delete(c.items, productID)
}

// SetQuantity overwrites the line's quantity. qty <= 0 deletes the line,
// equivalent to Remove.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		delete(c.items, productID)
		return
	}
	if existing, ok := c.items[productID]; ok {
		existing.Quantity = qty
	}
}

func (c *Cart) Clear() {
	c.items = make(map[string]*CartItem)
}

// Lines returns the cart's lines as value copies; mutating the result does
// not touch the cart. Iteration order is unspecified.
func (c *Cart) Lines() []CartItem {
	out := make([]CartItem, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, *it)
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Clone returns an independent copy so callers can keep a snapshot across
// later mutations (copy-on-write at the service layer).
func (c *Cart) Clone() *Cart {
	cp := NewCart()
	for id, it := range c.items {
		line := *it
		cp.items[id] = &line
	}
	return cp
}

// Subtotal is the sum of unit price x quantity over all lines, in paise.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, it := range c.items {
		sum += it.Product.Price * int64(it.Quantity)
	}
	return sum
}

// cartJSON is the wire/persistence shape of a Cart.
type cartJSON struct {
	Items []CartItem `json:"items"`
}

func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartJSON{Items: c.Lines()})
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var cj cartJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	c.items = make(map[string]*CartItem, len(cj.Items))
	for i := range cj.Items {
		it := cj.Items[i]
		if it.Quantity <= 0 {
			continue
		}
		c.items[it.Product.ID] = &it
	}
	return nil
}
