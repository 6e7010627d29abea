// Package ordering implements the customer side of the flow: a cart
// built against the menu catalog and a client that submits it as an
// order.
package ordering

import "table-order/internal/domain"

// Cart accumulates line items before submission. Items are keyed by
// name; adding the same item again merges quantities.
type Cart struct {
	items []domain.LineItem
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Add(item domain.MenuItem, qty int) {
	if qty <= 0 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].Name == item.Name {
			c.items[i].Qty += qty
			return
		}
	}
	c.items = append(c.items, domain.LineItem{Name: item.Name, Qty: qty, Price: item.Price})
}

func (c *Cart) Remove(name string) {
	for i := range c.items {
		if c.items[i].Name == name {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity changes the quantity of a carted item; zero or negative
// removes it.
func (c *Cart) SetQuantity(name string, qty int) {
	if qty <= 0 {
		c.Remove(name)
		return
	}
	for i := range c.items {
		if c.items[i].Name == name {
			c.items[i].Qty = qty
			return
		}
	}
}

func (c *Cart) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += float64(it.Qty) * it.Price
	}
	return total
}

// Count is the total quantity across all lines.
func (c *Cart) Count() int {
	var n int
	for _, it := range c.items {
		n += it.Qty
	}
	return n
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}
