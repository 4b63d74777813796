package order

import "github.com/menusmith/menusmith/internal/menu"

// Line is one cart entry. Quantity is always >= 1; a line at quantity
// zero is removed, never kept.
type Line struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// Cart is an insertion-ordered collection of lines keyed by item id.
// It is a plain single-writer state machine; there is no locking
// because the embedded script it mirrors runs in one execution context.
type Cart struct {
	lines []Line
}

// Add inserts the item at quantity 1, or bumps its quantity when a line
// with the same id already exists. Distinct ids never merge.
func (c *Cart) Add(item menu.Item) {
	for i := range c.lines {
		if c.lines[i].ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
}

// Remove decrements the line with the given id, deleting it when the
// quantity reaches zero. Removing an absent id is a no-op.
func (c *Cart) Remove(id string) {
	for i := range c.lines {
		if c.lines[i].ID != id {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Quantity returns the quantity for an id, 0 when absent.
func (c *Cart) Quantity(id string) int {
	for _, l := range c.lines {
		if l.ID == id {
			return l.Quantity
		}
	}
	return 0
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int { return len(c.lines) }

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Lines returns a snapshot of the cart in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal sums parsed price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var s float64
	for _, l := range c.lines {
		s += ParsePrice(l.Price) * float64(l.Quantity)
	}
	return s
}

// FromLines builds a cart from posted line items, collapsing duplicate
// ids and discarding non-positive quantities.
func FromLines(lines []Line) *Cart {
	c := &Cart{}
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		for n := 0; n < l.Quantity; n++ {
			c.Add(menu.Item{ID: l.ID, Name: l.Name, Price: l.Price})
		}
	}
	return c
}
