// Package cart owns the shopping cart: its line model, the pure
// mutation rules, and a store that applies them with write-through
// persistence.
package cart

import "storefront/pkg/catalog"

// Line is one cart entry, keyed by catalog item id. Title, Image and
// Price are carried along so a persisted cart renders without the
// catalog that produced it.
type Line struct {
	ItemID   int    `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// Cart is an ordered collection of lines. Order is first-add order and
// no two lines share an item id.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add appends a quantity-1 line for the item, or bumps the quantity of
// the existing line for the same id.
func Add(c Cart, item catalog.Item) Cart {
	lines := copyLines(c.Lines)
	for i := range lines {
		if lines[i].ItemID == item.ID {
			lines[i].Quantity++
			return Cart{Lines: lines}
		}
	}
	lines = append(lines, Line{
		ItemID:   item.ID,
		Title:    item.Title,
		Image:    item.Image,
		Price:    item.Price,
		Quantity: 1,
	})
	return Cart{Lines: lines}
}

// Remove deletes the line for id. Removing an absent id is a no-op.
func Remove(c Cart, id int) Cart {
	lines := make([]Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.ItemID != id {
			lines = append(lines, l)
		}
	}
	return Cart{Lines: lines}
}

// UpdateQuantity adjusts the line for id by delta, which may have any
// magnitude and sign. A resulting quantity of zero or below removes
// the line; an absent id is a no-op.
func UpdateQuantity(c Cart, id, delta int) Cart {
	lines := copyLines(c.Lines)
	for i := range lines {
		if lines[i].ItemID != id {
			continue
		}
		q := lines[i].Quantity + delta
		if q <= 0 {
			return Remove(c, id)
		}
		lines[i].Quantity = q
		return Cart{Lines: lines}
	}
	return c
}

// ItemCount is the sum of all line quantities.
func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity over all lines.
func (c Cart) Subtotal() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Price * l.Quantity
	}
	return n
}

// Sanitize drops lines a persisted record should never contain:
// quantities below one and duplicate ids. Used on the load path so an
// incompatible stored shape degrades instead of crashing.
func Sanitize(c Cart) Cart {
	seen := make(map[int]bool, len(c.Lines))
	lines := make([]Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.Quantity < 1 || seen[l.ItemID] {
			continue
		}
		seen[l.ItemID] = true
		lines = append(lines, l)
	}
	return Cart{Lines: lines}
}

func copyLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
