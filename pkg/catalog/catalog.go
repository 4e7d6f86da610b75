// Package catalog turns raw upstream recipe records into sellable
// items and answers search queries over them.
package catalog

import "sync"

// Item is one sellable catalog entry. Price and Rating are synthesized
// locally because the upstream feed carries neither.
type Item struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Image       string   `json:"image"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Rating      float64  `json:"rating"`
}

// Catalog holds the items of the most recent fetch. It is replaced
// wholesale on refresh and read-only in between.
type Catalog struct {
	mu    sync.RWMutex
	items []Item
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Replace swaps in the items of a new fetch, discarding the old set.
func (c *Catalog) Replace(items []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

// Items returns the current item set.
func (c *Catalog) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// ByID looks up a single item.
func (c *Catalog) ByID(id int) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
