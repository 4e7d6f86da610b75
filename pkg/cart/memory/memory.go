// Package memory implements in-memory cart storage. It backs tests and
// the degraded mode used when no durable store is configured.
package memory

import (
	"context"
	"sync"

	"storefront/pkg/cart"
)

// Storage provides an in-memory implementation of cart.Storage.
type Storage struct {
	mu    sync.Mutex
	cart  cart.Cart
	saved bool
}

// New creates empty in-memory storage.
func New() *Storage {
	return &Storage{}
}

// Load returns the stored cart, or cart.ErrNotFound before the first
// Save.
func (s *Storage) Load(ctx context.Context) (cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return cart.Cart{}, cart.ErrNotFound
	}
	return s.cart, nil
}

// Save stores the cart.
func (s *Storage) Save(ctx context.Context, c cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = c
	s.saved = true
	return nil
}
