// Package redis implements cart storage under a fixed Redis key.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"storefront/pkg/cart"
)

// cartKey is the single key the serialized cart lives under.
const cartKey = "cart"

// Storage persists the cart in Redis.
type Storage struct {
	client *goredis.Client
}

// New returns Redis-backed storage using the given client.
func New(client *goredis.Client) *Storage {
	return &Storage{client: client}
}

// Load fetches and decodes the cart record.
func (s *Storage) Load(ctx context.Context) (cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return cart.Cart{}, cart.ErrNotFound
	}
	if err != nil {
		return cart.Cart{}, fmt.Errorf("reading cart key: %w", err)
	}
	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return cart.Cart{}, fmt.Errorf("decoding cart record: %w", err)
	}
	return c, nil
}

// Save serializes the cart under the fixed key, no expiry.
func (s *Storage) Save(ctx context.Context, c cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey, data, 0).Err(); err != nil {
		return fmt.Errorf("writing cart key: %w", err)
	}
	return nil
}
