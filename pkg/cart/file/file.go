// Package file implements cart storage as a single JSON file, the
// closest server-side analogue of the browser's local storage.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"storefront/pkg/cart"
)

// Storage persists the cart to one file path.
type Storage struct {
	path string
}

// New returns file-backed storage at path. The file is created on the
// first Save.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Load reads and decodes the cart file. A missing file means no cart
// has been persisted yet.
func (s *Storage) Load(ctx context.Context) (cart.Cart, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return cart.Cart{}, cart.ErrNotFound
	}
	if err != nil {
		return cart.Cart{}, fmt.Errorf("reading cart file: %w", err)
	}
	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return cart.Cart{}, fmt.Errorf("decoding cart file: %w", err)
	}
	return c, nil
}

// Save writes the cart to a temp file and renames it into place, so a
// crash mid-write never leaves a truncated record.
func (s *Storage) Save(ctx context.Context, c cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing cart file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing cart file: %w", err)
	}
	return nil
}
