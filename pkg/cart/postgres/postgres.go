// Package postgres implements cart storage as a single upserted row.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/pkg/cart"
)

// cartID identifies the one row holding the session cart.
const cartID = "cart"

// Storage persists the cart to PostgreSQL.
type Storage struct {
	db *sql.DB
}

// New returns Postgres-backed storage. The caller must ensure the
// provided database has a carts table:
// CREATE TABLE IF NOT EXISTS carts (id TEXT PRIMARY KEY, data JSONB);
func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// Load reads and decodes the cart row.
func (s *Storage) Load(ctx context.Context) (cart.Cart, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM carts WHERE id = $1", cartID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return cart.Cart{}, cart.ErrNotFound
	}
	if err != nil {
		return cart.Cart{}, fmt.Errorf("reading cart row: %w", err)
	}
	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return cart.Cart{}, fmt.Errorf("decoding cart row: %w", err)
	}
	return c, nil
}

// Save upserts the serialized cart into its row.
func (s *Storage) Save(ctx context.Context, c cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO carts (id, data) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data",
		cartID, data)
	if err != nil {
		return fmt.Errorf("writing cart row: %w", err)
	}
	return nil
}
