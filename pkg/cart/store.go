package cart

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"storefront/pkg/catalog"
)

// Storage is the durable mirror of the cart, a single record under a
// fixed key. Implementations live in the subpackages.
type Storage interface {
	Load(ctx context.Context) (Cart, error)
	Save(ctx context.Context, c Cart) error
}

// ErrNotFound is returned by Storage.Load when nothing has been
// persisted yet.
var ErrNotFound = errors.New("cart not found")

// Snapshot is the read view handed to the presentation layer.
type Snapshot struct {
	Lines     []Line `json:"lines"`
	ItemCount int    `json:"itemCount"`
	Subtotal  int    `json:"subtotal"`
}

// Store owns the authoritative in-memory cart. Every mutation applies
// one of the pure transitions, writes the result through to storage
// and returns the new snapshot. A failed write is logged and the
// in-memory cart stands; durability loss never rolls back a mutation.
type Store struct {
	mu      sync.Mutex
	cart    Cart
	storage Storage
	log     *zap.Logger
}

// NewStore restores the cart from storage. A missing, unreadable or
// incompatible record yields an empty cart.
func NewStore(ctx context.Context, storage Storage, log *zap.Logger) *Store {
	s := &Store{storage: storage, log: log}
	c, err := storage.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		log.Warn("restoring cart, starting empty", zap.Error(err))
	default:
		s.cart = Sanitize(c)
	}
	return s
}

// Add puts one unit of the item in the cart.
func (s *Store) Add(ctx context.Context, item catalog.Item) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = Add(s.cart, item)
	s.persist(ctx)
	return s.snapshot()
}

// Remove deletes the line for id if present.
func (s *Store) Remove(ctx context.Context, id int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = Remove(s.cart, id)
	s.persist(ctx)
	return s.snapshot()
}

// UpdateQuantity adjusts the line for id by delta.
func (s *Store) UpdateQuantity(ctx context.Context, id, delta int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = UpdateQuantity(s.cart, id, delta)
	s.persist(ctx)
	return s.snapshot()
}

// Snapshot returns the current cart with its derived totals.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.cart); err != nil {
		s.log.Warn("persisting cart", zap.Error(err))
	}
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{
		Lines:     copyLines(s.cart.Lines),
		ItemCount: s.cart.ItemCount(),
		Subtotal:  s.cart.Subtotal(),
	}
}
