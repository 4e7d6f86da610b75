package cart_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"storefront/pkg/cart"
	"storefront/pkg/cart/memory"
	"storefront/pkg/catalog"
)

var soup = catalog.Item{ID: 1, Title: "Chicken Soup", Price: 250, Tags: []string{"dinner"}}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := memory.New()

	s := cart.NewStore(ctx, storage, zap.NewNop())
	s.Add(ctx, soup)
	snap := s.Add(ctx, soup)
	if snap.ItemCount != 2 {
		t.Fatalf("expected count 2, got %d", snap.ItemCount)
	}

	// Same storage, new store: simulates a process restart.
	restored := cart.NewStore(ctx, storage, zap.NewNop())
	got := restored.Snapshot()
	if got.ItemCount != 2 || got.Subtotal != 500 {
		t.Fatalf("restored cart mismatch: %+v", got)
	}
	if len(got.Lines) != 1 || got.Lines[0].ItemID != 1 {
		t.Fatalf("restored lines mismatch: %+v", got.Lines)
	}
}

func TestStoreStartsEmptyWithoutRecord(t *testing.T) {
	s := cart.NewStore(context.Background(), memory.New(), zap.NewNop())
	if snap := s.Snapshot(); snap.ItemCount != 0 || len(snap.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", snap)
	}
}

type brokenStorage struct{}

func (brokenStorage) Load(ctx context.Context) (cart.Cart, error) {
	return cart.Cart{}, errors.New("storage offline")
}

func (brokenStorage) Save(ctx context.Context, c cart.Cart) error {
	return errors.New("storage offline")
}

func TestStoreSurvivesPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	s := cart.NewStore(ctx, brokenStorage{}, zap.NewNop())
	snap := s.Add(ctx, soup)
	if snap.ItemCount != 1 {
		t.Fatalf("mutation rolled back on save failure: %+v", snap)
	}
	if snap = s.Snapshot(); snap.ItemCount != 1 {
		t.Fatalf("in-memory cart lost after save failure: %+v", snap)
	}
}

func TestStoreMutationScenario(t *testing.T) {
	ctx := context.Background()
	s := cart.NewStore(ctx, memory.New(), zap.NewNop())

	s.Add(ctx, soup)
	s.Add(ctx, soup)
	snap := s.UpdateQuantity(ctx, 1, -1)
	if len(snap.Lines) != 1 || snap.Lines[0].Quantity != 1 {
		t.Fatalf("after -1: %+v", snap.Lines)
	}
	snap = s.UpdateQuantity(ctx, 1, -5)
	if len(snap.Lines) != 0 {
		t.Fatalf("after -5 expected empty cart, got %+v", snap.Lines)
	}
	snap = s.Remove(ctx, 1)
	if len(snap.Lines) != 0 {
		t.Fatalf("remove on empty cart changed state: %+v", snap.Lines)
	}
}
