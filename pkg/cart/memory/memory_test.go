package memory

import (
	"context"
	"errors"
	"testing"

	"storefront/pkg/cart"
)

func TestStorage(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.Load(ctx); !errors.Is(err, cart.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first save, got %v", err)
	}

	c := cart.Cart{Lines: []cart.Line{{ItemID: 1, Title: "Chicken Soup", Price: 250, Quantity: 2}}}
	if err := s.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Lines) != 1 || got.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", got)
	}

	if err := s.Save(ctx, cart.Cart{}); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	got, err = s.Load(ctx)
	if err != nil || len(got.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v err=%v", got, err)
	}
}
