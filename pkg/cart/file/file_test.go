package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"storefront/pkg/cart"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cart.json")
	s := New(path)

	if _, err := s.Load(ctx); !errors.Is(err, cart.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing file, got %v", err)
	}

	c := cart.Cart{Lines: []cart.Line{
		{ItemID: 1, Title: "Chicken Soup", Price: 250, Quantity: 2},
		{ItemID: 2, Title: "Berry Smoothie", Price: 120, Quantity: 1},
	}}
	if err := s.Save(ctx, c); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Lines) != 2 || got.Lines[0].ItemID != 1 || got.Lines[1].Quantity != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := New(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}
