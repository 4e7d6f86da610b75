package cart

import (
	"testing"

	"storefront/pkg/catalog"
)

var (
	soup     = catalog.Item{ID: 1, Title: "Chicken Soup", Price: 250, Tags: []string{"dinner"}}
	smoothie = catalog.Item{ID: 2, Title: "Berry Smoothie", Price: 120, Tags: []string{"drink"}}
)

func TestAddKeepsOneLinePerID(t *testing.T) {
	var c Cart
	c = Add(c, soup)
	c = Add(c, soup)
	c = Add(c, smoothie)
	if len(c.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Lines))
	}
	if c.Lines[0].ItemID != 1 || c.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected first line: %+v", c.Lines[0])
	}
	if c.Lines[1].ItemID != 2 || c.Lines[1].Quantity != 1 {
		t.Fatalf("unexpected second line: %+v", c.Lines[1])
	}
}

func TestUpdateQuantityBoundaryAtZero(t *testing.T) {
	c := Add(Add(Cart{}, soup), soup)
	c = UpdateQuantity(c, 1, -1)
	if len(c.Lines) != 1 || c.Lines[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %+v", c.Lines)
	}
	c = UpdateQuantity(c, 1, -1)
	if len(c.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", c.Lines)
	}
}

func TestUpdateQuantitySkipsPastZero(t *testing.T) {
	c := Add(Add(Cart{}, soup), soup)
	c = UpdateQuantity(c, 1, -5)
	if len(c.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", c.Lines)
	}
}

func TestUpdateQuantityAbsentIDIsNoop(t *testing.T) {
	c := Add(Cart{}, soup)
	got := UpdateQuantity(c, 99, 3)
	if len(got.Lines) != 1 || got.Lines[0].Quantity != 1 {
		t.Fatalf("cart changed on absent id: %+v", got.Lines)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := Add(Add(Cart{}, soup), smoothie)
	once := Remove(c, 1)
	twice := Remove(once, 1)
	if len(once.Lines) != 1 || len(twice.Lines) != 1 {
		t.Fatalf("expected 1 line after both removes, got %d and %d", len(once.Lines), len(twice.Lines))
	}
	if twice.Lines[0].ItemID != 2 {
		t.Fatalf("wrong line survived: %+v", twice.Lines[0])
	}
}

func TestDerivedTotals(t *testing.T) {
	c := Add(Add(Add(Cart{}, soup), soup), smoothie)
	if n := c.ItemCount(); n != 3 {
		t.Fatalf("expected item count 3, got %d", n)
	}
	if s := c.Subtotal(); s != 2*250+120 {
		t.Fatalf("expected subtotal %d, got %d", 2*250+120, s)
	}
}

func TestSanitizeDropsInvalidLines(t *testing.T) {
	c := Cart{Lines: []Line{
		{ItemID: 1, Quantity: 2},
		{ItemID: 1, Quantity: 5},
		{ItemID: 2, Quantity: 0},
		{ItemID: 3, Quantity: 1},
	}}
	got := Sanitize(c)
	if len(got.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %+v", got.Lines)
	}
	if got.Lines[0].ItemID != 1 || got.Lines[0].Quantity != 2 || got.Lines[1].ItemID != 3 {
		t.Fatalf("unexpected sanitized cart: %+v", got.Lines)
	}
}
