package catalog

import "testing"

var searchItems = []Item{
	{ID: 1, Title: "Chicken Soup", Tags: []string{"dinner"}},
	{ID: 2, Title: "Berry Smoothie", Tags: []string{"drink"}},
}

func TestSearchBlankQueryMeansBrowsing(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		state := Search(searchItems, q)
		if state.Searching {
			t.Fatalf("query %q: expected browsing state", q)
		}
	}
}

func TestSearchNoHitsIsStillSearching(t *testing.T) {
	state := Search(searchItems, "pizza")
	if !state.Searching {
		t.Fatal("expected searching state")
	}
	if len(state.Results) != 0 {
		t.Fatalf("expected no results, got %v", state.Results)
	}
}

func TestSearchCaseInsensitiveTitle(t *testing.T) {
	state := Search(searchItems, "CHICKEN")
	if !state.Searching || len(state.Results) != 1 || state.Results[0].ID != 1 {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestSearchMatchesTags(t *testing.T) {
	state := Search(searchItems, "drink")
	if len(state.Results) != 1 || state.Results[0].ID != 2 {
		t.Fatalf("unexpected results: %+v", state.Results)
	}
}

func TestSearchKeepsCatalogOrder(t *testing.T) {
	items := []Item{
		{ID: 3, Title: "Apple Pie"},
		{ID: 1, Title: "Apple Juice"},
		{ID: 2, Title: "Crab Apple Salad"},
	}
	state := Search(items, "apple")
	if len(state.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(state.Results))
	}
	for i, want := range []int{3, 1, 2} {
		if state.Results[i].ID != want {
			t.Fatalf("result %d: expected id %d, got %d", i, want, state.Results[i].ID)
		}
	}
}

func TestSearchEmptyCatalog(t *testing.T) {
	state := Search(nil, "chicken")
	if !state.Searching || len(state.Results) != 0 {
		t.Fatalf("unexpected state over empty catalog: %+v", state)
	}
}
