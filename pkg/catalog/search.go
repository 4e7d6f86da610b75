package catalog

import "strings"

// ViewState tells the presentation layer what to render. Browsing
// (Searching false) means show the full catalog; a query with no hits
// is Searching true with empty Results. The two are distinct states.
type ViewState struct {
	Searching bool   `json:"searching"`
	Results   []Item `json:"results"`
}

// Search filters items by a free-text query. A blank or whitespace
// query means the user is not searching. Matching is a
// case-insensitive substring test against the title and each tag, in
// catalog order, with no ranking.
func Search(items []Item, query string) ViewState {
	query = strings.TrimSpace(query)
	if query == "" {
		return ViewState{}
	}
	query = strings.ToLower(query)
	results := make([]Item, 0)
	for _, it := range items {
		if matches(it, query) {
			results = append(results, it)
		}
	}
	return ViewState{Searching: true, Results: results}
}

func matches(it Item, query string) bool {
	if strings.Contains(strings.ToLower(it.Title), query) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
