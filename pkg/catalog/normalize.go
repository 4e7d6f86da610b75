package catalog

import (
	"encoding/json"
	"math"
	"math/rand"
	"strings"
	"sync"
)

// noIngredients is the description used when upstream sends no usable
// ingredient list.
const noIngredients = "No ingredients listed"

// RawRecord mirrors one element of the upstream JSON array. Ingredients
// and Tags stay raw because the feed sometimes omits them or sends a
// non-list value.
type RawRecord struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	PhotoURL    string          `json:"photoUrl"`
	Ingredients json.RawMessage `json:"ingredients"`
	Tags        json.RawMessage `json:"tags"`
}

// Enricher draws the synthesized price and rating for an item. Values
// are cached per item id so refreshing the catalog does not reprice
// items already seen this session.
type Enricher struct {
	mu      sync.Mutex
	rng     *rand.Rand
	prices  map[int]int
	ratings map[int]float64
}

// NewEnricher builds an enricher around the given source of
// randomness. Tests pass a seeded rand.Rand to pin the drawn values.
func NewEnricher(rng *rand.Rand) *Enricher {
	return &Enricher{
		rng:     rng,
		prices:  make(map[int]int),
		ratings: make(map[int]float64),
	}
}

// Price returns a uniform price in [100, 500) for the item.
func (e *Enricher) Price(id int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if p, ok := e.prices[id]; ok {
		return p
	}
	p := e.rng.Intn(400) + 100
	e.prices[id] = p
	return p
}

// Rating returns a uniform rating in [3.0, 5.0), one decimal place.
func (e *Enricher) Rating(id int) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if r, ok := e.ratings[id]; ok {
		return r
	}
	r := math.Round((e.rng.Float64()*2+3)*10) / 10
	e.ratings[id] = r
	return r
}

// Normalize maps raw upstream records onto Items, enriching each with
// a synthesized price and rating.
func Normalize(records []RawRecord, e *Enricher) []Item {
	items := make([]Item, 0, len(records))
	for _, rec := range records {
		items = append(items, Item{
			ID:          rec.ID,
			Title:       rec.Title,
			Image:       rec.PhotoURL,
			Price:       e.Price(rec.ID),
			Description: joinIngredients(rec.Ingredients),
			Tags:        stringList(rec.Tags),
			Rating:      e.Rating(rec.ID),
		})
	}
	return items
}

func joinIngredients(raw json.RawMessage) string {
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return noIngredients
	}
	return strings.Join(list, ", ")
}

func stringList(raw json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return []string{}
	}
	return list
}
