package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// DefaultEndpoint is the public recipe feed the storefront sells from.
const DefaultEndpoint = "https://api.sampleapis.com/recipes/recipes"

// Fetcher downloads the upstream feed and normalizes it. Fetch is
// total over failure: any network or decode problem yields an empty
// catalog and a log line, never an error to the caller.
type Fetcher struct {
	endpoint string
	client   *http.Client
	enricher *Enricher
	log      *zap.Logger
}

// NewFetcher builds a fetcher for the given endpoint. An empty
// endpoint falls back to DefaultEndpoint.
func NewFetcher(endpoint string, e *Enricher, log *zap.Logger) *Fetcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Fetcher{
		endpoint: endpoint,
		client:   http.DefaultClient,
		enricher: e,
		log:      log,
	}
}

// Fetch retrieves and normalizes the catalog. On failure the previous
// catalog is simply not replaced with anything: the result is empty.
func (f *Fetcher) Fetch(ctx context.Context) []Item {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		f.log.Error("building catalog request", zap.Error(err))
		return []Item{}
	}
	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Error("fetching catalog", zap.Error(err))
		return []Item{}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		f.log.Error("fetching catalog", zap.Int("status", resp.StatusCode))
		return []Item{}
	}
	var records []RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		f.log.Error("decoding catalog", zap.Error(err))
		return []Item{}
	}
	return Normalize(records, f.enricher)
}
