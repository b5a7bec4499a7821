package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"stagefront/internal/domain"
)

// DefaultDiscoveryBaseURL is the production Ticketmaster Discovery API root.
const DefaultDiscoveryBaseURL = "https://app.ticketmaster.com/discovery/v2"

// Search parameter defaults and bounds.
const (
	defaultCountryCode = "US"
	defaultKeyword     = "music"
	defaultSearchSize  = 200
	maxSearchSize      = 200
)

// SearchParams are the fetch parameters for a catalog search.
type SearchParams struct {
	CountryCode string
	Keyword     string
	Size        int
}

// withDefaults fills empty fields and clamps size to the API maximum.
func (p SearchParams) withDefaults() SearchParams {
	if p.CountryCode == "" {
		p.CountryCode = defaultCountryCode
	}
	if p.Keyword == "" {
		p.Keyword = defaultKeyword
	}
	if p.Size <= 0 {
		p.Size = defaultSearchSize
	}
	if p.Size > maxSearchSize {
		p.Size = maxSearchSize
	}
	return p
}

// DiscoveryFetcher fetches raw event documents from the Ticketmaster
// Discovery API (or a test double).
type DiscoveryFetcher interface {
	Search(ctx context.Context, params SearchParams) (*DiscoveryResponse, error)
}

type discoveryHTTPFetcher struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewDiscoveryHTTPFetcher returns a fetcher that calls the Discovery API.
// baseURL may be empty to use the production endpoint; client may be nil to
// use http.DefaultClient.
func NewDiscoveryHTTPFetcher(client *http.Client, baseURL, apiKey string) DiscoveryFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultDiscoveryBaseURL
	}
	return &discoveryHTTPFetcher{client: client, baseURL: baseURL, apiKey: apiKey}
}

func (f *discoveryHTTPFetcher) Search(ctx context.Context, params SearchParams) (*DiscoveryResponse, error) {
	// The credential check happens before any network call.
	if f.apiKey == "" {
		return nil, &domain.ConfigurationError{Setting: "TICKETMASTER_API_KEY"}
	}
	params = params.withDefaults()

	q := url.Values{}
	q.Set("apikey", f.apiKey)
	q.Set("classificationName", "music")
	q.Set("keyword", params.Keyword)
	q.Set("countryCode", params.CountryCode)
	q.Set("size", strconv.Itoa(params.Size))
	endpoint := fmt.Sprintf("%s/events.json?%s", f.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from ticketmaster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.RemoteError{Status: resp.StatusCode}
	}

	var data DiscoveryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode ticketmaster response: %w", err)
	}
	return &data, nil
}
