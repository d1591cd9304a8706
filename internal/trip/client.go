package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const httpTimeout = 10 * time.Second

// apiKeyHeader is the header the upstream provider authenticates with.
const apiKeyHeader = "x-api-key"

// ProviderClient fetches trip offers from the upstream provider API.
type ProviderClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewProviderClient constructs a ProviderClient for the given base URL and key.
func NewProviderClient(baseURL, apiKey string) *ProviderClient {
	return &ProviderClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

// FetchTrips retrieves trip offers for the given route and sort criterion.
// A non-200 provider response becomes an upstream Error carrying the status.
func (c *ProviderClient) FetchTrips(ctx context.Context, origin, destination, sortBy string) ([]Trip, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	if sortBy != "" {
		q.Set("sort_by", sortBy)
	}
	endpoint := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, UpstreamError(resp.StatusCode, fmt.Sprintf("external API error: %s", resp.Status))
	}

	var trips []Trip
	if err := json.NewDecoder(resp.Body).Decode(&trips); err != nil {
		return nil, fmt.Errorf("decoding provider response: %w", err)
	}

	return trips, nil
}
