package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org/reverse"

// NominatimClient calls a Nominatim compatible reverse geocoding endpoint.
type NominatimClient struct {
	client  *http.Client
	BaseURL string
}

// ReverseResult is the subset of a Nominatim reverse response the application reads.
type ReverseResult struct {
	Address *Address `json:"address"`
	Error   string   `json:"error,omitempty"`
}

// Address is the address block of a reverse result.
type Address struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

// NewNominatimClient creates a client for baseURL, falling back to the public instance.
func NewNominatimClient(httpClient *http.Client, baseURL string) *NominatimClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	return &NominatimClient{client: httpClient, BaseURL: baseURL}
}

// Reverse looks up the address at lat/lon. Coordinates are sent as given.
func (c *NominatimClient) Reverse(ctx context.Context, lat, lon float64) (*ReverseResult, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("client: invalid nominatim url: %w", err)
	}
	q := u.Query()
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("client: nominatim returned status %d", resp.StatusCode)
	}

	var result ReverseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("client: failed to decode response: %w", err)
	}

	return &result, nil
}
