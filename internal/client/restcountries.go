package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"countrymap/internal/models"
)

const defaultRestCountriesURL = "https://restcountries.com/v3.1/alpha"

// ErrCountryNotFound is returned when the country API has no record for a code.
var ErrCountryNotFound = errors.New("country not found")

// RestCountriesClient interacts with the REST Countries alpha endpoint.
type RestCountriesClient struct {
	client  *http.Client
	BaseURL string
}

// NewRestCountriesClient creates a client for baseURL, falling back to the public API.
func NewRestCountriesClient(httpClient *http.Client, baseURL string) *RestCountriesClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultRestCountriesURL
	}
	return &RestCountriesClient{client: httpClient, BaseURL: strings.TrimRight(baseURL, "/")}
}

// GetCountryByCode fetches the record for code. Only the first element of the
// response array is returned.
func (c *RestCountriesClient) GetCountryByCode(ctx context.Context, code models.CountryCode) (*models.CountryRecord, error) {
	endpoint := fmt.Sprintf("%s/%s", c.BaseURL, url.PathEscape(code.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("client: %w: %s", ErrCountryNotFound, code)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("client: received non-2xx status code: %d", resp.StatusCode)
	}

	var records []models.CountryRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("client: failed to decode response: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("client: %w: %s", ErrCountryNotFound, code)
	}

	return &records[0], nil
}
