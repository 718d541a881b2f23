package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.freecurrencyapi.com/v1"
	requestTimeout = 10 * time.Second
)

// Client talks to FreeCurrencyAPI for exchange rate lookups.
// Docs: https://freecurrencyapi.com/docs
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rates client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientFromEnv returns a client when FREECURRENCY_API_KEY is set,
// nil otherwise.
func NewClientFromEnv() *Client {
	apiKey := strings.TrimSpace(os.Getenv("FREECURRENCY_API_KEY"))
	if apiKey == "" {
		return nil
	}
	return NewClient(apiKey)
}

// Currency describes one currency from the metadata endpoint.
type Currency struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

// Latest returns current exchange rates against USD, optionally limited
// to the given currency codes.
func (c *Client) Latest(ctx context.Context, currencies []string) (map[string]float64, error) {
	var body struct {
		Data map[string]float64 `json:"data"`
	}
	if err := c.get(ctx, "/latest", currencies, "", &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

// Historical returns exchange rates for a past date (YYYY-MM-DD).
func (c *Client) Historical(ctx context.Context, date string, currencies []string) (map[string]float64, error) {
	var body struct {
		Data map[string]map[string]float64 `json:"data"`
	}
	if err := c.get(ctx, "/historical", currencies, date, &body); err != nil {
		return nil, err
	}

	rates, ok := body.Data[date]
	if !ok {
		return nil, fmt.Errorf("no rates returned for %s", date)
	}
	return rates, nil
}

// Currencies returns metadata for the given currency codes.
func (c *Client) Currencies(ctx context.Context, codes []string) (map[string]Currency, error) {
	var body struct {
		Data map[string]Currency `json:"data"`
	}
	if err := c.get(ctx, "/currencies", codes, "", &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

func (c *Client) get(ctx context.Context, path string, currencies []string, date string, out interface{}) error {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	if len(currencies) > 0 {
		params.Set("currencies", strings.Join(currencies, ","))
	}
	if date != "" {
		params.Set("date", date)
	}

	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rates request returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rates response decode failed: %w", err)
	}
	return nil
}
