package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fxnews/api"
)

// Client is a thin HTTP client for the fxnews API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// GetNews fetches filtered, ranked news for the keyword.
func (c *Client) GetNews(ctx context.Context, keyword string, maxArticles int) (*api.NewsResponse, error) {
	params := url.Values{}
	if keyword != "" {
		params.Set("keyword", keyword)
	}
	if maxArticles > 0 {
		params.Set("max_articles", strconv.Itoa(maxArticles))
	}

	endpoint := c.baseURL + "/news"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var out api.NewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("news response decode failed: %w", err)
	}
	return &out, nil
}

// GetForecast asks the forecasting endpoint for a market outlook built
// from the given message.
func (c *Client) GetForecast(ctx context.Context, userMessage string) (string, error) {
	payload, err := json.Marshal(api.ForecastRequest{UserMessage: userMessage})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/forecast", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("forecast returned status %d: %s", resp.StatusCode, string(body))
	}
	return string(body), nil
}

// apiError extracts the {"error": ...} payload the API uses for
// failures.
func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("api status %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("api status %d", resp.StatusCode)
}
