package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"fxnews/types"
)

const (
	defaultBaseURL = "https://newsapi.org/v2"
	// NewsAPI caps the everything endpoint at 100 results per page; one
	// page is all a single collection pass ever needs.
	pageSize       = 100
	requestTimeout = 15 * time.Second
)

// Client talks to the NewsAPI "everything" endpoint.
// Docs: https://newsapi.org/docs/endpoints/everything
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a NewsAPI client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientFromEnv builds a client from NEWSAPI_KEY, falling back to the
// key file named by NEWSAPI_KEY_FILE. Returns nil when no credential is
// configured; callers surface that as a configuration failure.
func NewClientFromEnv() *Client {
	if key := strings.TrimSpace(os.Getenv("NEWSAPI_KEY")); key != "" {
		return NewClient(key)
	}
	if path := strings.TrimSpace(os.Getenv("NEWSAPI_KEY_FILE")); path != "" {
		key, err := LoadAPIKey(path)
		if err != nil {
			return nil
		}
		return NewClient(key)
	}
	return nil
}

// LoadAPIKey reads an API key from a text file.
func LoadAPIKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("API key file %s is empty", path)
	}
	return key, nil
}

// envelope mirrors the NewsAPI response shape for both success and error
// payloads.
type envelope struct {
	Status       string             `json:"status"`
	Code         string             `json:"code,omitempty"`
	Message      string             `json:"message,omitempty"`
	TotalResults int                `json:"totalResults"`
	Articles     []types.RawArticle `json:"articles"`
}

// Search queries English-language articles for the date window, sorted by
// relevancy. API-level failures (status != "ok") come back as a non-ok
// SearchResult rather than an error; only transport and decoding problems
// return an error.
func (c *Client) Search(ctx context.Context, query string, from, to time.Time) (types.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", to.Format("2006-01-02"))
	params.Set("sortBy", "relevancy")
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))

	endpoint := c.baseURL + "/everything?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return types.SearchResult{}, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.SearchResult{}, fmt.Errorf("newsapi request failed: %w", err)
	}
	defer resp.Body.Close()

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return types.SearchResult{}, fmt.Errorf("newsapi response decode failed: %w", err)
	}

	result := types.SearchResult{
		Status:   body.Status,
		Message:  body.Message,
		Articles: body.Articles,
	}
	if result.Status == "" {
		result.Status = fmt.Sprintf("http %d", resp.StatusCode)
	}
	return result, nil
}
