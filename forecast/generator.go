package forecast

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// DefaultSystemMessage frames the model as a currency-market analyst.
const DefaultSystemMessage = "You are an AI that predicts currency exchange trends based on economic news."

const (
	defaultModel       = "command-r-plus"
	defaultMaxTokens   = 2000
	defaultTemperature = 0.7
	generateTimeout    = 60 * time.Second
)

// Generator abstracts the hosted text-generation model. The relevance
// engine has no dependency on it; only the forecast endpoint does.
type Generator interface {
	Generate(ctx context.Context, systemMessage, userMessage string) (string, error)
}

// CohereGenerator implements Generator using the Cohere chat API.
// SDK: github.com/cohere-ai/cohere-go/v2
type CohereGenerator struct {
	client      *cohereclient.Client
	model       string
	maxTokens   int
	temperature float64
}

// NewCohereGenerator creates a generator with the given API key and model.
func NewCohereGenerator(apiKey, model string) *CohereGenerator {
	if model == "" {
		model = defaultModel
	}

	// Force HTTP/1.1 to avoid HTTP/2 protocol errors seen against the
	// Cohere endpoint.
	httpClient := &http.Client{
		Timeout: generateTimeout,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}

	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)

	return &CohereGenerator{
		client:      client,
		model:       model,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
	}
}

// NewGeneratorFromEnv returns a Cohere generator when COHERE_API_KEY is
// set, nil otherwise.
func NewGeneratorFromEnv() Generator {
	apiKey := strings.TrimSpace(os.Getenv("COHERE_API_KEY"))
	if apiKey == "" {
		return nil
	}
	return NewCohereGenerator(apiKey, os.Getenv("COHERE_MODEL"))
}

// Generate runs one chat turn and returns the model's text.
func (g *CohereGenerator) Generate(ctx context.Context, systemMessage, userMessage string) (string, error) {
	if systemMessage == "" {
		systemMessage = DefaultSystemMessage
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	maxTokens := g.maxTokens
	temperature := g.temperature
	resp, err := g.client.Chat(ctx, &cohere.ChatRequest{
		Message:     userMessage,
		Model:       &g.model,
		Preamble:    &systemMessage,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil || resp.Text == "" {
		return "", errors.New("cohere chat returned empty response")
	}

	return resp.Text, nil
}
