// Package openai implements the reconciliation client against the OpenAI
// Chat Completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"invoicematch/internal/config"
	"invoicematch/internal/reconciler"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// temperature is kept near zero to bias the model toward deterministic,
// factual output.
const temperature = 0.1

// Client implements port.ReconciliationClient using the OpenAI Chat
// Completions API.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates an OpenAI-backed reconciliation client.
func NewClient(cfg *config.OpenAIConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	return newClient(cfg, endpoint)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint
// (for testing).
func NewClientWithEndpoint(cfg *config.OpenAIConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.OpenAIConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "gpt-4-turbo-preview"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Reconcile sends the built prompt as a single user message and returns the
// raw text payload of the completion. The provider is directed to return a
// JSON-only response via response_format. One attempt per call, no retry;
// every transport or provider-side failure is a *reconciler.ProviderError.
func (c *Client) Reconcile(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"response_format": map[string]interface{}{
			"type": "json_object",
		},
		"temperature": temperature,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &reconciler.ProviderError{Message: err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &reconciler.ProviderError{Message: "reading response: " + err.Error(), Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &reconciler.ProviderError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &reconciler.ProviderError{Message: "unmarshaling response: " + err.Error(), Err: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &reconciler.ProviderError{Message: "empty response from API: no choices"}
	}
	if parsed.Choices[0].FinishReason == "length" {
		return "", &reconciler.ProviderError{Message: "output truncated (finish_reason: length)"}
	}

	return parsed.Choices[0].Message.Content, nil
}
