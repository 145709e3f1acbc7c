// Package claims submits payment-discrepancy claims to the external claims
// management API.
package claims

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"invoicematch/internal/config"
	"invoicematch/internal/domain"
)

const claimsPath = "/api/v1/claims"

// Client implements port.ClaimSubmitter against the claims API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a claims API client. It returns nil when the config is
// missing the base URL or API key, which downgrades claim forwarding to the
// "not configured" status rather than failing requests.
func NewClient(cfg *config.ClaimsConfig) *Client {
	baseURL := cfg.ResolveBaseURL()
	if baseURL == "" || cfg.APIKey == "" {
		return nil
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Submit POSTs the claim and returns the external claim identifier from the
// response body at data.id.
func (c *Client) Submit(ctx context.Context, claim domain.Claim) (string, error) {
	bodyBytes, err := json.Marshal(claim)
	if err != nil {
		return "", fmt.Errorf("marshaling claim: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+claimsPath, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling claims API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("claims API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	// Claim IDs have been observed as both numbers and strings.
	var parsed struct {
		Data struct {
			ID interface{} `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if parsed.Data.ID == nil {
		return "", fmt.Errorf("claims API response missing data.id: %s", truncate(string(respBody), 500))
	}

	if id, ok := parsed.Data.ID.(float64); ok {
		return fmt.Sprintf("%.0f", id), nil
	}
	return fmt.Sprintf("%v", parsed.Data.ID), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
