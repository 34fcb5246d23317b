// Package breach implements the breach-directory port over an HIBP-style
// HTTP API.
package breach

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/guardshell/riskscan/internal/domain"
)

const (
	defaultTimeout = 5 * time.Second
	maxBodyBytes   = 1 << 20
)

// Client queries a breach database for an address's exposure history.
// Implements ports.BreachDirectory.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New builds a client for the given API base URL. The key may be empty for
// endpoints that allow anonymous queries.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// breachEntry mirrors the upstream response shape.
type breachEntry struct {
	Name       string `json:"Name"`
	BreachDate string `json:"BreachDate"`
}

// LookupBreaches returns known breaches for an address. 404 means the
// address is clean: (nil, nil). Every other failure is an error; the caller
// substitutes its simulated fallback.
func (c *Client) LookupBreaches(ctx context.Context, email string) ([]domain.Breach, error) {
	endpoint := fmt.Sprintf("%s/breachedaccount/%s?truncateResponse=false", c.baseURL, url.PathEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building breach request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("hibp-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("breach lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("breach lookup: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading breach response: %w", err)
	}

	var entries []breachEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parsing breach response: %w", err)
	}

	breaches := make([]domain.Breach, 0, len(entries))
	for _, e := range entries {
		breaches = append(breaches, domain.Breach{Name: e.Name, Date: e.BreachDate})
	}
	return breaches, nil
}
