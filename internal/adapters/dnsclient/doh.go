// Package dnsclient implements the DNS resolver port over a
// DNS-over-HTTPS JSON endpoint.
package dnsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is a Google-style JSON resolver endpoint. Cloudflare's
	// https://cloudflare-dns.com/dns-query speaks the same format.
	DefaultEndpoint = "https://dns.google/resolve"

	defaultTimeout = 4 * time.Second
	maxBodyBytes   = 1 << 20
)

var userAgent = "riskscan-dns/1.0"

// Client resolves records through a DoH JSON endpoint. Implements
// ports.DNSResolver.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New builds a client for the given endpoint. An empty endpoint selects the
// default public resolver.
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 5,
			},
		},
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// dohResponse is the subset of the JSON answer format we consume.
type dohResponse struct {
	Status int `json:"Status"`
	Answer []struct {
		Name string `json:"name"`
		Type int    `json:"type"`
		Data string `json:"data"`
	} `json:"Answer"`
}

// Resolve queries the endpoint for one name and record type. A non-200
// response or unparseable body reads as "no records"; only transport-level
// failures surface as errors.
func (c *Client) Resolve(ctx context.Context, name, recordType string) ([]string, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("type", strings.ToUpper(recordType))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building doh request: %w", err)
	}
	req.Header.Set("Accept", "application/dns-json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("doh query for %s %s: %w", name, recordType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("doh non-200, treating as no records", "name", name, "type", recordType, "status", resp.StatusCode)
		return []string{}, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading doh response: %w", err)
	}

	var parsed dohResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Debug("doh parse error, treating as no records", "name", name, "error", err)
		return []string{}, nil
	}

	records := make([]string, 0, len(parsed.Answer))
	for _, answer := range parsed.Answer {
		data := strings.Trim(answer.Data, `"`)
		if data != "" {
			records = append(records, data)
		}
	}
	return records, nil
}
