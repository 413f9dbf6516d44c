package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Error taxonomy for a fetch cycle. Both are reported the same way by the
// sync loop but callers can tell them apart with errors.Is.
var (
	ErrConnection        = errors.New("connection error")
	ErrMalformedResponse = errors.New("malformed response")
)

// Fetcher retrieves the current chain from the node.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchChain(ctx context.Context) (Chain, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the chain node's HTTP API.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultEndpoint is the node's chain API when nothing is configured.
	DefaultEndpoint = "http://127.0.0.1:3000/api/chain"

	defaultChainPath = "/api/chain"
	defaultUserAgent = "chainview/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for endpoint, which may be a full URL or a bare
// host:port (the default chain path is appended).
func NewClient(endpoint string) (*Client, error) {
	u, err := ParseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Endpoint returns the URL the client polls.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchChain performs one GET against the endpoint and decodes the chain.
func (c *Client) FetchChain(ctx context.Context) (Chain, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", ErrConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: api %s returned status %d", ErrConnection, c.endpoint.Path, resp.StatusCode)
	}

	var payload struct {
		Chain *Chain `json:"chain"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrMalformedResponse, err)
	}
	if payload.Chain == nil {
		return nil, fmt.Errorf("%w: response has no chain field", ErrMalformedResponse)
	}
	return *payload.Chain, nil
}

// ParseEndpoint normalizes a configured endpoint into an absolute URL.
func ParseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = defaultChainPath
	}
	u.Fragment = ""
	return u, nil
}
