package provider

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// Result holds the upstream response to relay back to the caller.
type Result struct {
	StatusCode int
	Body       []byte
}

// Client performs the single synchronous outbound call to a provider.
// The timeout covers the entire exchange; there are no retries.
type Client struct {
	http *http.Client
}

// NewClient creates a relay client with the given upstream timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Forward POSTs body to the provider's endpoint with its auth headers and
// returns the upstream status and body verbatim. The body is never
// inspected or rewritten. Returns ErrNoAPIKey without any outbound call
// when the provider has no credential.
func (c *Client) Forward(ctx context.Context, p Provider, body []byte) (*Result, error) {
	if !p.Available() {
		return nil, ErrNoAPIKey
	}
	return c.Post(ctx, p.BaseURL(), p.PrepareRequest, body)
}

// Post issues a single POST to url, letting prepare inject headers, and
// reads the full response. Non-2xx statuses are not an error; they are
// returned in Result for verbatim passthrough.
func (c *Client) Post(ctx context.Context, url string, prepare func(*http.Request), body []byte) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if prepare != nil {
		prepare(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
