package provider

import "net/http"

// anthropicVersion is the API version header required by the Messages API.
const anthropicVersion = "2023-06-01"

// Claude relays to a Claude-compatible messages endpoint.
type Claude struct {
	apiKey  string
	baseURL string
}

// NewClaude creates a Claude provider. An empty apiKey disables it.
func NewClaude(apiKey, baseURL string) *Claude {
	return &Claude{apiKey: apiKey, baseURL: baseURL}
}

// Name returns the provider identifier.
func (p *Claude) Name() string { return "claude" }

// DisplayName returns the provider name used in error messages.
func (p *Claude) DisplayName() string { return "Claude" }

// BaseURL returns the messages endpoint.
func (p *Claude) BaseURL() string { return p.baseURL }

// Available reports whether an API key is configured.
func (p *Claude) Available() bool { return p.apiKey != "" }

// PrepareRequest injects the Claude auth headers. The API accepts the key
// either as x-api-key or as a bearer token depending on deployment; both
// are set simultaneously, matching what upstream expects.
func (p *Claude) PrepareRequest(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
}
