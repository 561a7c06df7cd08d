package provider

import "net/http"

// OpenAI relays to an OpenAI-compatible chat completions endpoint.
type OpenAI struct {
	apiKey  string
	baseURL string
}

// NewOpenAI creates an OpenAI provider. An empty apiKey disables it.
func NewOpenAI(apiKey, baseURL string) *OpenAI {
	return &OpenAI{apiKey: apiKey, baseURL: baseURL}
}

// Name returns the provider identifier.
func (p *OpenAI) Name() string { return "openai" }

// DisplayName returns the provider name used in error messages.
func (p *OpenAI) DisplayName() string { return "OpenAI" }

// BaseURL returns the chat completions endpoint.
func (p *OpenAI) BaseURL() string { return p.baseURL }

// Available reports whether an API key is configured.
func (p *OpenAI) Available() bool { return p.apiKey != "" }

// PrepareRequest injects the bearer auth header.
func (p *OpenAI) PrepareRequest(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
}
