// Package provider implements the upstream AI completion providers and the
// relay client that forwards request bodies to them.
package provider

import (
	"errors"
	"net/http"
)

// ErrNoAPIKey is returned when no API key is configured for a provider.
var ErrNoAPIKey = errors.New("no API key configured")

// Provider defines the contract all completion providers implement.
type Provider interface {
	// Name returns the provider identifier ("claude", "openai", "gemini").
	Name() string

	// DisplayName returns the human-readable provider name for error text.
	DisplayName() string

	// BaseURL returns the provider's completion endpoint.
	BaseURL() string

	// Available reports whether a credential is configured.
	Available() bool

	// PrepareRequest injects the provider's auth headers into req.
	PrepareRequest(req *http.Request)
}
