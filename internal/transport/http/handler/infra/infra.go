// Package infra provides the service descriptor and health endpoints.
package infra

import (
	"net/http"

	"github.com/mandalnilabja/aiproxy/internal/provider"
	"github.com/mandalnilabja/aiproxy/internal/types"
)

// Handlers holds the dependencies for infrastructure HTTP handlers.
type Handlers struct {
	providers []provider.Provider
}

// New creates a new instance of infrastructure handlers.
func New(providers ...provider.Provider) *Handlers {
	return &Handlers{providers: providers}
}

// Home returns the static service descriptor at /.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	types.WriteJSON(w, http.StatusOK, map[string]any{
		"service": "AI API Proxy",
		"status":  "active",
		"endpoints": []string{
			"/health",
			"/proxy/claude",
			"/proxy/openai",
			"/proxy/gemini",
		},
	})
}

// HealthCheck reports per-provider availability, computed as credential
// presence. The process itself is always healthy.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	available := make(map[string]bool, len(h.providers))
	for _, p := range h.providers {
		available[p.Name()] = p.Available()
	}

	types.WriteJSON(w, http.StatusOK, map[string]any{
		"status":           "healthy",
		"available_models": available,
	})
}

// NotFound returns the JSON 404 envelope for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	types.WriteError(w, http.StatusNotFound, "Not found")
}
