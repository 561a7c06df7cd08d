package app

import (
	"log/slog"
	"net/http"

	"github.com/mandalnilabja/aiproxy/internal/transport/http/handler"
	"github.com/mandalnilabja/aiproxy/internal/transport/http/middleware"
)

// RouterOptions configures the HTTP router behavior.
type RouterOptions struct {
	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router with all application
// routes. Returns an http.Handler with middleware applied.
func NewRouter(repo *handler.Repo, opts *RouterOptions) http.Handler {
	mux := http.NewServeMux()

	// Service descriptor and health (no credentials involved)
	mux.HandleFunc("GET /{$}", repo.Infra.Home)
	mux.HandleFunc("GET /health", repo.Infra.HealthCheck)

	// Provider relay routes
	mux.HandleFunc("POST /proxy/claude", repo.Proxy.RelayClaude)
	mux.HandleFunc("POST /proxy/openai", repo.Proxy.RelayOpenAI)
	mux.HandleFunc("POST /proxy/gemini", repo.Proxy.GenerateGemini)

	// Everything unmatched gets the JSON 404 envelope
	mux.HandleFunc("/", repo.Infra.NotFound)

	// Apply middleware chain (order: outer to inner)
	var h http.Handler = mux

	// Request logging (if logger provided)
	if opts != nil && opts.Logger != nil {
		h = middleware.RequestLogger(opts.Logger)(h)
	}

	// Request ID (always applied)
	h = middleware.RequestID(h)

	// CORS outermost so OPTIONS preflight answers on every route
	h = middleware.CORS(h)

	return h
}
