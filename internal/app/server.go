// Package app wires the HTTP server and router.
package app

import (
	"log"
	"net/http"
	"time"

	"github.com/mandalnilabja/aiproxy/internal/config"
)

// Server wraps the HTTP server with its configuration
type Server struct {
	httpServer *http.Server
	config     *config.Config
}

// NewServer creates a new configured HTTP server instance
func NewServer(cfg *config.Config, handler http.Handler) *Server {
	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: handler,
		// Generous timeouts: the outbound provider call alone may take up
		// to the configured upstream timeout.
		ReadTimeout:  cfg.UpstreamTimeout + 30*time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 30*time.Second,
	}

	return &Server{
		httpServer: srv,
		config:     cfg,
	}
}

// Start begins listening and serving HTTP requests
func (s *Server) Start() error {
	log.Printf("AI API Proxy starting on http://localhost%s", s.config.ServerAddr)

	if err := s.httpServer.ListenAndServe(); err != nil {
		return err
	}
	return nil
}
