// Package handler composes the HTTP handler groups.
package handler

import (
	"log/slog"

	"github.com/mandalnilabja/aiproxy/internal/provider"
	"github.com/mandalnilabja/aiproxy/internal/tokenizer"
	"github.com/mandalnilabja/aiproxy/internal/transport/http/handler/infra"
	"github.com/mandalnilabja/aiproxy/internal/transport/http/handler/proxy"
)

// Repo composes all domain-specific handlers.
type Repo struct {
	Infra *infra.Handlers
	Proxy *proxy.Handlers
}

// NewRepo creates a new instance of the composed handler repository.
func NewRepo(relay *provider.Client, claude *provider.Claude, openai *provider.OpenAI, gemini *provider.Gemini, tok tokenizer.Tokenizer, logger *slog.Logger) *Repo {
	return &Repo{
		Infra: infra.New(claude, openai, gemini),
		Proxy: proxy.New(relay, claude, openai, gemini, tok, logger),
	}
}
