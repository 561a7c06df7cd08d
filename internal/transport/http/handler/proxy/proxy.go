// Package proxy implements the credential-injecting relay handlers.
package proxy

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/mandalnilabja/aiproxy/internal/provider"
	"github.com/mandalnilabja/aiproxy/internal/tokenizer"
)

// Handlers holds the dependencies for proxy HTTP handlers.
type Handlers struct {
	Relay     *provider.Client
	Claude    *provider.Claude
	OpenAI    *provider.OpenAI
	Gemini    *provider.Gemini
	Tokenizer tokenizer.Tokenizer
	Logger    *slog.Logger
}

// New creates a new instance of proxy handlers.
func New(relay *provider.Client, claude *provider.Claude, openai *provider.OpenAI, gemini *provider.Gemini, tok tokenizer.Tokenizer, logger *slog.Logger) *Handlers {
	return &Handlers{
		Relay:     relay,
		Claude:    claude,
		OpenAI:    openai,
		Gemini:    gemini,
		Tokenizer: tok,
		Logger:    logger,
	}
}

// emptyObject replaces absent or malformed request bodies. The relay is
// lenient: a body it cannot parse is forwarded as an empty object rather
// than rejected.
var emptyObject = []byte("{}")

// readJSONBody reads the raw request body, coercing absent or invalid JSON
// to an empty object. Valid bodies are returned byte-for-byte so the
// forward stays a true passthrough.
func readJSONBody(r *http.Request) []byte {
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return emptyObject
	}

	if len(body) == 0 || !json.Valid(body) {
		return emptyObject
	}
	return body
}
