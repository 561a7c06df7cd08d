package proxy

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mandalnilabja/aiproxy/internal/provider"
	"github.com/mandalnilabja/aiproxy/internal/types"
)

// tokenCountTimeout is the maximum time to wait for token counting after
// the upstream call completes. Counting runs in parallel with the forward
// and only feeds the request log; it never delays the response.
const tokenCountTimeout = 100 * time.Millisecond

// RelayClaude forwards the request body to the Claude messages endpoint.
func (h *Handlers) RelayClaude(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, h.Claude)
}

// RelayOpenAI forwards the request body to the OpenAI chat completions
// endpoint.
func (h *Handlers) RelayOpenAI(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, h.OpenAI)
}

// relay performs the passthrough forward: inject the provider credential,
// POST the client's JSON body unaltered, and propagate the upstream status
// and body verbatim. Upstream non-2xx codes pass through as-is; only a
// failure to reach upstream becomes a 500.
func (h *Handlers) relay(w http.ResponseWriter, r *http.Request, p provider.Provider) {
	start := time.Now()

	if !p.Available() {
		types.WriteError(w, http.StatusInternalServerError, p.DisplayName()+" API key not configured on server")
		return
	}

	body := readJSONBody(r)

	// Parsed best-effort for logging and token estimation only; the raw
	// bytes are what gets forwarded.
	var req types.ChatRequest
	_ = json.Unmarshal(body, &req)

	// Count prompt tokens in the background so the forward starts
	// immediately.
	tokensChan := make(chan int, 1)
	go func() {
		defer close(tokensChan)
		if h.Tokenizer != nil {
			if tokens, err := h.Tokenizer.CountRequest(&req); err == nil {
				tokensChan <- tokens
			}
		}
	}()

	result, err := h.Relay.Forward(r.Context(), p, body)
	if err != nil {
		h.Logger.Error("relay failed",
			"provider", p.Name(),
			"model", req.Model,
			"error", err,
		)
		types.WriteError(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.StatusCode)
	_, _ = w.Write(result.Body)

	// Collect the token estimate with a short grace period.
	promptTokens := 0
	select {
	case tokens, ok := <-tokensChan:
		if ok {
			promptTokens = tokens
		}
	case <-time.After(tokenCountTimeout):
	}

	h.Logger.Info("relay",
		"provider", p.Name(),
		"model", req.Model,
		"status", result.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", promptTokens,
	)
}
