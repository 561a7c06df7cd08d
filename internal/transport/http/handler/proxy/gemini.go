package proxy

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mandalnilabja/aiproxy/internal/provider"
	"github.com/mandalnilabja/aiproxy/internal/types"
)

// GenerateGemini relays to the Gemini generation API. Unlike the Claude and
// OpenAI routes, only model and content are extracted from the inbound
// payload; the response is normalized to {text, model}.
func (h *Handlers) GenerateGemini(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if !h.Gemini.Available() {
		types.WriteError(w, http.StatusInternalServerError, "Gemini API key not configured on server")
		return
	}

	var req types.GenerateRequest
	_ = json.Unmarshal(readJSONBody(r), &req)
	if req.Model == "" {
		req.Model = provider.DefaultGeminiModel
	}

	resp, err := h.Gemini.Generate(r.Context(), h.Relay, &req)
	if err != nil {
		h.Logger.Error("relay failed",
			"provider", h.Gemini.Name(),
			"model", req.Model,
			"error", err,
		)
		types.WriteError(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	types.WriteJSON(w, http.StatusOK, resp)

	h.Logger.Info("relay",
		"provider", h.Gemini.Name(),
		"model", req.Model,
		"status", http.StatusOK,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
