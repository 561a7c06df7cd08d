package types

// ChatMessage is a single message in a chat completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the subset of a Claude or OpenAI completion request the
// relay inspects. The raw body is forwarded unmodified; these fields are
// parsed best-effort for logging and token estimation only.
type ChatRequest struct {
	Model     string        `json:"model"`
	System    string        `json:"system,omitempty"`
	Messages  []ChatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

// GenerateRequest is the inbound payload for the Gemini route.
type GenerateRequest struct {
	Model       string   `json:"model"`
	Content     string   `json:"content"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// GenerateResponse is the normalized Gemini response returned to callers.
type GenerateResponse struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}
