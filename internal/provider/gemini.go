package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mandalnilabja/aiproxy/internal/types"
)

// DefaultGeminiModel is used when the caller omits a model.
const DefaultGeminiModel = "gemini-pro"

// Gemini relays to a Gemini-compatible generation endpoint. Unlike the
// Claude and OpenAI providers the inbound payload is not forwarded as-is;
// only model and content are extracted and mapped onto generateContent.
type Gemini struct {
	apiKey  string
	baseURL string
}

// NewGemini creates a Gemini provider. An empty apiKey disables it.
func NewGemini(apiKey, baseURL string) *Gemini {
	return &Gemini{apiKey: apiKey, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Name returns the provider identifier.
func (p *Gemini) Name() string { return "gemini" }

// DisplayName returns the provider name used in error messages.
func (p *Gemini) DisplayName() string { return "Gemini" }

// BaseURL returns the API root (model endpoints hang off it).
func (p *Gemini) BaseURL() string { return p.baseURL }

// Available reports whether an API key is configured.
func (p *Gemini) Available() bool { return p.apiKey != "" }

// PrepareRequest injects the Gemini API key header.
func (p *Gemini) PrepareRequest(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)
}

// generateContent wire types for the Gemini REST API.
type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature *float64 `json:"temperature,omitempty"`
}

type geminiGenerateRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate calls the generateContent endpoint for the requested model and
// returns the candidate text in the normalized relay shape. The model
// defaults to DefaultGeminiModel when unset.
func (p *Gemini) Generate(ctx context.Context, c *Client, req *types.GenerateRequest) (*types.GenerateResponse, error) {
	if !p.Available() {
		return nil, ErrNoAPIKey
	}

	model := req.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	payload := &geminiGenerateRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: req.Content}}},
		},
	}
	if req.Temperature != nil {
		payload.GenerationConfig = &geminiGenerationConfig{Temperature: req.Temperature}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, model)
	result, err := c.Post(ctx, url, p.PrepareRequest, body)
	if err != nil {
		return nil, err
	}

	if result.StatusCode < 200 || result.StatusCode >= 300 {
		// The error envelope is parsed opportunistically; intermediaries
		// may return non-JSON error pages.
		var errResp geminiGenerateResponse
		if err := json.Unmarshal(result.Body, &errResp); err == nil && errResp.Error != nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("Gemini API error: %s", errResp.Error.Message)
		}
		return nil, fmt.Errorf("Gemini API returned status %d", result.StatusCode)
	}

	var resp geminiGenerateResponse
	if err := json.Unmarshal(result.Body, &resp); err != nil {
		return nil, fmt.Errorf("invalid response from Gemini API: %w", err)
	}

	var text strings.Builder
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			text.WriteString(part.Text)
		}
	}

	return &types.GenerateResponse{
		Text:  text.String(),
		Model: model,
	}, nil
}
