package proxy

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mandalnilabja/aiproxy/internal/provider"
)

func newTestHandlers(claudeKey, openaiKey, geminiKey, upstreamURL string) *Handlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(
		provider.NewClient(5*time.Second),
		provider.NewClaude(claudeKey, upstreamURL),
		provider.NewOpenAI(openaiKey, upstreamURL),
		provider.NewGemini(geminiKey, upstreamURL),
		nil,
		logger,
	)
}

func TestRelay_MissingCredentialMakesNoUpstreamCall(t *testing.T) {
	tests := []struct {
		name    string
		handler func(h *Handlers) http.HandlerFunc
		wantErr string
	}{
		{
			name:    "claude",
			handler: func(h *Handlers) http.HandlerFunc { return h.RelayClaude },
			wantErr: `{"error":"Claude API key not configured on server"}`,
		},
		{
			name:    "openai",
			handler: func(h *Handlers) http.HandlerFunc { return h.RelayOpenAI },
			wantErr: `{"error":"OpenAI API key not configured on server"}`,
		},
		{
			name:    "gemini",
			handler: func(h *Handlers) http.HandlerFunc { return h.GenerateGemini },
			wantErr: `{"error":"Gemini API key not configured on server"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
			}))
			defer upstream.Close()

			h := newTestHandlers("", "", "", upstream.URL)

			req := httptest.NewRequest(http.MethodPost, "/proxy/"+tt.name, strings.NewReader(`{"model":"x"}`))
			rec := httptest.NewRecorder()
			tt.handler(h)(rec, req)

			if rec.Code != http.StatusInternalServerError {
				t.Errorf("expected status 500, got %d", rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.wantErr {
				t.Errorf("expected body %s, got %s", tt.wantErr, got)
			}
			if calls != 0 {
				t.Errorf("expected zero upstream calls, got %d", calls)
			}
		})
	}
}

func TestRelay_ForwardsBodyByteForByte(t *testing.T) {
	inbound := `{"model":"gpt-4","messages":[{"role":"user","content":"hi"}]}`

	var received string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
	}))
	defer upstream.Close()

	h := newTestHandlers("", "sk-test", "", upstream.URL)

	req := httptest.NewRequest(http.MethodPost, "/proxy/openai", strings.NewReader(inbound))
	rec := httptest.NewRecorder()
	h.RelayOpenAI(rec, req)

	if received != inbound {
		t.Errorf("outbound body transformed:\n got %s\nwant %s", received, inbound)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != `{"choices":[{"message":{"content":"hello"}}]}` {
		t.Errorf("upstream body not relayed verbatim: %s", rec.Body.String())
	}
}

func TestRelay_MalformedBodyCoercedToEmptyObject(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"model": oops`},
		{"empty body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received string
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				received = string(body)
				_, _ = w.Write([]byte(`{}`))
			}))
			defer upstream.Close()

			h := newTestHandlers("sk-test", "", "", upstream.URL)

			req := httptest.NewRequest(http.MethodPost, "/proxy/claude", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.RelayClaude(rec, req)

			if received != "{}" {
				t.Errorf("expected coerced empty object upstream, got %q", received)
			}
			if rec.Code != http.StatusOK {
				t.Errorf("lenient parsing must not reject, got status %d", rec.Code)
			}
		})
	}
}

// errReader fails every read, simulating a client that drops mid-body.
type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failure") }

func TestReadJSONBody_ReadErrorCoercedToEmptyObject(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/proxy/claude", nil)
	req.Body = io.NopCloser(errReader{})

	if got := readJSONBody(req); string(got) != "{}" {
		t.Errorf("expected empty object on read error, got %q", got)
	}
}

func TestRelay_PropagatesUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer upstream.Close()

	h := newTestHandlers("", "sk-bad", "", upstream.URL)

	req := httptest.NewRequest(http.MethodPost, "/proxy/openai", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.RelayOpenAI(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("upstream 401 must pass through, got %d", rec.Code)
	}
	if rec.Body.String() != `{"error":{"message":"invalid api key"}}` {
		t.Errorf("upstream error body not preserved: %s", rec.Body.String())
	}
}

func TestRelay_UpstreamFailureBecomesServerError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // Unreachable upstream

	h := newTestHandlers("sk-test", "", "", upstream.URL)

	req := httptest.NewRequest(http.MethodPost, "/proxy/claude", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.RelayClaude(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"Server error: `) {
		t.Errorf("expected server error envelope, got %s", rec.Body.String())
	}
}

func TestGenerateGemini_ReturnsTextAndModel(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hi there"}]}}]}`))
	}))
	defer upstream.Close()

	h := newTestHandlers("", "", "goog-test", upstream.URL)

	req := httptest.NewRequest(http.MethodPost, "/proxy/gemini", strings.NewReader(`{"content":"hello"}`))
	rec := httptest.NewRecorder()
	h.GenerateGemini(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	want := `{"text":"hi there","model":"gemini-pro"}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
