package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mandalnilabja/aiproxy/internal/config"
	"github.com/mandalnilabja/aiproxy/internal/version"
)

func setupLogger() *slog.Logger {
	// Use sensible defaults: info level, text format
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// logKeyPresence reports which provider credentials were found, by length
// only. Secrets never reach the logs.
func logKeyPresence(logger *slog.Logger, cfg *config.Config) {
	keys := []struct {
		provider string
		key      string
	}{
		{"Claude", cfg.ClaudeAPIKey},
		{"OpenAI", cfg.OpenAIAPIKey},
		{"Gemini", cfg.GeminiAPIKey},
	}

	for _, k := range keys {
		if k.key != "" {
			logger.Info("API key found", "provider", k.provider, "length", len(k.key))
		} else {
			logger.Warn("no API key found in environment", "provider", k.provider)
		}
	}
}

func printStartupBanner(cfg *config.Config) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "AI API Proxy %s\n", version.Version)
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "Health:     http://localhost%s/health\n", cfg.ServerAddr)
	fmt.Fprintf(os.Stderr, "Claude:     http://localhost%s/proxy/claude\n", cfg.ServerAddr)
	fmt.Fprintf(os.Stderr, "OpenAI:     http://localhost%s/proxy/openai\n", cfg.ServerAddr)
	fmt.Fprintf(os.Stderr, "Gemini:     http://localhost%s/proxy/gemini\n", cfg.ServerAddr)
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "\n")
}
