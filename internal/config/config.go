// Package config loads the immutable process configuration.
package config

import (
	"os"
	"strconv"
	"time"
)

// Default upstream endpoints.
const (
	DefaultClaudeAPIURL = "https://api.anthropic.com/v1/messages"
	DefaultOpenAIAPIURL = "https://api.openai.com/v1/chat/completions"
	DefaultGeminiAPIURL = "https://generativelanguage.googleapis.com/v1beta"
)

// DefaultUpstreamTimeout bounds every outbound provider call.
const DefaultUpstreamTimeout = 60 * time.Second

// Config holds application configuration loaded from environment and file.
// Priority: CLI flags → Env vars → config.toml → defaults.
// It is constructed once at startup and never mutated; handlers receive it
// by injection rather than reading ambient state per request.
type Config struct {
	// ServerAddr is the address to bind the server to (e.g., ":3340")
	ServerAddr string

	// Provider credentials. Empty means the provider's route is disabled.
	ClaudeAPIKey string
	OpenAIAPIKey string
	GeminiAPIKey string

	// Upstream endpoints, overridable for tests and compatible gateways.
	ClaudeAPIURL string
	OpenAIAPIURL string
	GeminiAPIURL string

	// UpstreamTimeout bounds each outbound provider call.
	UpstreamTimeout time.Duration
}

// Load reads configuration from the TOML file and environment variables.
// Environment variables override file config values.
func Load() *Config {
	fileConfig, _ := LoadFile() // Ignore error, use defaults

	return &Config{
		ServerAddr:      getEnvOrFile("SERVER_ADDR", fileConfig.ServerAddr, ":3340"),
		ClaudeAPIKey:    getEnvFallback("CLAUDE_API_KEY", "ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		ClaudeAPIURL:    getEnvOrFile("CLAUDE_API_URL", fileConfig.ClaudeAPIURL, DefaultClaudeAPIURL),
		OpenAIAPIURL:    getEnvOrFile("OPENAI_API_URL", fileConfig.OpenAIAPIURL, DefaultOpenAIAPIURL),
		GeminiAPIURL:    getEnvOrFile("GEMINI_API_URL", fileConfig.GeminiAPIURL, DefaultGeminiAPIURL),
		UpstreamTimeout: getEnvDurationOrFile("UPSTREAM_TIMEOUT_SECONDS", fileConfig.UpstreamTimeoutSeconds, DefaultUpstreamTimeout),
	}
}

// getEnvOrFile returns env value, file value, or default (in priority order)
func getEnvOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getEnvFallback returns the first non-empty value among the given env keys.
func getEnvFallback(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

// getEnvDurationOrFile returns env seconds, file seconds, or default
// (in priority order).
func getEnvDurationOrFile(key string, fileValue int, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	if fileValue > 0 {
		return time.Duration(fileValue) * time.Second
	}
	return defaultValue
}
