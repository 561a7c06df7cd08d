package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure.
// API keys are deliberately not accepted here; they come from the
// environment only, so a world-readable config file never holds a secret.
type FileConfig struct {
	ServerAddr             string `toml:"server_addr"`
	ClaudeAPIURL           string `toml:"claude_api_url"`
	OpenAIAPIURL           string `toml:"openai_api_url"`
	GeminiAPIURL           string `toml:"gemini_api_url"`
	UpstreamTimeoutSeconds int    `toml:"upstream_timeout_seconds"`
}

// DataDir returns the path to the aiproxy data directory.
// - Windows: %APPDATA%\aiproxy
// - Other OS: ~/.aiproxy
func DataDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "aiproxy")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".aiproxy"
	}
	return filepath.Join(home, ".aiproxy")
}

// ConfigPath returns the path to the config file (~/.aiproxy/config.toml).
// AIPROXY_CONFIG overrides the location.
func ConfigPath() string {
	if path := os.Getenv("AIPROXY_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(DataDir(), "config.toml")
}

// LoadFile loads configuration from the TOML file.
// Returns an empty FileConfig if the file doesn't exist.
func LoadFile() (*FileConfig, error) {
	cfg := &FileConfig{}

	path := ConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
