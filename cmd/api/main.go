package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/mandalnilabja/aiproxy/internal/app"
	"github.com/mandalnilabja/aiproxy/internal/config"
	"github.com/mandalnilabja/aiproxy/internal/provider"
	"github.com/mandalnilabja/aiproxy/internal/tokenizer"
	"github.com/mandalnilabja/aiproxy/internal/transport/http/handler"
	"github.com/mandalnilabja/aiproxy/internal/version"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides SERVER_ADDR)")
	configPath := flag.String("config", "", "path to config.toml (overrides AIPROXY_CONFIG)")
	showVersion := flag.BoolP("version", "v", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	// Load .env before reading any configuration
	_ = godotenv.Load()

	if *configPath != "" {
		os.Setenv("AIPROXY_CONFIG", *configPath)
	}

	cfg := config.Load()
	if *addr != "" {
		cfg.ServerAddr = *addr
	}

	logger := setupLogger()
	logKeyPresence(logger, cfg)

	relay := provider.NewClient(cfg.UpstreamTimeout)
	claude := provider.NewClaude(cfg.ClaudeAPIKey, cfg.ClaudeAPIURL)
	openai := provider.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL)
	gemini := provider.NewGemini(cfg.GeminiAPIKey, cfg.GeminiAPIURL)

	repo := handler.NewRepo(relay, claude, openai, gemini, tokenizer.New(), logger)
	router := app.NewRouter(repo, &app.RouterOptions{Logger: logger})

	printStartupBanner(cfg)

	srv := app.NewServer(cfg, router)
	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
}
