// Package main implements the entry point for the Pokedex API server,
// which identifies Pokemon from free text using an LLM and serves
// stateless scans and chat-style sessions over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/pokedex-api/internal/config"
	"github.com/phrazzld/pokedex-api/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Pokedex server failed: %v", err)
	}
}

// run loads configuration, sets up logging, wires the application and
// serves HTTP until a shutdown signal arrives.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, closer, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Printf("failed to close log output: %v", err)
		}
	}()

	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("model", cfg.LLM.ModelName),
		slog.Bool("api_key_present", cfg.LLM.GeminiAPIKey != ""))

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
