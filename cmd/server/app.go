package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/pokedex-api/internal/config"
	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/identification"
	"github.com/phrazzld/pokedex-api/internal/platform/gemini"
	"github.com/phrazzld/pokedex-api/internal/session"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Identification and conversations
	identifier identification.Identifier
	sessions   *session.Service
	resources  domain.ResourceTemplates
}

// newApplication creates a new application instance with all dependencies initialized.
// Options are forwarded to the Gemini identifier.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	opts ...gemini.Option,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.resources, err = domain.NewResourceTemplates(cfg.Pokedex.SpriteURLTemplate, cfg.Pokedex.CryURLTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize resource templates: %w", err)
	}

	app.identifier, err = gemini.NewIdentifier(ctx, logger, cfg.LLM, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identifier: %w", err)
	}
	logger.Info("Gemini identifier initialized", slog.String("model", cfg.LLM.ModelName))

	app.sessions, err = session.NewService(session.NewStore(cfg.Pokedex.MaxSessions), app.identifier, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session service: %w", err)
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	app.logger.Info("Application cleanup completed")
}
