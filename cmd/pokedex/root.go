package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phrazzld/pokedex-api/internal/config"
	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/identification"
	"github.com/phrazzld/pokedex-api/internal/platform/gemini"
	"github.com/phrazzld/pokedex-api/internal/platform/logger"
	"github.com/phrazzld/pokedex-api/internal/render"
	"github.com/phrazzld/pokedex-api/internal/session"
)

// deps are the collaborators the commands are built from.
type deps struct {
	loadConfig    func() (*config.Config, error)
	newIdentifier func(ctx context.Context, l *slog.Logger, cfg config.LLMConfig) (identification.Identifier, error)
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.Load,
		newIdentifier: func(ctx context.Context, l *slog.Logger, cfg config.LLMConfig) (identification.Identifier, error) {
			return gemini.NewIdentifier(ctx, l, cfg)
		},
	}
}

// client is the wired state shared by subcommands.
type client struct {
	service   *session.Service
	resources domain.ResourceTemplates
	renderer  *render.Renderer
	logger    *slog.Logger
}

func newRootCmd(d deps) *cobra.Command {
	var (
		verbose bool
		noColor bool
		c       *client
	)

	root := &cobra.Command{
		Use:   "pokedex",
		Short: "A retro Pokedex in your terminal",
		Long: `pokedex identifies Pokemon from free text using Gemini and renders
the result as a Pokedex screen.

The API key is read from POKEDEX_LLM_GEMINI_API_KEY, GEMINI_API_KEY or API_KEY.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			c, err = newClient(cmd.Context(), d, cmd.ErrOrStderr(), verbose, noColor)
			return err
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored log output")

	root.AddCommand(
		newScanCmd(func() *client { return c }),
		newChatCmd(func() *client { return c }),
	)

	return root
}

func newClient(ctx context.Context, d deps, logOut io.Writer, verbose, noColor bool) (*client, error) {
	cfg, err := d.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(logger.NewHandler(logOut, logger.FormatText, level, noColor || !logger.IsTerminal(logOut)))

	id, err := d.newIdentifier(ctx, l, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identifier: %w", err)
	}

	svc, err := session.NewService(session.NewStore(1), id, l)
	if err != nil {
		return nil, err
	}

	resources, err := domain.NewResourceTemplates(cfg.Pokedex.SpriteURLTemplate, cfg.Pokedex.CryURLTemplate)
	if err != nil {
		return nil, fmt.Errorf("invalid resource templates: %w", err)
	}

	return &client{
		service:   svc,
		resources: resources,
		renderer:  render.New(),
		logger:    l,
	}, nil
}

// resourcesFor returns the media URLs for result, or none when it has no number.
func (c *client) resourcesFor(result domain.IdentificationResult) domain.Resources {
	res, err := c.resources.For(result)
	if err != nil {
		return domain.Resources{}
	}
	return res
}
