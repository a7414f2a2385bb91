package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"

	"google.golang.org/genai"

	"github.com/phrazzld/pokedex-api/internal/config"
	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/identification"
	"github.com/phrazzld/pokedex-api/internal/redact"
)

// maxLoggedInputRunes bounds how much of the user's text appears in logs.
const maxLoggedInputRunes = 64

// GeminiIdentifier implements the identification.Identifier interface
// using Google's Gemini API.
type GeminiIdentifier struct {
	// generator performs the outbound request
	generator ContentGenerator

	// logger for diagnostic output
	logger *slog.Logger

	// modelName is the Gemini model to use
	modelName string

	// timeout bounds a single Identify call
	timeout time.Duration

	// prompt renders the task text from the user's input
	prompt *template.Template

	// genConfig is shared read-only across calls
	genConfig *genai.GenerateContentConfig
}

// Compile-time check to ensure GeminiIdentifier implements identification.Identifier
var _ identification.Identifier = (*GeminiIdentifier)(nil)

// Option customizes a GeminiIdentifier.
type Option func(*GeminiIdentifier)

// WithContentGenerator replaces the genai client with g.
func WithContentGenerator(g ContentGenerator) Option {
	return func(i *GeminiIdentifier) {
		i.generator = g
	}
}

// NewIdentifier creates a new GeminiIdentifier with the provided dependencies.
//
// Parameters:
//   - ctx: Context used while creating the genai client
//   - logger: Structured logger for diagnostics (required)
//   - cfg: LLM configuration (model, timeout, prompt template, system instruction)
//   - opts: Optional overrides such as WithContentGenerator
//
// Returns:
//   - A configured GeminiIdentifier
//   - An error wrapping identification.ErrInvalidConfig when the configuration
//     cannot produce a working identifier
//
// A missing API key is not an error here. Every Identify call on such an
// identifier fails with a transport fault and returns identification.Failure().
func NewIdentifier(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	opts ...Option,
) (*GeminiIdentifier, error) {
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", identification.ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.ModelName) == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", identification.ErrInvalidConfig)
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %d",
			identification.ErrInvalidConfig, cfg.TimeoutSeconds)
	}

	tmpl, err := loadPromptTemplate(cfg.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(identification.ResultSchema),
	}
	if cfg.SystemInstruction != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(cfg.SystemInstruction, genai.RoleUser)
	}

	i := &GeminiIdentifier{
		logger:    logger.With(slog.String("component", "gemini_identifier")),
		modelName: cfg.ModelName,
		timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		prompt:    tmpl,
		genConfig: genConfig,
	}
	for _, opt := range opts {
		opt(i)
	}

	if i.generator == nil {
		i.generator, err = newGenaiGenerator(ctx, cfg.GeminiAPIKey, i.timeout)
		if err != nil {
			return nil, err
		}
		if cfg.GeminiAPIKey == "" {
			i.logger.WarnContext(ctx, "no Gemini API key configured; identification requests will fail")
		}
	}

	i.logger.DebugContext(ctx, "gemini identifier created",
		slog.String("model", i.modelName),
		slog.Duration("timeout", i.timeout),
		slog.Bool("custom_prompt", cfg.PromptTemplatePath != ""))

	return i, nil
}

// Identify sends text to Gemini and returns the decoded result.
// It never returns an error: every fault is logged and mapped to
// identification.Failure().
func (i *GeminiIdentifier) Identify(ctx context.Context, text string) (result domain.IdentificationResult) {
	start := time.Now()
	log := i.logger.With(slog.String("input", previewInput(text)))

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "recovered from panic during identification",
				slog.String("panic", redact.String(fmt.Sprint(r))))
			result = identification.Failure()
		}
	}()

	result, err := i.identify(ctx, text)
	if err != nil {
		log.ErrorContext(ctx, "identification failed",
			slog.String("category", failureCategory(err)),
			slog.String("error", redact.Error(err)),
			slog.Duration("duration", time.Since(start)))
		return identification.Failure()
	}

	log.InfoContext(ctx, "identification completed",
		slog.Bool("identified", result.Identified),
		slog.String("name", result.Name),
		slog.Duration("duration", time.Since(start)))

	return result
}

func (i *GeminiIdentifier) identify(ctx context.Context, text string) (domain.IdentificationResult, error) {
	prompt, err := renderPrompt(i.prompt, text)
	if err != nil {
		return domain.IdentificationResult{}, fmt.Errorf("%w: %v", identification.ErrInvalidConfig, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	i.logger.DebugContext(ctx, "sending identification request",
		slog.String("model", i.modelName),
		slog.Int("prompt_length", len(prompt)))

	resp, err := i.generator.GenerateContent(callCtx, i.modelName, genai.Text(prompt), i.genConfig)
	if err != nil {
		return domain.IdentificationResult{}, classifyCallError(err)
	}

	payload, err := responseText(resp)
	if err != nil {
		return domain.IdentificationResult{}, err
	}

	return identification.DecodeResult(payload)
}

// failureCategory names the diagnostic class of err for structured logs.
func failureCategory(err error) string {
	switch {
	case errors.Is(err, identification.ErrBlocked):
		return "blocked"
	case errors.Is(err, identification.ErrEmptyPayload):
		return "empty_payload"
	case errors.Is(err, identification.ErrMalformedPayload):
		return "malformed_payload"
	case errors.Is(err, identification.ErrRemote):
		return "remote"
	case errors.Is(err, identification.ErrTransport):
		return "transport"
	case errors.Is(err, identification.ErrInvalidConfig):
		return "config"
	default:
		return "unknown"
	}
}

// previewInput returns a redacted, truncated copy of the user's text.
func previewInput(text string) string {
	text = redact.String(text)
	if utf8.RuneCountInString(text) <= maxLoggedInputRunes {
		return text
	}
	return string([]rune(text)[:maxLoggedInputRunes]) + "..."
}
