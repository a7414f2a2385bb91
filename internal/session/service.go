package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/identification"
	"github.com/phrazzld/pokedex-api/internal/redact"
)

// Exchange is the outcome of one submitted message.
type Exchange struct {
	User     domain.ChatMessage `json:"user"`
	Bot      domain.ChatMessage `json:"bot"`
	Snapshot Snapshot           `json:"session"`
}

// Service runs Pokedex conversations against an Identifier.
type Service struct {
	store      *Store
	identifier identification.Identifier
	logger     *slog.Logger
}

// NewService creates a new Service.
// It returns an error if any of the required dependencies are nil.
func NewService(store *Store, identifier identification.Identifier, logger *slog.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if identifier == nil {
		return nil, errors.New("identifier cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Service{
		store:      store,
		identifier: identifier,
		logger:     logger.With(slog.String("component", "session_service")),
	}, nil
}

// Identify runs a single stateless scan. Text is trimmed first; blank text
// fails with ErrEmptyInput and is never forwarded to the identifier.
func (s *Service) Identify(ctx context.Context, text string) (domain.IdentificationResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.IdentificationResult{}, ErrEmptyInput
	}
	return s.identifier.Identify(ctx, trimmed), nil
}

// Create starts a new conversation.
func (s *Service) Create(ctx context.Context) (Snapshot, error) {
	c, err := s.store.Create()
	if err != nil {
		s.logger.WarnContext(ctx, "failed to create session",
			slog.Int("session_count", s.store.Count()),
			slog.String("error", err.Error()))
		return Snapshot{}, err
	}

	s.logger.DebugContext(ctx, "session created", slog.String("session_id", c.ID().String()))
	return c.Snapshot(), nil
}

// Get returns a snapshot of the conversation with the given ID.
func (s *Service) Get(_ context.Context, id uuid.UUID) (Snapshot, error) {
	c, err := s.store.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return c.Snapshot(), nil
}

// Delete ends the conversation with the given ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "session deleted", slog.String("session_id", id.String()))
	return nil
}

// Submit sends text to the Pokedex within a conversation.
//
// The text is trimmed; blank input fails with ErrEmptyInput. A conversation
// accepts one submission at a time and rejects overlapping ones with ErrBusy.
// The user's message is appended, the identifier is called once, and its
// reply is appended as a bot message. The conversation's current display
// only changes when the result identifies a Pokemon.
func (s *Service) Submit(ctx context.Context, id uuid.UUID, text string) (Exchange, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Exchange{}, ErrEmptyInput
	}

	c, err := s.store.Get(id)
	if err != nil {
		return Exchange{}, err
	}

	userMsg, err := domain.NewUserMessage(trimmed)
	if err != nil {
		return Exchange{}, fmt.Errorf("%w: %v", ErrEmptyInput, err)
	}

	if err := c.begin(userMsg); err != nil {
		s.logger.DebugContext(ctx, "rejected overlapping submission", slog.String("session_id", id.String()))
		return Exchange{}, err
	}

	finished := false
	defer func() {
		if !finished {
			c.abort()
		}
	}()

	result := s.callIdentifier(ctx, id, trimmed)

	botMsg, err := domain.NewBotMessage(result)
	if err != nil {
		// An identifier that breaks its contract is treated as a fault.
		s.logger.ErrorContext(ctx, "identifier returned an invalid result",
			slog.String("session_id", id.String()),
			slog.String("error", err.Error()))
		result = identification.Failure()
		botMsg, err = domain.NewBotMessage(result)
		if err != nil {
			return Exchange{}, err
		}
	}
	c.finish(botMsg, result)
	finished = true

	s.logger.InfoContext(ctx, "message processed",
		slog.String("session_id", id.String()),
		slog.Bool("identified", result.Identified),
		slog.Bool("failure", identification.IsFailure(result)))

	return Exchange{
		User:     userMsg,
		Bot:      botMsg,
		Snapshot: c.Snapshot(),
	}, nil
}

// callIdentifier runs the identifier, mapping a panic to the failure record
// so the conversation is never left busy.
func (s *Service) callIdentifier(ctx context.Context, id uuid.UUID, text string) (result domain.IdentificationResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "recovered from panic in identifier",
				slog.String("session_id", id.String()),
				slog.String("panic", redact.String(fmt.Sprint(r))))
			result = identification.Failure()
		}
	}()
	return s.identifier.Identify(ctx, text)
}
