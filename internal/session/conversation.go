package session

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/identification"
)

// Conversation is a single chat with the Pokedex. It is safe for concurrent use.
type Conversation struct {
	id        uuid.UUID
	createdAt time.Time

	mu       sync.Mutex
	messages []domain.ChatMessage
	current  *domain.IdentificationResult
	busy     bool
	failed   bool
}

// Snapshot is a point-in-time copy of a Conversation.
type Snapshot struct {
	ID        uuid.UUID                    `json:"id"`
	Messages  []domain.ChatMessage         `json:"messages"`
	Current   *domain.IdentificationResult `json:"current,omitempty"`
	State     domain.AppState              `json:"state"`
	CreatedAt time.Time                    `json:"created_at"`
}

// NewConversation creates an empty conversation with a fresh ID.
func NewConversation() *Conversation {
	return &Conversation{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		messages:  []domain.ChatMessage{},
	}
}

// ID returns the conversation identifier.
func (c *Conversation) ID() uuid.UUID {
	return c.id
}

// begin records the user's message and marks the conversation busy.
// It fails with ErrBusy when a scan is already in flight.
func (c *Conversation) begin(msg domain.ChatMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return ErrBusy
	}
	c.busy = true
	c.messages = append(c.messages, msg)
	return nil
}

// finish records the bot's reply and clears the busy flag. The current
// display changes only when the result identifies a Pokemon.
func (c *Conversation) finish(msg domain.ChatMessage, result domain.IdentificationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	if result.Identified {
		current := result.Clone()
		c.current = &current
	}
	c.failed = identification.IsFailure(result)
	c.busy = false
}

// abort clears the busy flag without recording a reply.
func (c *Conversation) abort() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
}

// Snapshot returns a copy of the conversation that shares no memory with it.
func (c *Conversation) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		ID:        c.id,
		Messages:  make([]domain.ChatMessage, len(c.messages)),
		State:     c.stateLocked(),
		CreatedAt: c.createdAt,
	}
	for i, m := range c.messages {
		if m.Data != nil {
			data := m.Data.Clone()
			m.Data = &data
		}
		s.Messages[i] = m
	}
	if c.current != nil {
		current := c.current.Clone()
		s.Current = &current
	}
	return s
}

func (c *Conversation) stateLocked() domain.AppState {
	switch {
	case c.busy:
		return domain.AppStateLoading
	case c.failed:
		return domain.AppStateError
	default:
		return domain.AppStateIdle
	}
}

// LastBotMessage returns the most recent bot message in s, if any.
func (s Snapshot) LastBotMessage() (domain.ChatMessage, bool) {
	for _, m := range slices.Backward(s.Messages) {
		if m.Role == domain.RoleBot {
			return m, true
		}
	}
	return domain.ChatMessage{}, false
}
