package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role identifies who authored a chat message.
type Role string

// Possible chat roles.
const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// AppState is the coarse state of a conversation as seen by a front-end.
type AppState string

// Possible application states.
const (
	AppStateIdle    AppState = "IDLE"
	AppStateLoading AppState = "LOADING"
	AppStateError   AppState = "ERROR"
)

// ChatMessage is one entry of a conversation transcript.
// Bot messages carry the result that produced them.
type ChatMessage struct {
	Role      Role                  `json:"role"`
	Text      string                `json:"text"`
	Data      *IdentificationResult `json:"data,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// NewUserMessage creates a transcript entry for text typed by the user.
func NewUserMessage(text string) (ChatMessage, error) {
	msg := ChatMessage{
		Role:      RoleUser,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := msg.Validate(); err != nil {
		return ChatMessage{}, err
	}
	return msg, nil
}

// NewBotMessage creates a transcript entry for an identification result.
// The message text is the result's conversational reply.
func NewBotMessage(result IdentificationResult) (ChatMessage, error) {
	data := result.Clone()
	msg := ChatMessage{
		Role:      RoleBot,
		Text:      result.Message,
		Data:      &data,
		CreatedAt: time.Now().UTC(),
	}
	if err := msg.Validate(); err != nil {
		return ChatMessage{}, err
	}
	return msg, nil
}

// Validate checks if the ChatMessage has valid data.
func (m ChatMessage) Validate() error {
	if m.Role != RoleUser && m.Role != RoleBot {
		return fmt.Errorf("%w: %q", ErrInvalidRole, m.Role)
	}
	if strings.TrimSpace(m.Text) == "" {
		return ErrEmptyMessage
	}
	return nil
}
