package api

import (
	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/session"
)

// IdentifyRequest defines the payload for the stateless identify endpoint.
type IdentifyRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

// MessageRequest defines the payload for posting a message to a session.
type MessageRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

// IdentifyResponse is an identification result plus the sprite and cry
// locations derived from its Pokedex number. The URLs are omitted when the
// result carries no number.
type IdentifyResponse struct {
	domain.IdentificationResult
	domain.Resources
}

// ExchangeResponse is the reply to a posted message.
type ExchangeResponse struct {
	User      domain.ChatMessage `json:"user"`
	Bot       domain.ChatMessage `json:"bot"`
	Resources *domain.Resources  `json:"resources,omitempty"`
	Session   session.Snapshot   `json:"session"`
}
