// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyMessage is returned when a result or chat message has no text.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrInvalidRole is returned when a chat message role is not user or bot.
	ErrInvalidRole = errors.New("invalid chat role")

	// ErrNoResourceID is returned when resources are requested for a result without an ID.
	ErrNoResourceID = errors.New("result has no pokedex ID")

	// ErrInvalidTemplate is returned when a resource URL template lacks the {id} placeholder.
	ErrInvalidTemplate = errors.New("resource template must contain {id}")
)
