package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/pokedex-api/internal/api/shared"
	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/session"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, session.ErrEmptyInput),
		errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, session.ErrBusy):
		return http.StatusConflict

	// Capacity errors
	case errors.Is(err, session.ErrStoreFull):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, session.ErrEmptyInput):
		return "Text cannot be empty"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body cannot be empty"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"

	case errors.Is(err, session.ErrSessionNotFound):
		return "Session not found"

	case errors.Is(err, session.ErrBusy):
		return "Pokedex is still scanning, please wait"

	case errors.Is(err, session.ErrStoreFull):
		return "Too many active sessions, try again later"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'IdentifyRequest.Text' Error:Field validation for 'Text' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
