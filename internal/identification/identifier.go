package identification

import (
	"context"

	"github.com/phrazzld/pokedex-api/internal/domain"
)

// FailureMessage is the fixed reply used whenever the identification call
// itself malfunctions.
const FailureMessage = "BZZT! Communication error. Unable to access Pokedex database."

// Identifier translates free text into a description of a Pokemon.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Identifier interface {
	// Identify interprets text, which the caller has already trimmed and
	// checked for emptiness. It always returns a result with a non-empty
	// Message: a text naming no Pokemon yields Identified=false with the
	// service's reply, and any malfunction yields Failure().
	//
	// Implementations must be safe for concurrent use and make exactly one
	// outbound request per call.
	Identify(ctx context.Context, text string) domain.IdentificationResult
}

// IdentifierFunc adapts an ordinary function to the Identifier interface.
type IdentifierFunc func(ctx context.Context, text string) domain.IdentificationResult

// Identify calls f(ctx, text).
func (f IdentifierFunc) Identify(ctx context.Context, text string) domain.IdentificationResult {
	return f(ctx, text)
}

// Failure returns the normalized record for an adapter fault.
func Failure() domain.IdentificationResult {
	return domain.IdentificationResult{
		Identified: false,
		Message:    FailureMessage,
	}
}

// IsFailure reports whether r is the normalized fault record.
func IsFailure(r domain.IdentificationResult) bool {
	return !r.Identified && r.Message == FailureMessage
}
