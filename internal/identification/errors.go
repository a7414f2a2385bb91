package identification

import "errors"

// Diagnostic errors for the identification boundary. Callers of Identify
// never see these; they are logged to explain why Failure() was returned.
var (
	// ErrTransport is returned when the request could not reach the service
	// (network error, timeout, cancelled context, missing credential).
	ErrTransport = errors.New("transport failure calling language model")

	// ErrRemote is returned when the service answered with an error status.
	ErrRemote = errors.New("language model returned an error")

	// ErrEmptyPayload is returned when the response carries no text at all.
	ErrEmptyPayload = errors.New("language model returned no text")

	// ErrBlocked is returned when the service withheld the text for safety reasons.
	ErrBlocked = errors.New("language model blocked the response")

	// ErrMalformedPayload is returned when the text does not match the declared schema.
	ErrMalformedPayload = errors.New("language model response does not match schema")

	// ErrInvalidConfig is returned when the identifier configuration is invalid.
	ErrInvalidConfig = errors.New("invalid identifier configuration")
)
