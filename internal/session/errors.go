package session

import "errors"

// Common session errors.
var (
	// ErrEmptyInput is returned when submitted text is blank after trimming.
	ErrEmptyInput = errors.New("input text cannot be empty")

	// ErrBusy is returned when a conversation already has a scan in flight.
	ErrBusy = errors.New("conversation is busy")

	// ErrSessionNotFound is returned when no conversation has the given ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrStoreFull is returned when the store has reached its size limit.
	ErrStoreFull = errors.New("session store is full")
)
