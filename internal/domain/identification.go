package domain

import (
	"fmt"
	"slices"
	"strings"
)

// IdentificationResult is the normalized description of a Pokemon (or the
// lack of one) produced for a piece of user text.
//
// Only Identified and Message are always meaningful. The optional fields are
// passed through exactly as the language model reported them; a zero value
// means the field was absent.
type IdentificationResult struct {
	// Identified is true only when the text named a recognizable Pokemon.
	Identified bool `json:"identified"`

	// Name is the official name of the Pokemon.
	Name string `json:"name,omitempty"`

	// ID is the National Pokedex number, used to derive sprite and cry URLs.
	ID int `json:"id,omitempty"`

	// PrimaryType is the primary elemental type (Fire, Water, ...).
	PrimaryType string `json:"primaryType,omitempty"`

	// Abilities keeps the order the model reported them in.
	Abilities []string `json:"abilities,omitempty"`

	// Evolution is a short free-text description of the evolution chain.
	Evolution string `json:"evolution,omitempty"`

	// Description is a short Pokedex-entry style blurb.
	Description string `json:"description,omitempty"`

	// Message is the conversational reply shown in the transcript.
	Message string `json:"message"`
}

// HasID reports whether the result carries a usable Pokedex number.
func (r IdentificationResult) HasID() bool {
	return r.ID > 0
}

// DisplayNumber formats the Pokedex number the way the device screen shows
// it, e.g. "NO.025". It returns an empty string when there is no ID.
func (r IdentificationResult) DisplayNumber() string {
	if !r.HasID() {
		return ""
	}
	return fmt.Sprintf("NO.%03d", r.ID)
}

// Validate checks the invariant every returned result must hold.
func (r IdentificationResult) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyMessage)
	}
	return nil
}

// Clone returns a deep copy so callers can hand results across goroutines
// without sharing the abilities slice.
func (r IdentificationResult) Clone() IdentificationResult {
	r.Abilities = slices.Clone(r.Abilities)
	return r
}
