package domain

import (
	"errors"
	"testing"
)

const (
	testSprite = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/{id}.png"
	testCry    = "https://raw.githubusercontent.com/PokeAPI/cries/main/cries/pokemon/latest/{id}.ogg"
)

func TestResourceTemplatesFor(t *testing.T) {
	t.Parallel()

	templates, err := NewResourceTemplates(testSprite, testCry)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	res, err := templates.For(IdentificationResult{Identified: true, ID: 25, Message: "ok"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	wantSprite := "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/25.png"
	wantCry := "https://raw.githubusercontent.com/PokeAPI/cries/main/cries/pokemon/latest/25.ogg"
	if res.SpriteURL != wantSprite {
		t.Errorf("SpriteURL = %q, want %q", res.SpriteURL, wantSprite)
	}
	if res.CryURL != wantCry {
		t.Errorf("CryURL = %q, want %q", res.CryURL, wantCry)
	}
}

func TestResourceTemplatesWithoutID(t *testing.T) {
	t.Parallel()

	templates, err := NewResourceTemplates(testSprite, testCry)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// identified=true without an id is passed through; no resources exist for it.
	_, err = templates.For(IdentificationResult{Identified: true, Name: "Pikachu", Message: "ok"})
	if !errors.Is(err, ErrNoResourceID) {
		t.Errorf("Expected ErrNoResourceID, got %v", err)
	}
}

func TestNewResourceTemplatesRejectsMissingPlaceholder(t *testing.T) {
	t.Parallel()

	if _, err := NewResourceTemplates("https://example.com/a.png", testCry); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("Expected ErrInvalidTemplate for sprite, got %v", err)
	}
	if _, err := NewResourceTemplates(testSprite, "https://example.com/a.ogg"); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("Expected ErrInvalidTemplate for cry, got %v", err)
	}
}
