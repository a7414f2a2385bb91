package domain

import (
	"strconv"
	"strings"
)

// ResourcePlaceholder is replaced by the Pokedex number in resource templates.
const ResourcePlaceholder = "{id}"

// Resources are the static media locations for an identified Pokemon.
type Resources struct {
	SpriteURL string `json:"sprite_url,omitempty"`
	CryURL    string `json:"cry_url,omitempty"`
}

// ResourceTemplates derives Resources from a Pokedex number.
// The URLs are only built, never fetched or checked.
type ResourceTemplates struct {
	Sprite string
	Cry    string
}

// NewResourceTemplates validates that both templates carry the placeholder.
func NewResourceTemplates(sprite, cry string) (ResourceTemplates, error) {
	if !strings.Contains(sprite, ResourcePlaceholder) || !strings.Contains(cry, ResourcePlaceholder) {
		return ResourceTemplates{}, ErrInvalidTemplate
	}
	return ResourceTemplates{Sprite: sprite, Cry: cry}, nil
}

// For returns the resources for a result. It returns ErrNoResourceID when the
// result has no Pokedex number.
func (t ResourceTemplates) For(result IdentificationResult) (Resources, error) {
	if !result.HasID() {
		return Resources{}, ErrNoResourceID
	}
	id := strconv.Itoa(result.ID)
	return Resources{
		SpriteURL: strings.ReplaceAll(t.Sprite, ResourcePlaceholder, id),
		CryURL:    strings.ReplaceAll(t.Cry, ResourcePlaceholder, id),
	}, nil
}
