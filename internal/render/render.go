package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/identification"
)

// PanelWidth is the width of the Pokedex panel in cells, borders excluded.
const PanelWidth = 56

// WaitingText is shown in the panel before anything has been identified.
const WaitingText = "Waiting for scan..."

// Renderer formats results and transcripts.
type Renderer struct {
	styles Styles
}

// New creates a Renderer with the default styles.
func New() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

// NewWithStyles creates a Renderer with custom styles.
func NewWithStyles(s Styles) *Renderer {
	return &Renderer{styles: s}
}

// Panel draws the Pokedex display for result. A nil or unidentified result
// draws the waiting placeholder. Empty fields are left out.
func (r *Renderer) Panel(result *domain.IdentificationResult, res domain.Resources) string {
	if result == nil || !result.Identified {
		return r.styles.Panel.Render(r.styles.Placeholder.Render(WaitingText))
	}

	var lines []string

	header := r.styles.Title.Render(displayName(*result))
	if num := result.DisplayNumber(); num != "" {
		header = r.styles.Number.Render(num) + " " + header
	}
	lines = append(lines, header, "")

	lines = r.appendField(lines, "Type", result.PrimaryType)
	lines = r.appendField(lines, "Abilities", strings.Join(result.Abilities, ", "))
	lines = r.appendField(lines, "Evolution", result.Evolution)

	if result.Description != "" {
		lines = append(lines, "", r.styles.Value.Render(result.Description))
	}

	if res.SpriteURL != "" || res.CryURL != "" {
		lines = append(lines, "")
		lines = r.appendField(lines, "Sprite", res.SpriteURL)
		lines = r.appendField(lines, "Cry", res.CryURL)
	}

	return r.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) appendField(lines []string, label, value string) []string {
	if value == "" {
		return lines
	}
	return append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
		r.styles.Label.Render(label),
		r.styles.Value.Render(value)))
}

// Message draws one transcript line prefixed by its role.
func (r *Renderer) Message(m domain.ChatMessage) string {
	switch m.Role {
	case domain.RoleUser:
		return r.styles.UserPrefix.Render("YOU>") + " " + m.Text
	default:
		text := m.Text
		if m.Data != nil && identification.IsFailure(*m.Data) {
			text = r.styles.Error.Render(text)
		}
		return r.styles.BotPrefix.Render("DEX>") + " " + text
	}
}

// Transcript draws every message on its own line.
func (r *Renderer) Transcript(messages []domain.ChatMessage) string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, r.Message(m))
	}
	return strings.Join(out, "\n")
}

func displayName(result domain.IdentificationResult) string {
	if result.Name == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(result.Name)
}
