package render

import "github.com/charmbracelet/lipgloss"

// Pokedex palette
var (
	PokedexRed   = lipgloss.Color("#DC0A2D")
	ScreenGreen  = lipgloss.Color("#9BBC0F")
	ScreenDark   = lipgloss.Color("#0F380F")
	LabelGray    = lipgloss.Color("#8B8B8B")
	WarningAmber = lipgloss.Color("#FFC107")
)

// Styles groups the lipgloss styles used by a Renderer.
type Styles struct {
	Panel       lipgloss.Style
	Title       lipgloss.Style
	Number      lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Placeholder lipgloss.Style
	UserPrefix  lipgloss.Style
	BotPrefix   lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyles returns the retro handheld look.
func DefaultStyles() Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PokedexRed).
			Padding(0, 1).
			Width(PanelWidth),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(ScreenGreen),
		Number:      lipgloss.NewStyle().Foreground(LabelGray),
		Label:       lipgloss.NewStyle().Foreground(LabelGray).Width(12),
		Value:       lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(LabelGray),
		UserPrefix:  lipgloss.NewStyle().Bold(true).Foreground(ScreenGreen),
		BotPrefix:   lipgloss.NewStyle().Bold(true).Foreground(PokedexRed),
		Error:       lipgloss.NewStyle().Foreground(WarningAmber),
	}
}
