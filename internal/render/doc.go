// Package render draws Pokedex output for terminals using lipgloss.
package render
