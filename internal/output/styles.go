package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: paths, project names.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow marks literal payload files.
	ColorYellow = lipgloss.Color("220")

	// ColorGreen marks executable scripts.
	ColorGreen = lipgloss.Color("82")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorHeader is used for table headers.
	ColorHeader = lipgloss.Color("12")
)

// Styles groups the styles used when rendering trees and tables.
type Styles struct {
	Bold   lipgloss.Style
	Muted  lipgloss.Style
	Noun   lipgloss.Style
	Script lipgloss.Style
	Plain  lipgloss.Style
}

// GetStyles returns the active styles. Styling is disabled when stdout is
// not a terminal so piped output stays free of escape codes.
func GetStyles() Styles {
	if !IsTTY() {
		return plainStyles()
	}
	return Styles{
		Bold:   lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Faint(true),
		Noun:   lipgloss.NewStyle().Foreground(ColorCyan),
		Script: lipgloss.NewStyle().Foreground(ColorGreen),
		Plain:  lipgloss.NewStyle(),
	}
}

func plainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Bold: s, Muted: s, Noun: s, Script: s, Plain: s}
}

// CheckmarkGlyph prefixes confirmation lines.
const CheckmarkGlyph = "✅"

// FormatCheckmark renders the checkmark followed by msg for stdout output.
// The glyph is an emoji and is never styled, so piped and terminal output
// are identical.
func FormatCheckmark(msg string) string {
	return CheckmarkGlyph + " " + msg
}
