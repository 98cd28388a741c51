package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the chrome drawn around the text area.
type Style struct {
	StatusBar  lipgloss.Style
	MessageBar lipgloss.Style
	Cursor     lipgloss.Style
	Filler     lipgloss.Style
}

// DefaultStyle returns the chrome styles for cfg.
func DefaultStyle(cfg Config) Style {
	return Style{
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.StatusFg)).
			Background(lipgloss.Color(cfg.StatusBg)),
		MessageBar: lipgloss.NewStyle(),
		Cursor:     lipgloss.NewStyle().Reverse(true),
		Filler:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
