package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the TUI.
type Styles struct {
	Title   lipgloss.Style
	Input   lipgloss.Style
	Result  lipgloss.Style
	Domain  lipgloss.Style
	Score   lipgloss.Style
	Status  lipgloss.Style
	ErrText lipgloss.Style
}

// DefaultStyles returns the default TUI styles.
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		Result: lipgloss.NewStyle().
			PaddingLeft(2),
		Domain: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Score: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		ErrText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}
