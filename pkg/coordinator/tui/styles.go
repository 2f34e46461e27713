package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title       lipgloss.Style
	Hint        lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Sheet       lipgloss.Style
}

func newStyles(o Options) styles {
	accent := lipgloss.Color(o.AccentColor)
	muted := lipgloss.Color(o.MutedColor)

	return styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Hint:        lipgloss.NewStyle().Foreground(muted),
		TabActive:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accent).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(o.BorderColor)).
			Padding(0, 1),
	}
}
