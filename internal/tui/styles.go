package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/just-nibble/folio-service/internal/domain"
)

type styles struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	item      lipgloss.Style
	selected  lipgloss.Style
	frame     lipgloss.Style
	muted     lipgloss.Style
	tag       lipgloss.Style
	err       lipgloss.Style
}

func newStyles(theme domain.Theme) styles {
	fg, accent, dim := lipgloss.Color("#E6E6E6"), lipgloss.Color("#7AA2F7"), lipgloss.Color("#6B7089")
	if theme == domain.ThemeLight {
		fg, accent, dim = lipgloss.Color("#1F2335"), lipgloss.Color("#2E59D9"), lipgloss.Color("#8A8FA3")
	}

	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		tab:       lipgloss.NewStyle().Foreground(dim).Padding(0, 2),
		activeTab: lipgloss.NewStyle().Foreground(fg).Bold(true).Underline(true).Padding(0, 2),
		item:      lipgloss.NewStyle().Foreground(fg).PaddingLeft(2),
		selected:  lipgloss.NewStyle().Foreground(accent).Bold(true).PaddingLeft(1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(accent),
		frame:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		muted:     lipgloss.NewStyle().Foreground(dim),
		tag:       lipgloss.NewStyle().Foreground(accent),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E")),
	}
}
