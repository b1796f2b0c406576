package tui

import "github.com/charmbracelet/lipgloss"

// styles is the dashboard chrome derived from a skin.
type styles struct {
	title       lipgloss.Style
	subtitle    lipgloss.Style
	banner      lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	panel       lipgloss.Style
	section     lipgloss.Style
	insight     lipgloss.Style
	badge       lipgloss.Style
	muted       lipgloss.Style
	status      lipgloss.Style
	modalBorder lipgloss.Color
	modalTitle  lipgloss.Style
	statusBg    lipgloss.Color
}

func newStyles(s Skin) styles {
	c := s.Colors
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Title)),
		subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(c.Accent)).
			PaddingLeft(1),
		tabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.StatusFg)).
			Background(lipgloss.Color(c.TabActive)).
			Padding(0, 1),
		tabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Padding(0, 1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(0, 1),
		section:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Title)),
		insight:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)),
		badge:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)).Background(lipgloss.Color(c.Border)).Padding(0, 1),
		muted:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		status:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.StatusFg)).Background(lipgloss.Color(c.StatusBg)),
		modalBorder: lipgloss.Color(c.Accent),
		modalTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Title)),
		statusBg:    lipgloss.Color(c.StatusBg),
	}
}
