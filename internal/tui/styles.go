package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	step     lipgloss.Style
	alert    lipgloss.Style
	entry    lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	label    lipgloss.Style
	focused  lipgloss.Style
	preview  lipgloss.Style
	empty    lipgloss.Style
	action   lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	footnote lipgloss.Style
	section  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		step:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		alert:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		focused:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		preview:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		empty:    lipgloss.NewStyle().Faint(true),
		action:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		positive: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		negative: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		footnote: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		section:  lipgloss.NewStyle().MarginTop(1),
	}
}
