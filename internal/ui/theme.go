package ui

import "github.com/charmbracelet/lipgloss"

// Palette colors, Dracula-ish.
const (
	colorText    = "#F8F8F2"
	colorMuted   = "#6272A4"
	colorAccent  = "#BD93F9"
	colorSuccess = "#50FA7B"
	colorWarning = "#F1FA8C"
	colorDanger  = "#FF5555"
	colorBorder  = "#44475A"
)

// Styles holds the lipgloss styles used by the view.
type Styles struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Healthy   lipgloss.Style
	Unhealthy lipgloss.Style
	Pending   lipgloss.Style
	Card      lipgloss.Style
	ErrorCard lipgloss.Style
	Key       lipgloss.Style
	KeyOff    lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorMuted)).
			Width(13),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)),
		Healthy: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess)),
		Unhealthy: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDanger)),
		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWarning)),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(0, 1),
		ErrorCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorDanger)).
			Foreground(lipgloss.Color(colorDanger)).
			Padding(0, 1),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)),
		KeyOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorBorder)),
	}
}
