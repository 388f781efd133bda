package tui

import "github.com/charmbracelet/lipgloss"

// Colour palette.
const (
	colorAccent   = lipgloss.Color("39")
	colorSubtle   = lipgloss.Color("241")
	colorSelectFg = lipgloss.Color("229")
	colorSelectBg = lipgloss.Color("57")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	DisabledStyle = lipgloss.NewStyle().
			Faint(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorSelectFg).
			Background(colorSelectBg)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)
