package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Primary   = lipgloss.Color("#4A90E2") // matches the default activity color
	Secondary = lipgloss.Color("#6C757D")
	Text      = lipgloss.Color("#FFFFFF")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
	Grid      = lipgloss.Color("#444444")
	NowMark   = lipgloss.Color("#FF6B6B")
	Highlight = lipgloss.Color("#4ECDC4")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	DayTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text)

	StripStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	GridStyle = lipgloss.NewStyle().
			Foreground(Grid)

	ScaleStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	NowStyle = lipgloss.NewStyle().
			Foreground(NowMark).
			Bold(true)

	LegendStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(lipgloss.Color("#16213e")).
			Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 2)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Width(10)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)
)
