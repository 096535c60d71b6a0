package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	colorAccent = "#7D56F4"
	colorOK     = "#04B575"
	colorDanger = "#FF0000"
	colorMuted  = "#626262"
)

// Styles for the TUI application, named by the element they draw
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent)).
			MarginTop(1)

	// NoticeStyle draws the message banner and active nav links
	NoticeStyle = lipgloss.NewStyle().
			Bold(true).
			Reverse(true).
			Foreground(lipgloss.Color(colorAccent)).
			Padding(0, 1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorOK))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDanger))

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))

	ArticleTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(colorOK))

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorMuted)).
			Padding(0, 1)

	// SelectedCardStyle marks the list cursor and the focused form
	SelectedCardStyle = CardStyle.
				BorderForeground(lipgloss.Color(colorAccent))

	// DimStyle renders the wrapper while a request is in flight
	DimStyle = lipgloss.NewStyle().Faint(true)
)
