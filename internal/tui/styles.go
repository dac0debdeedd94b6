package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent  = lipgloss.Color("#FFD700") // Gold — attention
	colorSuccess = lipgloss.Color("#00E676") // Green — load succeeded
	colorDanger  = lipgloss.Color("#FF5252") // Red — errors
	colorMuted   = lipgloss.Color("#636363") // Gray — de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white — primary text
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleMenuChoice = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleMenuChoiceSelected = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleMenuDigit = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleStatusOK = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleStatusErr = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleResultsHeader = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Underline(true)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted)

	stylePrompt = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)
