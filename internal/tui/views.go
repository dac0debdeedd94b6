package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// View renders the current screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Welcome to ABC University"))
	b.WriteByte('\n')
	b.WriteString(styleSubtitle.Render("course catalog"))
	b.WriteString("\n\n")

	switch m.screen {
	case ScreenMenu:
		b.WriteString(m.viewChoices("Please select a menu option:", mainChoices, m.cursor))
	case ScreenSearchMenu:
		b.WriteString(m.viewChoices("Search Categories:", searchChoices, m.cursor))
	case ScreenFilePrompt:
		b.WriteString(stylePrompt.Render("Enter the name of the course data file:"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	case ScreenSearchPrompt:
		b.WriteString(stylePrompt.Render("Enter search text:"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	case ScreenResults:
		b.WriteString(styleResultsHeader.Render(m.resultsFor))
		b.WriteByte('\n')
		b.WriteString(m.results.View())
		b.WriteByte('\n')
	}

	if m.status != "" {
		b.WriteByte('\n')
		if m.statusErr {
			b.WriteString(styleStatusErr.Render(m.status))
		} else {
			b.WriteString(styleStatusOK.Render(m.status))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(styleFooter.Render(m.footerHint()))
	b.WriteByte('\n')
	return b.String()
}

// viewChoices renders a numbered menu with the cursor row highlighted.
func (m Model) viewChoices(heading string, choices []menuChoice, cursor int) string {
	var b strings.Builder
	b.WriteString(styleMenuChoice.Render(heading))
	b.WriteString("\n\n")
	for i, c := range choices {
		line := styleMenuDigit.Render(c.digit+")") + " "
		if i == cursor {
			b.WriteString(styleMenuChoiceSelected.Render(selectionIndicator))
			b.WriteString(line)
			b.WriteString(styleMenuChoiceSelected.Render(c.label))
		} else {
			b.WriteString(" ")
			b.WriteString(line)
			b.WriteString(styleMenuChoice.Render(c.label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) footerHint() string {
	switch m.screen {
	case ScreenMenu:
		return "↑/↓ move · enter select · digit jump · q quit"
	case ScreenSearchMenu:
		return "↑/↓ move · enter select · digit jump · esc back"
	case ScreenFilePrompt, ScreenSearchPrompt:
		return "enter submit · esc cancel"
	case ScreenResults:
		return "↑/↓ scroll · esc back · q quit"
	}
	return ""
}

// Run starts the menu program and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
