package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aidanlsb/clientbook/internal/ui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	feedbackStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	errorBorderColor = lipgloss.Color("196")

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// View renders the current state.
func (m Model) View() string {
	if m.Quitting {
		if m.Feedback != "" {
			return m.Feedback + "\n"
		}
		return ""
	}

	width := m.WindowSize.Width
	if width <= 0 {
		width = ui.DefaultTermWidth
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Client Book"))
	b.WriteString("\n\n")

	if m.ShowHelp {
		b.WriteString(m.Help.View())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("↑/↓ scroll • esc close help"))
		return b.String()
	}

	b.WriteString(m.Input.View())
	b.WriteString("\n")

	box := feedbackStyle.Width(width - 2)
	if m.FeedbackIsErr {
		box = box.BorderForeground(errorBorderColor)
	}
	b.WriteString(box.Render(m.Feedback))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(ui.Error(fmt.Sprintf("Could not load clients: %v", m.Err)))
	case len(m.Clients) == 0:
		b.WriteString(dimStyle.Render("  No clients to show."))
	default:
		b.WriteString(ui.ClientTable(ui.NewDisplayContextWithWidth(width), m.Clients))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s • enter run • ctrl+c quit", ui.Count(len(m.Clients), "client", "clients"))))
	return b.String()
}
