package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aidanlsb/clientbook/internal/commands"
	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/ui"
)

// MsgClients carries a freshly loaded client list.
type MsgClients []model.Numbered

// MsgError reports a failure loading the client list.
type MsgError struct{ Err error }

// MsgResult carries the outcome of one command line.
type MsgResult struct {
	Line   string
	Result commands.Result
	Err    error
}

// Init loads the initial client list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadClients)
}

func (m Model) loadClients() tea.Msg {
	clients, err := m.book.Visible(m.ctx)
	if err != nil {
		return MsgError{Err: err}
	}
	return MsgClients(model.NumberedList(clients))
}

// execute runs line against the book. The list is reloaded by the caller
// once the result arrives so it reflects any filter the command set.
func (m Model) execute(line string) tea.Cmd {
	return func() tea.Msg {
		res, err := commands.Execute(m.ctx, m.book, line)
		return MsgResult{Line: line, Result: res, Err: err}
	}
}

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Input.Width = msg.Width - 4
		m.Help.Width = msg.Width
		m.Help.Height = msg.Height - 4 // minus title and footer
		if m.ShowHelp {
			m.Help.SetContent(renderHelp(msg.Width))
		}
		return m, nil

	case MsgClients:
		m.Clients = msg
		m.Err = nil
		return m, nil

	case MsgError:
		m.Err = msg.Err
		return m, nil

	case MsgResult:
		m.Running = false
		if msg.Err != nil {
			// Keep the line so it can be corrected.
			m.Feedback = msg.Err.Error()
			m.FeedbackIsErr = true
			return m, nil
		}
		m.Feedback = msg.Result.Feedback
		m.FeedbackIsErr = false
		m.Input.SetValue("")
		if msg.Result.Exit {
			m.Quitting = true
			return m, tea.Quit
		}
		if msg.Result.ShowHelp {
			m.openHelp()
		}
		return m, m.loadClients

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

		if m.ShowHelp {
			switch msg.String() {
			case "esc", "q", "enter":
				m.ShowHelp = false
				return m, nil
			}
			m.Help, cmd = m.Help.Update(msg)
			return m, cmd
		}

		if msg.Type == tea.KeyEnter {
			if m.Running {
				return m, nil
			}
			m.Running = true
			return m, m.execute(m.Input.Value())
		}

		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}

	return m, cmd
}

func (m *Model) openHelp() {
	m.ShowHelp = true
	m.Help.SetContent(renderHelp(m.WindowSize.Width))
	m.Help.GotoTop()
}

func renderHelp(width int) string {
	md := commands.HelpMarkdown()
	out, err := ui.RenderMarkdown(md, width)
	if err != nil {
		return md
	}
	return out
}
