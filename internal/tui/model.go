// Package tui is the interactive terminal front end: a command box, the
// feedback from the last command, and the displayed client list.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aidanlsb/clientbook/internal/book"
	"github.com/aidanlsb/clientbook/internal/model"
)

// Model holds the TUI state.
type Model struct {
	ctx  context.Context
	book *book.Book

	// Data
	Clients []model.Numbered
	Err     error // failure loading the list, not a command error

	// Feedback from the last command
	Feedback      string
	FeedbackIsErr bool

	// UI State
	WindowSize tea.WindowSizeMsg
	ShowHelp   bool
	Quitting   bool
	Running    bool // a command line is executing; enter is ignored

	// Components
	Input textinput.Model
	Help  viewport.Model
}

// New returns the initial state for a session over b.
func New(ctx context.Context, b *book.Book) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter command here..."
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	return Model{
		ctx:   ctx,
		book:  b,
		Input: ti,
		Help:  viewport.New(0, 0),
	}
}

// Run starts the TUI and blocks until the user exits.
func Run(ctx context.Context, b *book.Book) error {
	p := tea.NewProgram(New(ctx, b), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
