package commands

import (
	"context"

	"github.com/aidanlsb/clientbook/internal/book"
)

// Result is the outcome of executing a command.
type Result struct {
	// Feedback is the message shown to the user.
	Feedback string `json:"feedback"`

	// ShowHelp asks the caller to display help.
	ShowHelp bool `json:"show_help,omitempty"`

	// Exit asks the caller to end the session.
	Exit bool `json:"exit,omitempty"`
}

// Command is a fully parsed and validated command line.
type Command interface {
	// Word returns the keyword that produced the command.
	Word() string

	// Execute applies the command to b.
	Execute(ctx context.Context, b *book.Book) (Result, error)
}
