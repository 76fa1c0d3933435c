package commands

import (
	"context"

	"github.com/aidanlsb/clientbook/internal/book"
)

// Feedback for commands that take no arguments.
const (
	MessageListSuccess  = "Listed all clients"
	MessageClearSuccess = "Client book has been cleared!"
	MessageShowingHelp  = "Opened help window."
	MessageExiting      = "Exiting client book as requested ..."
)

// ListCommand shows every client.
type ListCommand struct{}

// Word implements Command.
func (ListCommand) Word() string { return "list" }

// Execute implements Command.
func (ListCommand) Execute(_ context.Context, b *book.Book) (Result, error) {
	b.ResetFilter()
	return Result{Feedback: MessageListSuccess}, nil
}

// ClearCommand deletes every client.
type ClearCommand struct{}

// Word implements Command.
func (ClearCommand) Word() string { return "clear" }

// Execute implements Command.
func (ClearCommand) Execute(ctx context.Context, b *book.Book) (Result, error) {
	if err := b.Clear(ctx); err != nil {
		return Result{}, err
	}
	b.ResetFilter()
	return Result{Feedback: MessageClearSuccess}, nil
}

// HelpCommand asks the caller to display help.
type HelpCommand struct{}

// Word implements Command.
func (HelpCommand) Word() string { return "help" }

// Execute implements Command.
func (HelpCommand) Execute(context.Context, *book.Book) (Result, error) {
	return Result{Feedback: MessageShowingHelp, ShowHelp: true}, nil
}

// ExitCommand ends the session.
type ExitCommand struct{}

// Word implements Command.
func (ExitCommand) Word() string { return "exit" }

// Execute implements Command.
func (ExitCommand) Execute(context.Context, *book.Book) (Result, error) {
	return Result{Feedback: MessageExiting, Exit: true}, nil
}
