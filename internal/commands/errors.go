package commands

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEdited reports an edit command that names no field to change.
	ErrNotEdited = errors.New("At least one field to edit must be provided.")

	// ErrInvalidIndex reports an index beyond the displayed list.
	ErrInvalidIndex = errors.New("The client index provided is invalid")

	// ErrDuplicateClient reports an add or edit that would store two clients
	// with the same name.
	ErrDuplicateClient = errors.New("This client already exists in the client book")
)

// MessageUnknownCommand is shown for an unrecognised keyword.
const MessageUnknownCommand = "Unknown command"

// UnknownCommandError reports a command keyword that is not registered.
type UnknownCommandError struct {
	Word string
	// Closest is the most similar known keyword, or empty.
	Closest string
}

func (e *UnknownCommandError) Error() string {
	return MessageUnknownCommand
}

// Suggestion points at the closest keyword or at help.
func (e *UnknownCommandError) Suggestion() string {
	if e.Closest != "" {
		return fmt.Sprintf("Did you mean '%s'? Type 'help' to see all commands", e.Closest)
	}
	return "Type 'help' to see all commands"
}
