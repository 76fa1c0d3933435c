package parser

import "fmt"

// MessageInvalidCommandFormat wraps a command's usage text.
const MessageInvalidCommandFormat = "Invalid command format! \n%s"

// FormatError reports a command line whose overall shape is wrong, such as
// a missing or non-numeric index. It carries the command's usage text.
type FormatError struct {
	Usage string
}

// NewFormatError creates a FormatError for the given usage text.
func NewFormatError(usage string) *FormatError {
	return &FormatError{Usage: usage}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf(MessageInvalidCommandFormat, e.Usage)
}

// Suggestion returns the usage text on its own.
func (e *FormatError) Suggestion() string {
	return e.Usage
}
