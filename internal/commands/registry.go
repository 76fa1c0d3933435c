// Package commands parses client book command lines into commands and
// executes them against a book.
package commands

import (
	"sort"
	"strings"

	"github.com/aidanlsb/clientbook/internal/parser"
)

// Meta defines metadata for one client book command. The registry is the
// single source of truth for usage text, help output, and CLI generation.
type Meta struct {
	Word        string          // Command keyword (e.g., "edit")
	Description string          // What the command does
	Parameters  string          // Parameter synopsis, empty for none
	Example     string          // Full example line
	Prefixes    []parser.Prefix // Prefixes the command understands
	MutatesBook bool            // Whether executing may change stored clients
}

// Usage returns the usage text shown with format errors.
func (m Meta) Usage() string {
	var sb strings.Builder
	sb.WriteString(m.Word)
	sb.WriteString(": ")
	sb.WriteString(m.Description)
	if m.Parameters != "" {
		sb.WriteString("\nParameters: ")
		sb.WriteString(m.Parameters)
	}
	if m.Example != "" {
		sb.WriteString("\nExample: ")
		sb.WriteString(m.Example)
	}
	return sb.String()
}

var clientPrefixes = []parser.Prefix{parser.PrefixName, parser.PrefixPhone, parser.PrefixEmail, parser.PrefixAddress}

// Registry holds all client book commands, keyed by keyword.
var Registry = map[string]Meta{
	"add": {
		Word:        "add",
		Description: "Adds a client to the client book.",
		Parameters:  "n/NAME p/PHONE e/EMAIL a/ADDRESS",
		Example:     "add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25",
		Prefixes:    clientPrefixes,
		MutatesBook: true,
	},
	"edit": {
		Word: "edit",
		Description: "Edits the details of the client identified by the index number used in the displayed client list. " +
			"Existing values will be overwritten by the input values.",
		Parameters:  "INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS]",
		Example:     "edit 1 p/91234567 e/johndoe@example.com",
		Prefixes:    clientPrefixes,
		MutatesBook: true,
	},
	"delete": {
		Word:        "delete",
		Description: "Deletes the client identified by the index number used in the displayed client list.",
		Parameters:  "INDEX (must be a positive integer)",
		Example:     "delete 1",
		MutatesBook: true,
	},
	"find": {
		Word: "find",
		Description: "Finds all clients whose names contain any of the specified keywords (case-insensitive) " +
			"and displays them as a list with index numbers.",
		Parameters: "KEYWORD [MORE_KEYWORDS]...",
		Example:    "find alice bob charlie",
	},
	"list": {
		Word:        "list",
		Description: "Lists all clients in the client book.",
		Example:     "list",
	},
	"clear": {
		Word:        "clear",
		Description: "Clears all clients from the client book.",
		Example:     "clear",
		MutatesBook: true,
	},
	"help": {
		Word:        "help",
		Description: "Shows program usage instructions.",
		Example:     "help",
	},
	"exit": {
		Word:        "exit",
		Description: "Exits the program.",
		Example:     "exit",
	},
}

// Words returns every command keyword, sorted.
func Words() []string {
	words := make([]string, 0, len(Registry))
	for w := range Registry {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Usage returns the usage text for a command keyword.
func Usage(word string) string {
	return Registry[word].Usage()
}

// GetCommandMeta returns the metadata for a command keyword.
func GetCommandMeta(word string) (Meta, bool) {
	meta, ok := Registry[word]
	return meta, ok
}
