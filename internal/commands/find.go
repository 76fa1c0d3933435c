package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/aidanlsb/clientbook/internal/book"
	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/parser"
)

// MessageClientsListed reports how many clients a find displays.
const MessageClientsListed = "%d clients listed!"

// FindCommand narrows the displayed list to clients matching any keyword.
type FindCommand struct {
	Keywords []string `json:"keywords"`
}

// ParseFind parses the arguments of a find command.
func ParseFind(args string) (FindCommand, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return FindCommand{}, parser.NewFormatError(Usage("find"))
	}
	return FindCommand{Keywords: keywords}, nil
}

// Word implements Command.
func (c FindCommand) Word() string { return "find" }

// Execute implements Command.
func (c FindCommand) Execute(ctx context.Context, b *book.Book) (Result, error) {
	b.SetFilter(model.NameContainsKeywords(c.Keywords))
	visible, err := b.Visible(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageClientsListed, len(visible))}, nil
}
