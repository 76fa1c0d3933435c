package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/aidanlsb/clientbook/internal/book"
	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/parser"
)

// MessageDeleteSuccess is shown after a client is deleted.
const MessageDeleteSuccess = "Deleted Client: %s"

// DeleteCommand deletes the client at Index in the displayed list.
type DeleteCommand struct {
	Index model.Index `json:"index"`
}

// ParseDelete parses the arguments of a delete command.
func ParseDelete(args string) (DeleteCommand, error) {
	index, err := model.ParseIndex(strings.TrimSpace(args))
	if err != nil {
		return DeleteCommand{}, parser.NewFormatError(Usage("delete"))
	}
	return DeleteCommand{Index: index}, nil
}

// Word implements Command.
func (c DeleteCommand) Word() string { return "delete" }

// Execute implements Command.
func (c DeleteCommand) Execute(ctx context.Context, b *book.Book) (Result, error) {
	visible, err := b.Visible(ctx)
	if err != nil {
		return Result{}, err
	}
	if c.Index.ZeroBased() >= len(visible) {
		return Result{}, ErrInvalidIndex
	}

	target := visible[c.Index.ZeroBased()]
	if err := b.Remove(ctx, target); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageDeleteSuccess, target)}, nil
}
