package commands

import (
	"context"
	"fmt"

	"github.com/aidanlsb/clientbook/internal/book"
	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/parser"
)

// MessageAddSuccess is shown after a client is added.
const MessageAddSuccess = "New client added: %s"

// AddCommand adds a new client.
type AddCommand struct {
	Client model.Client `json:"client"`
}

// ParseAdd parses the arguments of an add command. Every field is required
// and no preamble is allowed.
func ParseAdd(args string) (AddCommand, error) {
	argMap := parser.Tokenize(args, parser.PrefixName, parser.PrefixPhone, parser.PrefixEmail, parser.PrefixAddress)

	if !argMap.ArePresent(parser.PrefixName, parser.PrefixPhone, parser.PrefixEmail, parser.PrefixAddress) ||
		argMap.Preamble() != "" {
		return AddCommand{}, parser.NewFormatError(Usage("add"))
	}

	rawName, _ := argMap.Value(parser.PrefixName)
	name, err := model.NewName(rawName)
	if err != nil {
		return AddCommand{}, err
	}
	rawPhone, _ := argMap.Value(parser.PrefixPhone)
	phone, err := model.NewPhone(rawPhone)
	if err != nil {
		return AddCommand{}, err
	}
	rawEmail, _ := argMap.Value(parser.PrefixEmail)
	email, err := model.NewEmail(rawEmail)
	if err != nil {
		return AddCommand{}, err
	}
	rawAddress, _ := argMap.Value(parser.PrefixAddress)
	address, err := model.NewAddress(rawAddress)
	if err != nil {
		return AddCommand{}, err
	}

	return AddCommand{Client: model.NewClient(name, phone, email, address)}, nil
}

// Word implements Command.
func (c AddCommand) Word() string { return "add" }

// Execute implements Command.
func (c AddCommand) Execute(ctx context.Context, b *book.Book) (Result, error) {
	exists, err := b.HasClient(ctx, c.Client, 0)
	if err != nil {
		return Result{}, err
	}
	if exists {
		return Result{}, ErrDuplicateClient
	}

	stored, err := b.Add(ctx, c.Client)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageAddSuccess, stored)}, nil
}
