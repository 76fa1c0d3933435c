package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/aidanlsb/clientbook/internal/book"
	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/parser"
)

// MessageEditSuccess is shown after a client is edited.
const MessageEditSuccess = "Edited Client: %s"

// EditDescriptor holds the fields an edit should change. A nil field is
// left untouched.
type EditDescriptor struct {
	Name    *model.Name    `json:"name,omitempty"`
	Phone   *model.Phone   `json:"phone,omitempty"`
	Email   *model.Email   `json:"email,omitempty"`
	Address *model.Address `json:"address,omitempty"`
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil
}

// Apply returns c with every set field replaced.
func (d EditDescriptor) Apply(c model.Client) model.Client {
	if d.Name != nil {
		c.Name = *d.Name
	}
	if d.Phone != nil {
		c.Phone = *d.Phone
	}
	if d.Email != nil {
		c.Email = *d.Email
	}
	if d.Address != nil {
		c.Address = *d.Address
	}
	return c
}

// Args renders the set fields back into prefixed command text,
// e.g. "n/Amy Bee p/85355255".
func (d EditDescriptor) Args() string {
	var parts []string
	if d.Name != nil {
		parts = append(parts, parser.PrefixName.Marker()+d.Name.String())
	}
	if d.Phone != nil {
		parts = append(parts, parser.PrefixPhone.Marker()+d.Phone.String())
	}
	if d.Email != nil {
		parts = append(parts, parser.PrefixEmail.Marker()+d.Email.String())
	}
	if d.Address != nil {
		parts = append(parts, parser.PrefixAddress.Marker()+d.Address.String())
	}
	return strings.Join(parts, " ")
}

// editField binds a prefix to the descriptor slot its value fills.
type editField struct {
	prefix parser.Prefix
	set    func(d *EditDescriptor, raw string) error
}

// editFields is evaluated in order; the first invalid value aborts parsing.
var editFields = []editField{
	{parser.PrefixName, func(d *EditDescriptor, raw string) error {
		v, err := model.NewName(raw)
		if err != nil {
			return err
		}
		d.Name = &v
		return nil
	}},
	{parser.PrefixPhone, func(d *EditDescriptor, raw string) error {
		v, err := model.NewPhone(raw)
		if err != nil {
			return err
		}
		d.Phone = &v
		return nil
	}},
	{parser.PrefixEmail, func(d *EditDescriptor, raw string) error {
		v, err := model.NewEmail(raw)
		if err != nil {
			return err
		}
		d.Email = &v
		return nil
	}},
	{parser.PrefixAddress, func(d *EditDescriptor, raw string) error {
		v, err := model.NewAddress(raw)
		if err != nil {
			return err
		}
		d.Address = &v
		return nil
	}},
}

// EditCommand edits the client at Index in the displayed list.
type EditCommand struct {
	Index      model.Index    `json:"index"`
	Descriptor EditDescriptor `json:"descriptor"`
}

// ParseEdit parses the arguments of an edit command.
//
// Errors are reported in a fixed order: a bad index first, then the first
// invalid field in name, phone, email, address order, then ErrNotEdited.
func ParseEdit(args string) (EditCommand, error) {
	argMap := parser.Tokenize(args, parser.PrefixName, parser.PrefixPhone, parser.PrefixEmail, parser.PrefixAddress)

	index, err := model.ParseIndex(argMap.Preamble())
	if err != nil {
		return EditCommand{}, parser.NewFormatError(Usage("edit"))
	}

	var descriptor EditDescriptor
	for _, f := range editFields {
		raw, ok := argMap.Value(f.prefix)
		if !ok {
			continue
		}
		if err := f.set(&descriptor, raw); err != nil {
			return EditCommand{}, err
		}
	}

	if !descriptor.IsAnyFieldEdited() {
		return EditCommand{}, ErrNotEdited
	}

	return EditCommand{Index: index, Descriptor: descriptor}, nil
}

// Word implements Command.
func (c EditCommand) Word() string { return "edit" }

// Execute implements Command.
func (c EditCommand) Execute(ctx context.Context, b *book.Book) (Result, error) {
	visible, err := b.Visible(ctx)
	if err != nil {
		return Result{}, err
	}
	if c.Index.ZeroBased() >= len(visible) {
		return Result{}, ErrInvalidIndex
	}

	target := visible[c.Index.ZeroBased()]
	edited := c.Descriptor.Apply(target)

	if !target.IsSameClient(edited) {
		exists, err := b.HasClient(ctx, edited, target.ID)
		if err != nil {
			return Result{}, err
		}
		if exists {
			return Result{}, ErrDuplicateClient
		}
	}

	if err := b.Replace(ctx, target, edited); err != nil {
		return Result{}, err
	}
	b.ResetFilter()

	return Result{Feedback: fmt.Sprintf(MessageEditSuccess, edited)}, nil
}
