package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/clientbook/internal/book"
	"github.com/aidanlsb/clientbook/internal/commands"
	"github.com/aidanlsb/clientbook/internal/lastview"
	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/ui"
)

// sessionOnlyWords are registry commands that only make sense inside a
// session. Cobra provides its own help command.
var sessionOnlyWords = map[string]bool{
	"help": true,
	"exit": true,
}

// commandData is the JSON payload for one executed command line.
type commandData struct {
	Command  string           `json:"command"`
	Feedback string           `json:"feedback"`
	ShowHelp bool             `json:"show_help,omitempty"`
	Exit     bool             `json:"exit,omitempty"`
	Clients  []model.Numbered `json:"clients,omitempty"`
}

func init() {
	for _, word := range commands.Words() {
		if sessionOnlyWords[word] {
			continue
		}
		rootCmd.AddCommand(commands.GenerateCobraCommand(word, runLine))
	}
}

// runLine parses line, then opens the store and executes it. A line that
// fails to parse never touches the store. The filter left by a previous
// find is restored first so indexes match what that find displayed.
func runLine(cmd *cobra.Command, line string) error {
	parsed, err := commands.Parse(line)
	if err != nil {
		return handleClassifiedError(err, ErrInvalidInput)
	}

	b, closeBook, err := openBook()
	if err != nil {
		return handleClassifiedError(err, ErrDatabaseError)
	}
	defer closeBook()

	warnings := restoreView(b)

	ctx := cmd.Context()
	result, err := parsed.Execute(ctx, b)
	if err != nil {
		return handleClassifiedError(err, ErrDatabaseError)
	}
	warnings = append(warnings, saveView(parsed)...)

	data, err := resultData(ctx, b, parsed.Word(), result)
	if err != nil {
		return handleClassifiedError(err, ErrDatabaseError)
	}

	if jsonOutput {
		outputSuccess(data, &Meta{Count: len(data.Clients)}, warnings...)
		return nil
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	}
	printResult(os.Stdout, data)
	return nil
}

// restoreView applies the saved find filter to b. An unreadable view is
// reported and ignored.
func restoreView(b *book.Book) []Warning {
	view, err := lastview.Read(getDataPath())
	if err != nil {
		if errors.Is(err, lastview.ErrNoView) {
			return nil
		}
		return []Warning{{Code: WarnViewIgnored, Message: err.Error()}}
	}
	b.SetFilter(view.Predicate())
	return nil
}

// saveView records the filter parsed leaves behind: a find saves its
// keywords and commands that show every client again clear them.
func saveView(parsed commands.Command) []Warning {
	var err error
	switch c := parsed.(type) {
	case commands.FindCommand:
		err = lastview.Write(getDataPath(), lastview.New(c.Keywords))
	case commands.ListCommand, commands.EditCommand, commands.ClearCommand:
		err = lastview.Clear(getDataPath())
	}
	if err != nil {
		return []Warning{{Code: WarnViewNotSaved, Message: err.Error()}}
	}
	return nil
}

// resultData pairs a result with the list the book now displays.
func resultData(ctx context.Context, b *book.Book, word string, result commands.Result) (commandData, error) {
	data := commandData{
		Command:  word,
		Feedback: result.Feedback,
		ShowHelp: result.ShowHelp,
		Exit:     result.Exit,
	}
	if result.ShowHelp || result.Exit {
		return data, nil
	}

	visible, err := b.Visible(ctx)
	if err != nil {
		return data, err
	}
	data.Clients = model.NumberedList(visible)
	return data, nil
}

// printResult writes the feedback line, followed by the help text or the
// client table when the command changed what is displayed.
func printResult(w io.Writer, data commandData) {
	fmt.Fprintln(w, ui.Success(data.Feedback))

	if data.ShowHelp {
		fmt.Fprint(w, helpText())
		return
	}

	switch data.Command {
	case "list", "find":
		if len(data.Clients) == 0 {
			fmt.Fprintln(w, ui.Hint("No clients to show."))
			return
		}
		fmt.Fprintln(w, ui.ClientTable(ui.NewDisplayContext(), data.Clients))
	}
}

// helpText renders the command reference for a terminal, or returns the
// raw markdown when stdout is not one.
func helpText() string {
	md := commands.HelpMarkdown()
	display := ui.NewDisplayContext()
	if !display.IsTTY {
		return md
	}
	rendered, err := ui.RenderMarkdown(md, display.TermWidth)
	if err != nil {
		return md
	}
	return rendered
}
