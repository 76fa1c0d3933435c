package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/clientbook/internal/book"
	"github.com/aidanlsb/clientbook/internal/commands"
	"github.com/aidanlsb/clientbook/internal/ui"
)

// lineResult records the outcome of one line in a shell or script run.
type lineResult struct {
	Line   string       `json:"line"`
	OK     bool         `json:"ok"`
	Result *commandData `json:"result,omitempty"`
	Error  *ErrorInfo   `json:"error,omitempty"`
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Read client book commands from stdin, one per line",
	Long: `Runs each line of standard input as a client book command. A prompt is
shown when stdin is a terminal. Errors are reported and the next line is
read; the exit command or end of input ends the session.

Blank lines and lines starting with '#' are ignored, so a file of commands
can be piped in as a script.

With --json, nothing is printed until input ends; the envelope then lists
the outcome of every line.

Examples:
  cbook shell
  cbook shell --json < commands.txt`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	b, closeBook, err := openBook()
	if err != nil {
		return handleClassifiedError(err, ErrDatabaseError)
	}
	defer closeBook()

	var out io.Writer = os.Stdout
	if jsonOutput {
		out = nil
	}
	prompt := out != nil && isatty.IsTerminal(os.Stdin.Fd())

	results, err := runScript(cmd.Context(), b, cmd.InOrStdin(), out, prompt)
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}

	if jsonOutput {
		outputSuccess(map[string]interface{}{"results": results}, &Meta{Count: len(results)})
	}
	return nil
}

// runScript executes each line of r against b until input ends or a
// command asks to exit. When out is non-nil each outcome is printed to it
// as it happens.
func runScript(ctx context.Context, b *book.Book, r io.Reader, out io.Writer, prompt bool) ([]lineResult, error) {
	scanner := bufio.NewScanner(r)
	results := []lineResult{}

	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		res := execLine(ctx, b, line)
		results = append(results, res)

		if out != nil {
			if res.OK {
				printResult(out, *res.Result)
			} else {
				fmt.Fprintln(out, ui.Error(res.Error.Message))
			}
		}

		if res.OK && res.Result.Exit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return results, fmt.Errorf("failed to read commands: %w", err)
	}
	return results, nil
}

// execLine runs one line and captures its outcome instead of returning an
// error, so that a session continues past failures.
func execLine(ctx context.Context, b *book.Book, line string) lineResult {
	data, err := executeLine(ctx, b, line)
	if err != nil {
		c := classifyError(err, ErrDatabaseError)
		info := &ErrorInfo{Code: c.Code, Message: err.Error(), Suggestion: c.Suggestion}
		if len(c.Details) > 0 {
			info.Details = c.Details
		}
		return lineResult{Line: line, Error: info}
	}
	return lineResult{Line: line, OK: true, Result: &data}
}

func executeLine(ctx context.Context, b *book.Book, line string) (commandData, error) {
	parsed, err := commands.Parse(line)
	if err != nil {
		return commandData{}, err
	}
	result, err := parsed.Execute(ctx, b)
	if err != nil {
		return commandData{}, err
	}
	return resultData(ctx, b, parsed.Word(), result)
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
