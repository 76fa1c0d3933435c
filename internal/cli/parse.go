package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/clientbook/internal/commands"
	"github.com/aidanlsb/clientbook/internal/ui"
)

// parseData is the JSON payload of the parse command.
type parseData struct {
	Command string           `json:"command"`
	Parsed  commands.Command `json:"parsed"`
}

var parseCmd = &cobra.Command{
	Use:   "parse <line>",
	Short: "Parse a command line without running it",
	Long: `Parses and validates a command line and prints the resulting command.
The client store is never opened.

Examples:
  cbook parse "edit 1 p/91234567 e/johndoe@example.com"
  cbook parse "edit 1" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	line := strings.Join(args, " ")
	parsed, err := commands.Parse(line)
	if err != nil {
		return handleClassifiedError(err, ErrInvalidInput)
	}

	data := parseData{Command: parsed.Word(), Parsed: parsed}
	if jsonOutput {
		outputSuccess(data, nil)
		return nil
	}

	fmt.Println(ui.Successf("Parsed '%s' command", parsed.Word()))
	body, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(body))
	return nil
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
