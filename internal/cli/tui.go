package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/clientbook/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive client book",
	Long: `Opens a full-screen session with a command box, the feedback from the
last command, and the displayed client list. Type 'exit' or press ctrl+c to
leave.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if jsonOutput {
		return handleError(ErrInvalidInput, errors.New("the tui does not support --json"), "Use 'cbook shell --json' instead")
	}

	b, closeBook, err := openBook()
	if err != nil {
		return handleClassifiedError(err, ErrDatabaseError)
	}
	defer closeBook()

	return tui.Run(cmd.Context(), b)
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
