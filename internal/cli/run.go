package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <line>",
	Short: "Run one client book command line",
	Long: `Runs a single command line exactly as it would be typed in a session.

Quote the line to keep its spacing and to pass indexes that look like flags:

Examples:
  cbook run "add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2"
  cbook run "delete -5"
  cbook run "find alice bob"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLine(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
