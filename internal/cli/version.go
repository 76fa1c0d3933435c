package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/clientbook/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show cbook version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildinfo.Current()

		if jsonOutput {
			outputSuccess(info, nil)
			return nil
		}

		for _, line := range info.Lines() {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
