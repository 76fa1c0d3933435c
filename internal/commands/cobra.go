package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// RunLine executes one command line on behalf of a generated Cobra command.
type RunLine func(cmd *cobra.Command, line string) error

// GenerateCobraCommand creates a Cobra command from registry metadata so
// that `cbook edit 1 n/Amy` behaves like typing "edit 1 n/Amy" in a session.
func GenerateCobraCommand(word string, run RunLine) *cobra.Command {
	meta, ok := Registry[word]
	if !ok {
		return nil
	}

	use := word
	if meta.Parameters != "" {
		use += " " + meta.Parameters
	}

	longDesc := meta.Description
	if meta.Example != "" {
		longDesc += "\n\nExample:\n  cbook " + meta.Example + "\n"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: meta.Description,
		Long:  longDesc,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line := word
			if len(args) > 0 {
				line += " " + strings.Join(args, " ")
			}
			return run(cmd, line)
		},
	}

	if len(meta.Prefixes) > 0 {
		cmd.ValidArgsFunction = generatePrefixCompletion(meta)
	}

	return cmd
}

// generatePrefixCompletion offers the prefixes not yet used on the line.
func generatePrefixCompletion(meta Meta) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, completedArgs []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		used := make(map[string]bool)
		for _, arg := range completedArgs {
			for _, p := range meta.Prefixes {
				if strings.HasPrefix(arg, p.Marker()) {
					used[p.Marker()] = true
				}
			}
		}

		var matches []string
		for _, p := range meta.Prefixes {
			if used[p.Marker()] {
				continue
			}
			if strings.HasPrefix(p.Marker(), toComplete) {
				matches = append(matches, p.Marker())
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}
}
