package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/clientbook/internal/book"
	"github.com/aidanlsb/clientbook/internal/config"
	"github.com/aidanlsb/clientbook/internal/store"
	"github.com/aidanlsb/clientbook/internal/ui"
)

var (
	// Global flags
	configPath   string
	dataPathFlag string

	// Resolved values
	resolvedConfigPath string
	resolvedDataPath   string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cbook",
	Short: "Client book - keep track of your clients from the terminal",
	Long: `Client book stores client contacts (name, phone, email, address) and is
driven by short command lines such as:

  add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2
  edit 1 p/91234567
  find john

Run without arguments for an interactive session. When stdin is not a
terminal, each line of stdin is run as a command.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config resolution for commands that don't need it
		switch cmd.Name() {
		case "completion", "help", "version", "config":
			return nil
		}
		// Also skip for completion/config subcommands.
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "config") {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			if jsonOutput {
				outputError(ErrorInfo{
					Code:       ErrConfigInvalid,
					Message:    err.Error(),
					Suggestion: "Fix the file or run 'cbook config init' with a new --config path",
				})
			}
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		resolvedDataPath, err = cfg.ResolveDataPath(dataPathFlag, resolvedConfigPath)
		if err != nil {
			if jsonOutput {
				outputError(ErrorInfo{Code: ErrConfigInvalid, Message: err.Error()})
			}
			return err
		}
		return nil
	},
	RunE: runSession,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&dataPathFlag, "data", "", "Path to the client store (overrides data_file in config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
}

// getDataPath returns the resolved store path.
func getDataPath() string {
	return resolvedDataPath
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	loaded, err := config.LoadOptional(path)
	if err != nil {
		return nil, path, err
	}
	return loaded, path, nil
}

// openBook opens the store at the resolved data path. The returned close
// function releases the store lock.
func openBook() (*book.Book, func(), error) {
	s, err := store.Open(getDataPath())
	if err != nil {
		return nil, nil, err
	}
	return book.New(s), func() { _ = s.Close() }, nil
}

// isInteractive reports whether both stdin and stdout are terminals.
var isInteractive = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

// runSession starts the TUI on a terminal and reads commands from stdin
// otherwise.
func runSession(cmd *cobra.Command, args []string) error {
	if isInteractive() && !jsonOutput {
		return runTUI(cmd, args)
	}
	return runShell(cmd, args)
}
