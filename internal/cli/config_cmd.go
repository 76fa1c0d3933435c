package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/clientbook/internal/config"
	"github.com/aidanlsb/clientbook/internal/shellquote"
	"github.com/aidanlsb/clientbook/internal/ui"
)

type globalConfigContext struct {
	cfg          *config.Config
	configPath   string
	dataPath     string
	configExists bool
}

// loadGlobalConfigContextAllowMissing loads the config for the config
// subcommands, which run without the root pre-run.
func loadGlobalConfigContextAllowMissing() (*globalConfigContext, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	_, statErr := os.Stat(path)
	if statErr != nil && !os.IsNotExist(statErr) {
		return nil, statErr
	}

	loaded, err := config.LoadOptional(path)
	if err != nil {
		return nil, err
	}
	dataPath, err := loaded.ResolveDataPath(dataPathFlag, path)
	if err != nil {
		return nil, err
	}

	return &globalConfigContext{
		cfg:          loaded,
		configPath:   path,
		dataPath:     dataPath,
		configExists: statErr == nil,
	}, nil
}

func configData(ctx *globalConfigContext) map[string]interface{} {
	return map[string]interface{}{
		"config_path": ctx.configPath,
		"data_path":   ctx.dataPath,
		"exists":      ctx.configExists,
		"data_file":   ctx.cfg.DataFile,
		"ui": map[string]interface{}{
			"accent":     ctx.cfg.UI.Accent,
			"code_theme": ctx.cfg.UI.CodeTheme,
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	ctx, err := loadGlobalConfigContextAllowMissing()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if jsonOutput {
		outputSuccess(configData(ctx), nil)
		return nil
	}

	fmt.Printf("config: %s\n", ctx.configPath)
	if !ctx.configExists {
		fmt.Println(ui.Hint("(not created yet; run 'cbook config init')"))
	}
	fmt.Printf("data:   %s\n", ctx.dataPath)

	for _, key := range config.Keys() {
		value, _ := ctx.cfg.Get(key)
		if value != "" {
			fmt.Printf("%s: %s\n", key, value)
		}
	}
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the global config.toml",
	Long: `Manage the global config.toml.

Use this to initialize, inspect, and edit the data file location and
terminal theming.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved config and data file paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented default config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := configPath
		if targetPath == "" {
			targetPath = config.DefaultPath()
		}

		created, err := config.CreateDefault(targetPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if jsonOutput {
			outputSuccess(map[string]interface{}{
				"config_path": targetPath,
				"created":     created,
			}, nil)
			return nil
		}

		if created {
			fmt.Println(ui.Successf("Created config: %s", targetPath))
		} else {
			fmt.Printf("Config already exists: %s\n", targetPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config key and save the file",
	Long: `Sets a config key and saves config.toml atomically. An empty value
clears the key.

Keys: data_file, ui.accent, ui.code_theme

Examples:
  cbook config set data_file ~/clients.db
  cbook config set ui.accent "#FF8800"
  cbook config set ui.code_theme ""`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if err := ctx.cfg.Set(key, value); err != nil {
			return handleError(ErrInvalidInput, err, "cbook config show")
		}
		if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if jsonOutput {
			saved, _ := ctx.cfg.Get(key)
			outputSuccess(map[string]interface{}{
				"config_path": ctx.configPath,
				"key":         key,
				"value":       saved,
			}, nil)
			return nil
		}

		saved, _ := ctx.cfg.Get(key)
		if saved == "" {
			fmt.Println(ui.Successf("Cleared %s", key))
		} else {
			fmt.Println(ui.Successf("Set %s = %s", key, shellquote.QuoteIfNeeded(saved)))
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
