package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/clientbook/internal/book"
	"github.com/aidanlsb/clientbook/internal/model"
	"github.com/aidanlsb/clientbook/internal/transfer"
	"github.com/aidanlsb/clientbook/internal/ui"
)

var (
	importFormat string
	importDryRun bool
)

// importData is the JSON payload of the import command.
type importData struct {
	Source   string         `json:"source"`
	Format   string         `json:"format"`
	DryRun   bool           `json:"dry_run,omitempty"`
	Imported []model.Client `json:"imported"`
	Skipped  []string       `json:"skipped,omitempty"`
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import clients from YAML or a directory of markdown notes",
	Long: `Adds clients from a file written by 'cbook export'.

A directory is read as markdown notes; anything else as YAML. Use "-" to
read YAML from stdin. Every field is validated; the first invalid record
aborts the import before anything is stored. Clients whose name is already
in the book are skipped with a warning.

Examples:
  cbook import clients.yaml
  cbook import notes/clients
  cat clients.yaml | cbook import - --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	source := args[0]

	format, err := detectImportFormat(source, importFormat)
	if err != nil {
		return handleError(ErrInvalidInput, err, "Use --format yaml or --format markdown")
	}

	clients, err := readImport(source, format, cmd.InOrStdin())
	if err != nil {
		return handleClassifiedError(err, ErrFileReadError)
	}

	b, closeBook, err := openBook()
	if err != nil {
		return handleClassifiedError(err, ErrDatabaseError)
	}
	defer closeBook()

	data := importData{Source: source, Format: format, DryRun: importDryRun, Imported: []model.Client{}}
	warnings, err := importClients(cmd.Context(), b, clients, importDryRun, &data)
	if err != nil {
		return handleClassifiedError(err, ErrDatabaseError)
	}

	if jsonOutput {
		outputSuccess(data, &Meta{Count: len(data.Imported)}, warnings...)
		return nil
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	}
	verb := "Imported"
	if importDryRun {
		verb = "Would import"
	}
	fmt.Println(ui.Successf("%s %d of %d clients from %s", verb, len(data.Imported), len(clients), source))
	return nil
}

// detectImportFormat returns the explicit format, or picks markdown for a
// directory and yaml for anything else.
func detectImportFormat(source, explicit string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(explicit)); f {
	case formatYAML, formatMarkdown:
		return f, nil
	case "":
	default:
		return "", fmt.Errorf("unknown import format '%s'", explicit)
	}

	if source != "-" {
		if info, err := os.Stat(source); err == nil && info.IsDir() {
			return formatMarkdown, nil
		}
	}
	return formatYAML, nil
}

func readImport(source, format string, stdin io.Reader) ([]model.Client, error) {
	if format == formatMarkdown {
		return transfer.ImportMarkdownDir(source)
	}
	if source == "-" {
		return transfer.ImportYAML(stdin)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", source, err)
	}
	defer f.Close()
	return transfer.ImportYAML(f)
}

// importClients adds each client whose name is not yet in the book.
// Duplicates within the input are skipped like duplicates already stored.
func importClients(ctx context.Context, b *book.Book, clients []model.Client, dryRun bool, data *importData) ([]Warning, error) {
	var warnings []Warning
	seen := make(map[string]bool, len(clients))

	for _, c := range clients {
		name := c.Name.String()
		exists := seen[name]
		if !exists {
			var err error
			exists, err = b.HasClient(ctx, c, 0)
			if err != nil {
				return warnings, err
			}
		}
		if exists {
			data.Skipped = append(data.Skipped, name)
			warnings = append(warnings, Warning{
				Code:    WarnDuplicateSkipped,
				Message: fmt.Sprintf("skipped '%s': already in the client book", name),
				Source:  name,
			})
			continue
		}
		seen[name] = true

		if !dryRun {
			stored, err := b.Add(ctx, c)
			if err != nil {
				return warnings, err
			}
			c = stored
		}
		data.Imported = append(data.Imported, c)
	}
	return warnings, nil
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "", "Input format: yaml or markdown (default: detect)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report what would be imported without storing anything")
	rootCmd.AddCommand(importCmd)
}
