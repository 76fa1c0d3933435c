package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/clientbook/internal/atomicfile"
	"github.com/aidanlsb/clientbook/internal/transfer"
	"github.com/aidanlsb/clientbook/internal/ui"
)

const (
	formatYAML     = "yaml"
	formatMarkdown = "markdown"
)

var (
	exportFormat string
	exportOutput string
)

// exportData is the JSON payload of the export command.
type exportData struct {
	Format  string   `json:"format"`
	Output  string   `json:"output,omitempty"`
	Files   []string `json:"files,omitempty"`
	Content string   `json:"content,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every client as YAML or markdown notes",
	Long: `Exports all clients, ignoring any find filter.

The yaml format writes a single document with a top-level "clients" list,
to stdout or to --output. The markdown format writes one note per client
into the --output directory: YAML frontmatter followed by a "# Name"
heading. Files are written atomically.

Examples:
  cbook export > clients.yaml
  cbook export --output backup/clients.yaml
  cbook export --format markdown --output notes/clients`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(strings.TrimSpace(exportFormat))
	switch format {
	case formatYAML, formatMarkdown:
	default:
		return handleError(ErrInvalidInput,
			fmt.Errorf("unknown export format '%s'", exportFormat),
			"Use --format yaml or --format markdown")
	}
	if format == formatMarkdown && exportOutput == "" {
		return handleError(ErrInvalidInput, errors.New("markdown export needs an --output directory"), "cbook export --format markdown --output <dir>")
	}

	b, closeBook, err := openBook()
	if err != nil {
		return handleClassifiedError(err, ErrDatabaseError)
	}
	defer closeBook()

	clients, err := b.All(cmd.Context())
	if err != nil {
		return handleClassifiedError(err, ErrDatabaseError)
	}

	data := exportData{Format: format, Output: exportOutput}
	switch {
	case format == formatYAML && exportOutput == "":
		var buf bytes.Buffer
		if err := transfer.ExportYAML(&buf, clients); err != nil {
			return handleError(ErrInternal, err, "")
		}
		if !jsonOutput {
			_, err := os.Stdout.Write(buf.Bytes())
			return err
		}
		data.Content = buf.String()
	case format == formatYAML:
		err := atomicfile.Write(exportOutput, 0o644, func(w io.Writer) error {
			return transfer.ExportYAML(w, clients)
		})
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		data.Files = []string{exportOutput}
	default:
		data.Files, err = transfer.ExportMarkdownDir(exportOutput, clients)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
	}

	if jsonOutput {
		outputSuccess(data, &Meta{Count: len(clients)})
		return nil
	}
	noun := "clients"
	if len(clients) == 1 {
		noun = "client"
	}
	fmt.Println(ui.Successf("Exported %d %s to %s", len(clients), noun, exportOutput))
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", formatYAML, "Export format: yaml or markdown")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (yaml) or directory (markdown)")
	rootCmd.AddCommand(exportCmd)
}
