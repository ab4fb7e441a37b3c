package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/01DesignX/alva/internal/cli"
	"github.com/01DesignX/alva/pkg/examples"
	"github.com/01DesignX/alva/pkg/export"
	"github.com/01DesignX/alva/pkg/files"
)

var exportFilename string

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the sample document as a Markdown outline",
		Long: `Render the sample document's element tree to a Markdown outline
and write it to a file.

The output is written to ALVA.md by default, or to a custom filename
if specified.

Examples:
  # Export to ALVA.md
  alva export

  # Export with custom output filename
  alva export --output-file OUTLINE.md`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&exportFilename, "output-file", "ALVA.md", "Output filename")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	settings, err := files.ReadSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	outline, err := export.Document(examples.SampleProject(), settings)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	if err := os.WriteFile(exportFilename, []byte(outline), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportFilename, err)
	}

	cli.PrintSuccess("Exported document to %s", exportFilename)
	return nil
}
