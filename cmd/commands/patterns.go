package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/01DesignX/alva/internal/cli"
	"github.com/01DesignX/alva/pkg/examples"
	"github.com/01DesignX/alva/pkg/files"
	"github.com/01DesignX/alva/pkg/models"
)

// NewPatternsCommand creates the patterns command
func NewPatternsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the registered pattern library",
		Long: `List the patterns the editor builds elements from.

Patterns are read from .alva/patterns.yaml. When the registry is empty
or missing, the built-in standard library is shown instead.

Examples:
  # List patterns
  alva patterns

  # Output as JSON
  alva patterns -o json`,
		Args: cobra.NoArgs,
		RunE: runPatterns,
	}

	return cmd
}

func runPatterns(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	registry, err := files.NewPatternRegistry()
	if err != nil {
		return err
	}

	patterns := registry.Patterns()
	if len(patterns) == 0 {
		patterns = examples.StandardPatterns()
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, patterns)
	}

	for _, pat := range patterns {
		fmt.Printf("%s (%s)\n", pat.Name, pat.ID)
		for _, slot := range pat.Slots {
			kind := "named"
			if slot.Type == models.SlotTypeChildren {
				kind = "children"
			}
			fmt.Printf("  %s slot: %s\n", kind, slot.Name)
		}
	}
	return nil
}
