package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/01DesignX/alva/internal/cli"
	"github.com/01DesignX/alva/pkg/files"
	"github.com/01DesignX/alva/pkg/models"
)

var settingsDefaults bool

// NewSettingsCommand creates the settings command
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Display effective editor settings",
		Long: `Display the settings the editor will run with.

Settings are read from .alva/settings.yaml in the current directory.
When the file is missing, the built-in defaults are shown instead.

Examples:
  # Show effective settings
  alva settings

  # Show the built-in defaults
  alva settings --defaults

  # Output as YAML
  alva settings -o yaml`,
		Args: cobra.NoArgs,
		RunE: runSettings,
	}

	cmd.Flags().BoolVar(&settingsDefaults, "defaults", false, "Show built-in defaults instead of the project settings")

	return cmd
}

func runSettings(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	var settings *models.Settings
	if settingsDefaults {
		settings = models.DefaultSettings()
	} else {
		var err error
		settings, err = files.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, settings)
	}

	fmt.Printf("ui.indent:               %d\n", settings.UI.Indent)
	fmt.Printf("ui.show_slot_names:      %t\n", settings.UI.ShowSlotNames)
	fmt.Printf("ui.theme:                %s\n", settings.UI.Theme)
	fmt.Printf("editor.mouse_enabled:    %t\n", settings.Editor.MouseEnabled)
	fmt.Printf("editor.auto_commit_edit: %t\n", settings.Editor.AutoCommitEdit)
	return nil
}
