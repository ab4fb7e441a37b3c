package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/01DesignX/alva/cmd/commands"
	"github.com/01DesignX/alva/internal/cli"
	"github.com/01DesignX/alva/internal/logging"
	"github.com/01DesignX/alva/pkg/examples"
	"github.com/01DesignX/alva/pkg/files"
	"github.com/01DesignX/alva/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	quietFlag   bool
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "alva",
	Short: "Terminal-based editor for pattern-driven element trees",
	Long:  `Alva is a terminal-based editor for documents built from reusable patterns. Elements are arranged in a tree, with pattern slots controlling where children may go, and the TUI supports renaming, reordering and drag-and-drop.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quietFlag, noColorFlag)
	},
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := files.ReadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to read settings: %v\n", err)
			os.Exit(1)
		}

		logger, err := logging.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to set up logging: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()

		// Launch TUI
		app := tui.NewApp(examples.SampleProject(), settings, logger)
		opts := []tea.ProgramOption{tea.WithAltScreen()}
		if settings.Editor.MouseEnabled {
			opts = append(opts, tea.WithMouseCellMotion())
		}
		p := tea.NewProgram(app, opts...)
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Alva project",
	Long:  `Creates the .alva folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Alva project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		registry, err := files.NewPatternRegistry()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to open pattern registry: %v\n", err)
			os.Exit(1)
		}
		if registry.Len() == 0 {
			for _, pat := range examples.StandardPatterns() {
				if err := registry.Add(pat); err != nil {
					fmt.Fprintf(os.Stderr, "Error: Failed to register pattern %s: %v\n", pat.Name, err)
					os.Exit(1)
				}
			}
			if err := registry.Save(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: Failed to write pattern registry: %v\n", err)
				os.Exit(1)
			}
		}

		fmt.Println("✓ Created .alva folder structure")
		fmt.Println("✓ Seeded the standard pattern library")
		fmt.Println("\nRun 'alva' to start the interactive editor.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Alva",
	Long:  `Display the current version of the Alva CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Alva version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewSettingsCommand())
	rootCmd.AddCommand(commands.NewPatternsCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
