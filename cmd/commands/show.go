package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/01DesignX/alva/internal/cli"
	"github.com/01DesignX/alva/pkg/commands"
	"github.com/01DesignX/alva/pkg/elementtree"
	"github.com/01DesignX/alva/pkg/examples"
	"github.com/01DesignX/alva/pkg/models"
	"github.com/01DesignX/alva/pkg/search"
)

var (
	showSlots  bool
	showFilter string
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the sample document as an element tree",
		Long: `Display the element tree of the bundled sample document.

Named slots are shown as group rows under their owning element, with
the slot's children nested beneath them. Use --slots=false to hide the
group rows and print elements only.

Examples:
  # Show the tree
  alva show

  # Hide named slot group rows
  alva show --slots=false

  # Only show elements whose names match a query
  alva show --filter hero

  # Output as JSON
  alva show -o json`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showSlots, "slots", true, "Show named slot group rows")
	cmd.Flags().StringVar(&showFilter, "filter", "", "Only show elements matching this name query")

	return cmd
}

// treeEntry is the serializable form of a projected node.
type treeEntry struct {
	Name     string      `json:"name" yaml:"name"`
	Slot     bool        `json:"slot,omitempty" yaml:"slot,omitempty"`
	Pattern  string      `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Children []treeEntry `json:"children,omitempty" yaml:"children,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	project := examples.SampleProject()
	root := project.Root()
	if root == nil {
		return fmt.Errorf("sample document has no root element")
	}

	ctx := elementtree.NewEditorContext(project, commands.NewJournal(project))
	node := elementtree.NewProjector(ctx).Project(root)
	if node == nil {
		return fmt.Errorf("failed to project element %q", root.Name())
	}

	entry := buildEntry(project, node)
	if showFilter != "" {
		filtered, ok := filterEntry(entry, showFilter)
		if !ok {
			cli.PrintInfo("No elements match %q", showFilter)
			return nil
		}
		entry = filtered
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, entry)
	}

	var sb strings.Builder
	renderEntry(&sb, entry, 0)
	fmt.Print(sb.String())
	return nil
}

func buildEntry(project *models.Project, node *elementtree.ViewNode) treeEntry {
	entry := treeEntry{
		Name: node.Title,
		Slot: node.Slot,
	}
	if !node.Slot {
		if e, ok := project.ElementByID(node.ID); ok {
			if pat, ok := e.Pattern(); ok {
				entry.Pattern = pat.Name
			}
		}
	}
	for _, child := range node.Children {
		sub := buildEntry(project, child)
		if child.Slot && !showSlots {
			entry.Children = append(entry.Children, sub.Children...)
			continue
		}
		entry.Children = append(entry.Children, sub)
	}
	return entry
}

// filterEntry prunes the tree to elements whose names match the query,
// keeping the ancestors of every match. Slot groups survive only when
// a descendant matched.
func filterEntry(entry treeEntry, query string) (treeEntry, bool) {
	var kept []treeEntry
	for _, child := range entry.Children {
		if sub, ok := filterEntry(child, query); ok {
			kept = append(kept, sub)
		}
	}
	entry.Children = kept
	if entry.Slot {
		return entry, len(kept) > 0
	}
	return entry, len(kept) > 0 || search.Matches(query, entry.Name)
}

func renderEntry(sb *strings.Builder, entry treeEntry, depth int) {
	indent := strings.Repeat("  ", depth)
	if entry.Slot {
		fmt.Fprintf(sb, "%s◇ %s\n", indent, entry.Name)
	} else if entry.Pattern != "" {
		fmt.Fprintf(sb, "%s%s (%s)\n", indent, entry.Name, entry.Pattern)
	} else {
		fmt.Fprintf(sb, "%s%s\n", indent, entry.Name)
	}
	for _, child := range entry.Children {
		renderEntry(sb, child, depth+1)
	}
}
