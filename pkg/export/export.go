// Package export renders a document to a Markdown outline.
package export

import (
	"fmt"
	"strings"

	"github.com/01DesignX/alva/pkg/elementtree"
	"github.com/01DesignX/alva/pkg/models"
)

// Document renders the project's element tree as a Markdown outline.
// The root becomes the title; every other element becomes a list item
// annotated with its pattern name. Named slots render as emphasized
// group items so the insertion structure stays visible.
func Document(project *models.Project, settings *models.Settings) (string, error) {
	if project == nil {
		return "", fmt.Errorf("project is nil")
	}
	root := project.Root()
	if root == nil {
		return "", fmt.Errorf("document has no root element")
	}

	indent := 2
	if settings != nil && settings.UI.Indent > 0 {
		indent = settings.UI.Indent
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("# %s\n\n", root.Name()))
	writeElement(&output, root, 0, indent)

	return output.String(), nil
}

// writeElement renders e's slots in pattern order. Elements whose
// pattern is missing from the library are skipped, matching the
// editor's projection.
func writeElement(output *strings.Builder, e *models.Element, depth, indent int) {
	pat, ok := e.Pattern()
	if !ok {
		return
	}
	part := elementtree.PartitionSlots(pat)

	slots := append([]models.Slot{}, part.Named...)
	if part.HasChildren {
		slots = append(slots, part.Children)
	}

	for _, slot := range slots {
		content, bound := e.ContentBySlot(slot.ID)
		if !bound {
			continue
		}
		childDepth := depth
		if !slot.IsChildren() {
			writeItem(output, depth, indent, fmt.Sprintf("**%s**", slot.Name))
			childDepth = depth + 1
		}
		for _, child := range content.Elements() {
			childPat, ok := child.Pattern()
			if !ok {
				continue
			}
			writeItem(output, childDepth, indent, fmt.Sprintf("%s (%s)", child.Name(), childPat.Name))
			writeElement(output, child, childDepth+1, indent)
		}
	}
}

func writeItem(output *strings.Builder, depth, indent int, label string) {
	output.WriteString(strings.Repeat(" ", depth*indent))
	output.WriteString("- ")
	output.WriteString(label)
	output.WriteString("\n")
}
