// Package elementtree is the editing surface of the element tree pane:
// it projects the slotted model graph into a renderable view tree and
// resolves pointer and keyboard gestures into selection, rename, and
// move edits submitted to a command executor.
package elementtree

import (
	"fmt"
	"os"

	"github.com/01DesignX/alva/pkg/commands"
	"github.com/01DesignX/alva/pkg/models"
)

// EditorContext bundles the single drag/selection/edit state shared by
// every controller of one tree, together with the live model and the
// command executor. One context per tree; controllers receive it at
// construction instead of reaching for ambient globals.
type EditorContext struct {
	project  *models.Project
	executor commands.Executor

	dragged  *models.Element
	dragging bool

	selected    *models.Element
	editing     bool
	preEditName string

	debug bool
}

// NewEditorContext creates the shared state for one element tree.
func NewEditorContext(p *models.Project, exec commands.Executor) *EditorContext {
	return &EditorContext{
		project:  p,
		executor: exec,
		debug:    os.Getenv("ALVA_DEBUG") != "",
	}
}

// Project returns the live model graph.
func (ctx *EditorContext) Project() *models.Project { return ctx.project }

// Executor returns the command sink.
func (ctx *EditorContext) Executor() commands.Executor { return ctx.executor }

// Dragged returns the element currently being moved, if any.
func (ctx *EditorContext) Dragged() *models.Element { return ctx.dragged }

// Dragging reports whether a move gesture is in progress.
func (ctx *EditorContext) Dragging() bool { return ctx.dragging }

// Selected returns the current selection, if any.
func (ctx *EditorContext) Selected() *models.Element { return ctx.selected }

// Editing reports whether the selection's name is being edited inline.
func (ctx *EditorContext) Editing() bool { return ctx.editing }

// checkInvariants panics in debug builds when more than one element
// carries a singleton flag. A violation is a programming defect, not a
// recoverable interaction outcome.
func (ctx *EditorContext) checkInvariants() {
	if !ctx.debug || ctx.project.Root() == nil {
		return
	}
	draggedCount, selectedCount := 0, 0
	all := append([]*models.Element{ctx.project.Root()}, ctx.project.Root().Descendants()...)
	for _, e := range all {
		if e.Dragged() {
			draggedCount++
		}
		if e.Selected() {
			selectedCount++
		}
	}
	if draggedCount > 1 {
		panic(fmt.Sprintf("elementtree: %d elements carry the dragged flag", draggedCount))
	}
	if selectedCount > 1 {
		panic(fmt.Sprintf("elementtree: %d elements carry the selected flag", selectedCount))
	}
}
