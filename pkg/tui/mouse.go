package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/01DesignX/alva/pkg/commands"
	"github.com/01DesignX/alva/pkg/elementtree"
)

// affordance geometry: indent, one expand glyph, one space, label.
func (a *App) affordanceX(r *row) int {
	return r.depth * a.settings.UI.Indent
}

func (a *App) labelX(r *row) int {
	return a.affordanceX(r) + 2
}

// handleMouse turns press/motion/release into the drag and selection
// transitions. A press remembers the candidate; motion with the button
// held promotes it to a drag; release is either a drop or a click.
func (a *App) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.tree.LineUp(1)
		return
	case tea.MouseButtonWheelDown:
		a.tree.LineDown(1)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			a.handlePress(msg.X, msg.Y)
		}

	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			a.handleDragMotion(msg.Y)
		}

	case tea.MouseActionRelease:
		a.handleRelease(msg.Y)
	}
}

func (a *App) handlePress(x, y int) {
	r := a.rowAt(y)
	if r == nil || r.kind != rowElement {
		a.pressed = false
		a.pressRow = nil
		return
	}
	if x >= a.affordanceX(r) && x < a.affordanceX(r)+1 && len(r.node.Children) > 0 {
		a.sel.ToggleOpen(a.hit.ResolveElement(r, false))
		return
	}
	a.pressed = true
	a.pressRow = r
	a.pressOnLabel = x >= a.labelX(r)
}

func (a *App) handleDragMotion(y int) {
	if !a.pressed {
		return
	}
	if !a.ctx.Dragging() {
		candidate := a.hit.ResolveElement(a.pressRow, false)
		if !a.drag.StartDrag(candidate) {
			// Editing or stale candidate: suppress the move gesture.
			a.pressed = false
			return
		}
	}
	r := a.rowAt(y)
	if r == nil {
		return
	}
	target := a.hit.ResolveElement(r, false)
	if target == nil {
		return
	}
	if target.Accepts(a.ctx.Dragged()) {
		a.drag.Hover(target, target, false)
		return
	}
	parent := a.hit.ResolveElement(r, true)
	a.drag.Hover(parent, target, true)
}

func (a *App) handleRelease(y int) {
	defer func() {
		a.pressed = false
		a.pressRow = nil
	}()

	if a.ctx.Dragging() {
		a.completeDrop(a.rowAt(y))
		a.drag.EndDrag()
		return
	}
	if !a.pressed || a.pressRow == nil {
		return
	}
	e := a.hit.ResolveElement(a.pressRow, false)
	if e == nil {
		return
	}
	if a.pressOnLabel && e == a.ctx.Selected() {
		a.commitDraftFromInput()
		a.sel.ClickLabel(e)
		a.syncEditInput()
		return
	}
	a.commitDraftFromInput()
	a.sel.Select(e)
	a.syncEditInput()
}

// completeDrop submits the reparent for a drop over r. A drop onto an
// accepting container appends to its children; a drop beside a sibling
// inserts at the resolved index. Anything unresolvable is a silent
// no-op.
func (a *App) completeDrop(r *row) {
	dragged := a.ctx.Dragged()
	if dragged == nil || r == nil {
		return
	}
	target := a.hit.ResolveElement(r, false)
	if target == nil {
		return
	}

	if target.Accepts(dragged) {
		content, ok := target.ChildrenContent()
		if !ok {
			return
		}
		a.journal.Submit(commands.NewReparent(dragged.ID(), content.ID(), content.Len()))
		a.logger.Debug("dropped into container",
			zap.String("element", dragged.Name()),
			zap.String("target", target.Name()))
		return
	}

	parent := a.hit.ResolveElement(r, true)
	if parent == nil || !parent.Accepts(dragged) {
		return
	}
	content := a.hit.ResolveContent(r, true)
	index, ok := elementtree.ResolveDropIndex(dragged, target)
	if content == nil || !ok {
		return
	}
	a.journal.Submit(commands.NewReparent(dragged.ID(), content.ID(), index))
	a.logger.Debug("dropped beside sibling",
		zap.String("element", dragged.Name()),
		zap.String("sibling", target.Name()),
		zap.Int("index", index))
}
