package elementtree

import "github.com/01DesignX/alva/pkg/models"

// DragController owns the lifecycle of the single move gesture: start,
// hover accept/reject with highlight mutation, and idempotent cleanup.
type DragController struct {
	ctx *EditorContext

	// lastHighlight is the one element currently carrying a highlight,
	// cleared as part of the next accepted hover.
	lastHighlight *models.Element
}

// NewDragController creates a drag controller over the shared state.
func NewDragController(ctx *EditorContext) *DragController {
	return &DragController{ctx: ctx}
}

// StartDrag begins a move gesture for candidate. It reports false, and
// the caller must suppress the native move affordance, when candidate
// is absent or its name is being edited inline.
func (d *DragController) StartDrag(candidate *models.Element) bool {
	if candidate == nil || candidate.NameEditable() {
		return false
	}
	d.ctx.project.Batch(func() {
		if prev := d.ctx.dragged; prev != nil && prev != candidate {
			prev.SetDragged(false)
		}
		candidate.SetDragged(true)
		d.ctx.dragged = candidate
		d.ctx.dragging = true
	})
	d.ctx.checkInvariants()
	return true
}

// Hover evaluates one hover event over targetVisual, with targetParent
// the element that would receive the drop. In sibling mode the drop is
// an insertion beside targetVisual rather than into it, shown as a
// placeholder highlight. Returns true when the drop would be accepted.
//
// Rejected hovers mutate no visual flags, so a doomed target never
// flickers. Accepted hovers set the new highlight and clear the prior
// one in a single batch.
func (d *DragController) Hover(targetParent, targetVisual *models.Element, sibling bool) bool {
	if !d.ctx.dragging {
		if targetVisual != nil {
			d.ctx.project.Batch(func() {
				targetVisual.SetHighlighted(false)
				targetVisual.SetPlaceholderHighlighted(false)
			})
		}
		return false
	}
	if targetParent == nil || targetVisual == nil {
		return false
	}
	if !targetParent.Accepts(d.ctx.dragged) {
		return false
	}
	d.ctx.project.Batch(func() {
		if d.lastHighlight != nil && d.lastHighlight != targetVisual {
			d.lastHighlight.SetHighlighted(false)
			d.lastHighlight.SetPlaceholderHighlighted(false)
		}
		targetVisual.SetHighlighted(!sibling)
		targetVisual.SetPlaceholderHighlighted(sibling)
		d.lastHighlight = targetVisual
	})
	return true
}

// EndDrag clears all gesture state. It is idempotent and tolerates a
// dragged element that has already been removed from the tree; it is
// the handler for every end-of-gesture signal, drop and abort alike.
func (d *DragController) EndDrag() {
	d.ctx.project.Batch(func() {
		if d.ctx.dragged != nil {
			d.ctx.dragged.SetDragged(false)
			d.ctx.dragged = nil
		}
		d.ctx.dragging = false
		if d.lastHighlight != nil {
			d.lastHighlight.SetHighlighted(false)
			d.lastHighlight.SetPlaceholderHighlighted(false)
			d.lastHighlight = nil
		}
	})
}
