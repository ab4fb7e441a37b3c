package elementtree

import "github.com/01DesignX/alva/pkg/models"

// ViewNode is the derived, render-ready projection of an element or of
// a named-slot group. It is recomputed from the model on every change,
// never patched in place.
type ViewNode struct {
	ID                     string
	Title                  string
	Slot                   bool // group node for a named slot; ID names a content

	Active                 bool
	Open                   bool
	Draggable              bool
	Editable               bool
	Highlighted            bool
	PlaceholderHighlighted bool
	Dragging               bool
	Children               []*ViewNode
}

// Projector turns model elements into ViewNode trees. Projection is
// pure: two runs over an unchanged model yield structurally equal trees.
type Projector struct {
	ctx *EditorContext
}

// NewProjector creates a projector over the shared editor state.
func NewProjector(ctx *EditorContext) *Projector {
	return &Projector{ctx: ctx}
}

// Project projects the subtree rooted at e. Elements whose pattern is
// missing from the library project to nil; callers tolerate the absent
// subtree.
func (p *Projector) Project(e *models.Element) *ViewNode {
	node, _ := p.project(e)
	return node
}

// project returns the node plus whether the subtree contains the
// selection, which auto-expands every ancestor of the selected element.
func (p *Projector) project(e *models.Element) (*ViewNode, bool) {
	pat, ok := e.Pattern()
	if !ok {
		return nil, false
	}
	part := PartitionSlots(pat)

	containsSelected := false
	var children []*ViewNode

	for _, slot := range part.Named {
		content, bound := e.ContentBySlot(slot.ID)
		if !bound {
			continue
		}
		group, hit := p.projectSlotGroup(slot, content)
		containsSelected = containsSelected || hit
		children = append(children, group)
	}

	if part.HasChildren {
		if content, bound := e.ContentBySlot(part.Children.ID); bound {
			for _, child := range content.Elements() {
				node, hit := p.project(child)
				containsSelected = containsSelected || hit || child.Selected()
				if node == nil {
					continue
				}
				children = append(children, node)
			}
		}
	}

	node := &ViewNode{
		ID:        e.ID(),
		Title:     e.Name(),
		Active:    e.Selected(),
		Open:      e.Open() || containsSelected,
		Draggable: !e.NameEditable(),
		Editable:  e.NameEditable(),

		Highlighted:            e.Highlighted(),
		PlaceholderHighlighted: e.PlaceholderHighlighted(),
		Dragging:               p.ctx.Dragging(),
		Children:               children,
	}
	return node, containsSelected || e.Selected()
}

// projectSlotGroup renders a named slot as an intermediate group node:
// not draggable, not editable, always open, identified by its content.
func (p *Projector) projectSlotGroup(slot models.Slot, content *models.Content) (*ViewNode, bool) {
	containsSelected := false
	var children []*ViewNode
	for _, child := range content.Elements() {
		node, hit := p.project(child)
		containsSelected = containsSelected || hit || child.Selected()
		if node == nil {
			continue
		}
		children = append(children, node)
	}
	return &ViewNode{
		ID:       content.ID(),
		Title:    slot.Name,
		Slot:     true,
		Open:     true,
		Dragging: p.ctx.Dragging(),
		Children: children,
	}, containsSelected
}
