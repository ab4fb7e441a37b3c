package models

import "github.com/google/uuid"

// Element is a node in the edited document tree. Every non-root element
// belongs to exactly one Content collection; its pattern declares which
// slots (and therefore which child collections) it exposes.
type Element struct {
	id        string
	name      string
	patternID string
	project   *Project

	container *Content            // nil for the root
	contents  map[string]*Content // slot ID -> bound content

	open         bool
	selected     bool
	highlighted  bool
	placeholder  bool
	dragged      bool
	nameEditable bool
}

// NewElement creates an element of the given pattern and binds a content
// collection to each slot the pattern declares. Patterns without a
// children slot produce leaf elements with no child collection.
func NewElement(p *Project, patternID, name string) *Element {
	e := &Element{
		id:        uuid.NewString(),
		name:      name,
		patternID: patternID,
		project:   p,
		contents:  make(map[string]*Content),
	}
	p.register(e)
	if pat, ok := p.PatternByID(patternID); ok {
		for _, slot := range pat.Slots {
			c := newContent(p, e, slot.ID)
			e.contents[slot.ID] = c
		}
	}
	return e
}

// ID returns the element's identity.
func (e *Element) ID() string { return e.id }

// Name returns the element's display name.
func (e *Element) Name() string { return e.name }

// SetName updates the display name.
func (e *Element) SetName(name string) {
	if e.name == name {
		return
	}
	e.name = name
	e.project.notify()
}

// Pattern resolves the element's type descriptor. Absent when the
// pattern library no longer carries the element's pattern.
func (e *Element) Pattern() (*Pattern, bool) {
	return e.project.PatternByID(e.patternID)
}

// Container returns the content collection the element currently
// belongs to, or nil for the root.
func (e *Element) Container() *Content {
	return e.container
}

// Parent returns the owning element of the container, or nil for the root.
func (e *Element) Parent() *Element {
	if e.container == nil {
		return nil
	}
	return e.container.owner
}

// IndexInContainer returns the element's position in its container, or
// -1 when it has none.
func (e *Element) IndexInContainer() int {
	if e.container == nil {
		return -1
	}
	return e.container.IndexOf(e)
}

// ContentBySlot returns the content bound to the given slot.
func (e *Element) ContentBySlot(slotID string) (*Content, bool) {
	c, ok := e.contents[slotID]
	return c, ok
}

// ChildrenContent returns the content bound to the pattern's default
// children slot.
func (e *Element) ChildrenContent() (*Content, bool) {
	pat, ok := e.Pattern()
	if !ok {
		return nil, false
	}
	slot, ok := pat.ChildrenSlot()
	if !ok {
		return nil, false
	}
	return e.ContentBySlot(slot.ID)
}

// Descendants returns every element below this one, depth first, slots
// in pattern order.
func (e *Element) Descendants() []*Element {
	var out []*Element
	for _, content := range e.orderedContents() {
		for _, child := range content.elements {
			out = append(out, child)
			out = append(out, child.Descendants()...)
		}
	}
	return out
}

func (e *Element) orderedContents() []*Content {
	pat, ok := e.Pattern()
	if !ok {
		return nil
	}
	out := make([]*Content, 0, len(e.contents))
	for _, slot := range pat.Slots {
		if c, bound := e.contents[slot.ID]; bound {
			out = append(out, c)
		}
	}
	return out
}

// Accepts reports whether candidate may be dropped into this element's
// children: the element must expose a children content, and the drop
// must not place an element inside itself or its own subtree.
func (e *Element) Accepts(candidate *Element) bool {
	if candidate == nil {
		return false
	}
	if _, ok := e.ChildrenContent(); !ok {
		return false
	}
	if candidate == e {
		return false
	}
	for anc := e.Parent(); anc != nil; anc = anc.Parent() {
		if anc == candidate {
			return false
		}
	}
	return true
}

// Open reports the explicit open flag.
func (e *Element) Open() bool { return e.open }

// SetOpen sets the explicit open flag.
func (e *Element) SetOpen(open bool) {
	if e.open == open {
		return
	}
	e.open = open
	e.project.notify()
}

// ToggleOpen flips the explicit open flag.
func (e *Element) ToggleOpen() {
	e.open = !e.open
	e.project.notify()
}

// Selected reports whether the element is the current selection.
func (e *Element) Selected() bool { return e.selected }

// SetSelected sets the selection flag.
func (e *Element) SetSelected(selected bool) {
	if e.selected == selected {
		return
	}
	e.selected = selected
	e.project.notify()
}

// Highlighted reports the drop-target highlight.
func (e *Element) Highlighted() bool { return e.highlighted }

// SetHighlighted sets the drop-target highlight.
func (e *Element) SetHighlighted(v bool) {
	if e.highlighted == v {
		return
	}
	e.highlighted = v
	e.project.notify()
}

// PlaceholderHighlighted reports the sibling-insertion highlight.
func (e *Element) PlaceholderHighlighted() bool { return e.placeholder }

// SetPlaceholderHighlighted sets the sibling-insertion highlight.
func (e *Element) SetPlaceholderHighlighted(v bool) {
	if e.placeholder == v {
		return
	}
	e.placeholder = v
	e.project.notify()
}

// Dragged reports whether this element is the one being moved.
func (e *Element) Dragged() bool { return e.dragged }

// SetDragged sets the dragged flag.
func (e *Element) SetDragged(v bool) {
	if e.dragged == v {
		return
	}
	e.dragged = v
	e.project.notify()
}

// NameEditable reports whether the element's name is being edited inline.
func (e *Element) NameEditable() bool { return e.nameEditable }

// SetNameEditable sets the inline-edit flag.
func (e *Element) SetNameEditable(v bool) {
	if e.nameEditable == v {
		return
	}
	e.nameEditable = v
	e.project.notify()
}
