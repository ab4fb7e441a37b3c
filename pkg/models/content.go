package models

import "github.com/google/uuid"

// Content is the ordered child collection bound to one (element, slot)
// pair. An element lives in exactly one content at a time; inserting it
// elsewhere detaches it first.
type Content struct {
	id       string
	slotID   string
	owner    *Element
	project  *Project
	elements []*Element
}

func newContent(p *Project, owner *Element, slotID string) *Content {
	c := &Content{
		id:      uuid.NewString(),
		slotID:  slotID,
		owner:   owner,
		project: p,
	}
	p.registerContent(c)
	return c
}

// ID returns the content's identity.
func (c *Content) ID() string { return c.id }

// SlotID returns the identity of the slot this content is bound to.
func (c *Content) SlotID() string { return c.slotID }

// Owner returns the element this content belongs to.
func (c *Content) Owner() *Element { return c.owner }

// Elements returns the children in stored order. The returned slice is
// shared; callers must not mutate it.
func (c *Content) Elements() []*Element { return c.elements }

// Len returns the number of children.
func (c *Content) Len() int { return len(c.elements) }

// IndexOf returns the position of e in this content, or -1.
func (c *Content) IndexOf(e *Element) int {
	for i, child := range c.elements {
		if child == e {
			return i
		}
	}
	return -1
}

// Insert places e at index, detaching it from its current container
// first. Indexes out of range clamp to the ends.
func (c *Content) Insert(e *Element, index int) {
	if prev := e.container; prev != nil {
		prev.detach(e)
	}
	if index < 0 {
		index = 0
	}
	if index > len(c.elements) {
		index = len(c.elements)
	}
	c.elements = append(c.elements, nil)
	copy(c.elements[index+1:], c.elements[index:])
	c.elements[index] = e
	e.container = c
	c.project.notify()
}

// Append places e at the end of this content.
func (c *Content) Append(e *Element) {
	c.Insert(e, len(c.elements))
}

// Remove detaches e from this content. A miss is a no-op.
func (c *Content) Remove(e *Element) {
	if c.detach(e) {
		c.project.notify()
	}
}

func (c *Content) detach(e *Element) bool {
	i := c.IndexOf(e)
	if i < 0 {
		return false
	}
	c.elements = append(c.elements[:i], c.elements[i+1:]...)
	e.container = nil
	return true
}
