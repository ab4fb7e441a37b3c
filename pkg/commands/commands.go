// Package commands defines the structural edits the element tree submits
// to its host, and a journal executor that makes each of them undoable.
package commands

import "github.com/01DesignX/alva/pkg/models"

// Command is one atomic, independently undoable model edit.
type Command interface {
	// Execute applies the edit. A false return means the command's
	// preconditions no longer hold (stale identity); nothing changed.
	Execute(p *models.Project) bool
	// Undo reverts a previously executed command.
	Undo(p *models.Project) bool
}

// Executor receives committed commands. The tree core only submits;
// undo policy belongs to the host.
type Executor interface {
	Submit(cmd Command)
}

// Rename changes an element's display name.
type Rename struct {
	ElementID string
	Name      string
	prevName  string
}

// NewRename builds a rename command for the element's current name.
func NewRename(e *models.Element, name string) *Rename {
	return &Rename{ElementID: e.ID(), Name: name, prevName: e.Name()}
}

func (c *Rename) Execute(p *models.Project) bool {
	e, ok := p.ElementByID(c.ElementID)
	if !ok {
		return false
	}
	c.prevName = e.Name()
	e.SetName(c.Name)
	return true
}

func (c *Rename) Undo(p *models.Project) bool {
	e, ok := p.ElementByID(c.ElementID)
	if !ok {
		return false
	}
	e.SetName(c.prevName)
	return true
}

// Reparent moves an element into a target content at a given index.
type Reparent struct {
	ElementID string
	ContentID string
	Index     int

	prevContentID string
	prevIndex     int
}

// NewReparent builds a move command.
func NewReparent(elementID, contentID string, index int) *Reparent {
	return &Reparent{ElementID: elementID, ContentID: contentID, Index: index}
}

func (c *Reparent) Execute(p *models.Project) bool {
	e, ok := p.ElementByID(c.ElementID)
	if !ok {
		return false
	}
	target, ok := p.ContentByID(c.ContentID)
	if !ok {
		return false
	}
	if prev := e.Container(); prev != nil {
		c.prevContentID = prev.ID()
		c.prevIndex = prev.IndexOf(e)
	} else {
		c.prevContentID = ""
	}
	target.Insert(e, c.Index)
	return true
}

func (c *Reparent) Undo(p *models.Project) bool {
	e, ok := p.ElementByID(c.ElementID)
	if !ok {
		return false
	}
	if c.prevContentID == "" {
		if cur := e.Container(); cur != nil {
			cur.Remove(e)
		}
		return true
	}
	prev, ok := p.ContentByID(c.prevContentID)
	if !ok {
		return false
	}
	prev.Insert(e, c.prevIndex)
	return true
}
