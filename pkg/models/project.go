package models

// Project is the live model graph: the pattern library, an identity index
// over every element and content collection, and the document root.
//
// All flag writes funnel through the project so observers see one change
// notification per logical interaction event. Nothing here is safe for
// concurrent use; the editor is single-threaded and event-driven.
type Project struct {
	patterns map[string]*Pattern
	elements map[string]*Element
	contents map[string]*Content
	root     *Element

	onChange   func()
	batchDepth int
	batchDirty bool
}

// NewProject creates an empty project.
func NewProject() *Project {
	return &Project{
		patterns: make(map[string]*Pattern),
		elements: make(map[string]*Element),
		contents: make(map[string]*Content),
	}
}

// OnChange registers the single change observer. The renderer uses this to
// invalidate its projection; each batch fires it at most once.
func (p *Project) OnChange(fn func()) {
	p.onChange = fn
}

// Batch runs fn collecting every model write it performs into one change
// notification. Batches nest; only the outermost emits.
func (p *Project) Batch(fn func()) {
	p.batchDepth++
	fn()
	p.batchDepth--
	if p.batchDepth == 0 && p.batchDirty {
		p.batchDirty = false
		p.emit()
	}
}

func (p *Project) notify() {
	if p.batchDepth > 0 {
		p.batchDirty = true
		return
	}
	p.emit()
}

func (p *Project) emit() {
	if p.onChange != nil {
		p.onChange()
	}
}

// AddPattern registers a pattern in the library.
func (p *Project) AddPattern(pat *Pattern) {
	p.patterns[pat.ID] = pat
}

// PatternByID looks up a pattern by identity.
func (p *Project) PatternByID(id string) (*Pattern, bool) {
	pat, ok := p.patterns[id]
	return pat, ok
}

// ElementByID looks up a live element by identity. Stale identities (an
// element already removed) simply miss.
func (p *Project) ElementByID(id string) (*Element, bool) {
	e, ok := p.elements[id]
	return e, ok
}

// ContentByID looks up a live content collection by identity.
func (p *Project) ContentByID(id string) (*Content, bool) {
	c, ok := p.contents[id]
	return c, ok
}

// Root returns the document root element.
func (p *Project) Root() *Element {
	return p.root
}

// SetRoot installs the document root.
func (p *Project) SetRoot(e *Element) {
	p.root = e
	p.notify()
}

// Elements returns the number of live elements. Used by tests and the
// CLI summary output.
func (p *Project) Elements() int {
	return len(p.elements)
}

func (p *Project) register(e *Element) {
	p.elements[e.id] = e
}

func (p *Project) registerContent(c *Content) {
	p.contents[c.id] = c
}

// Remove detaches an element from its container and drops it and its
// whole subtree from the identity index.
func (p *Project) Remove(e *Element) {
	if c := e.Container(); c != nil {
		c.Remove(e)
	}
	p.unindex(e)
	p.notify()
}

func (p *Project) unindex(e *Element) {
	delete(p.elements, e.id)
	for _, content := range e.contents {
		delete(p.contents, content.id)
		for _, child := range content.elements {
			p.unindex(child)
		}
	}
}
