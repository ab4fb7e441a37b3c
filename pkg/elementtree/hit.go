package elementtree

import "github.com/01DesignX/alva/pkg/models"

// MarkerKind says what identity a visual node carries.
type MarkerKind int

const (
	// MarkerElement marks a visual node rendered for an element.
	MarkerElement MarkerKind = iota
	// MarkerContent marks a visual node rendered for a content group.
	MarkerContent
)

// Marker is the identity a visual node carries back to the model.
type Marker struct {
	Kind MarkerKind
	ID   string
}

// VisualNode is an opaque handle into whatever tree the host renders.
// The resolver only needs the ancestor chain and the identity markers
// planted on it.
type VisualNode interface {
	// IdentityMarker returns the marker attached to this visual node,
	// if any.
	IdentityMarker() (Marker, bool)
	// VisualParent returns the next node up the visual ancestor chain.
	VisualParent() (VisualNode, bool)
}

// HitResolver maps interaction targets back to live model objects. All
// lookups fail soft: a stale identity or a markerless chain resolves to
// nil, never an error.
type HitResolver struct {
	ctx *EditorContext
}

// NewHitResolver creates a resolver over the shared editor state.
func NewHitResolver(ctx *EditorContext) *HitResolver {
	return &HitResolver{ctx: ctx}
}

// ResolveElement walks the visual ancestor chain of target until it
// finds an element marker and returns the live element it names. With
// sibling set, the hit is treated as an insertion point beside the
// element: its parent is returned instead.
func (r *HitResolver) ResolveElement(target VisualNode, sibling bool) *models.Element {
	e := r.elementAt(target)
	if e == nil {
		return nil
	}
	if sibling {
		return e.Parent()
	}
	return e
}

// ResolveContent resolves the content collection a drop lands in. In
// sibling mode that is the default-slot content of the hit element's
// parent; otherwise the first content-group marker up the chain.
func (r *HitResolver) ResolveContent(target VisualNode, sibling bool) *models.Content {
	if sibling {
		e := r.elementAt(target)
		if e == nil {
			return nil
		}
		parent := e.Parent()
		if parent == nil {
			return nil
		}
		content, ok := parent.ChildrenContent()
		if !ok {
			return nil
		}
		return content
	}
	for node := target; node != nil; {
		if marker, ok := node.IdentityMarker(); ok && marker.Kind == MarkerContent {
			if content, live := r.ctx.Project().ContentByID(marker.ID); live {
				return content
			}
			return nil
		}
		next, ok := node.VisualParent()
		if !ok {
			return nil
		}
		node = next
	}
	return nil
}

func (r *HitResolver) elementAt(target VisualNode) *models.Element {
	for node := target; node != nil; {
		if marker, ok := node.IdentityMarker(); ok && marker.Kind == MarkerElement {
			if e, live := r.ctx.Project().ElementByID(marker.ID); live {
				return e
			}
			return nil
		}
		next, ok := node.VisualParent()
		if !ok {
			return nil
		}
		node = next
	}
	return nil
}
