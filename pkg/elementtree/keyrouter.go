package elementtree

// KeyRouter scopes keyboard events to one tree widget. An event is
// handled here only when it originates from the designated global
// fallback origin or from inside the widget's own visual subtree;
// anything else is left for other widgets, not swallowed.
type KeyRouter struct {
	root     VisualNode
	fallback VisualNode
}

// NewKeyRouter creates a router for the widget rooted at root. fallback
// is the host's global key origin (events with no focused widget).
func NewKeyRouter(root, fallback VisualNode) *KeyRouter {
	return &KeyRouter{root: root, fallback: fallback}
}

// ShouldHandle reports whether a key event from origin belongs to this
// widget.
func (k *KeyRouter) ShouldHandle(origin VisualNode) bool {
	if origin == nil {
		return false
	}
	if origin == k.fallback {
		return true
	}
	for node := origin; node != nil; {
		if node == k.root {
			return true
		}
		next, ok := node.VisualParent()
		if !ok {
			return false
		}
		node = next
	}
	return false
}
