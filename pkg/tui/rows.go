package tui

import "github.com/01DesignX/alva/pkg/elementtree"

var _ elementtree.VisualNode = (*row)(nil)

type rowKind int

const (
	rowElement rowKind = iota
	rowSlot
)

// row is one rendered line of the tree. Rows carry the identity marker
// and visual-parent link the hit resolver walks, so a row doubles as
// the opaque visual handle the core resolves against.
type row struct {
	node   *elementtree.ViewNode
	kind   rowKind
	depth  int
	parent elementtree.VisualNode
}

func (r *row) IdentityMarker() (elementtree.Marker, bool) {
	if r.kind == rowSlot {
		return elementtree.Marker{Kind: elementtree.MarkerContent, ID: r.node.ID}, true
	}
	return elementtree.Marker{Kind: elementtree.MarkerElement, ID: r.node.ID}, true
}

func (r *row) VisualParent() (elementtree.VisualNode, bool) {
	if r.parent == nil {
		return nil, false
	}
	return r.parent, true
}

// widgetRoot is the markerless visual root of the tree pane. The key
// router scopes events to its subtree.
type widgetRoot struct{}

func (widgetRoot) IdentityMarker() (elementtree.Marker, bool) { return elementtree.Marker{}, false }
func (widgetRoot) VisualParent() (elementtree.VisualNode, bool) {
	return nil, false
}

// paneOrigin is a key-event origin outside the tree subtree, used for
// overlays that must not leak keys into the tree.
type paneOrigin struct{ name string }

func (p *paneOrigin) IdentityMarker() (elementtree.Marker, bool) { return elementtree.Marker{}, false }
func (p *paneOrigin) VisualParent() (elementtree.VisualNode, bool) {
	return nil, false
}

// flattenRows turns a projected tree into the visible row list: open
// nodes contribute their children, closed ones only themselves. Slot
// groups always render open.
func flattenRows(root *elementtree.ViewNode, widget elementtree.VisualNode, showSlots bool) []*row {
	if root == nil {
		return nil
	}
	var rows []*row
	var walk func(node *elementtree.ViewNode, kind rowKind, depth int, parent elementtree.VisualNode)
	walk = func(node *elementtree.ViewNode, kind rowKind, depth int, parent elementtree.VisualNode) {
		r := &row{node: node, kind: kind, depth: depth, parent: parent}
		visible := kind == rowElement || showSlots
		childDepth := depth
		var childParent elementtree.VisualNode = parent
		if visible {
			rows = append(rows, r)
			childDepth = depth + 1
			childParent = r
		}
		if !node.Open {
			return
		}
		for _, child := range node.Children {
			childKind := rowElement
			if child.Slot {
				childKind = rowSlot
			}
			walk(child, childKind, childDepth, childParent)
		}
	}
	walk(root, rowElement, 0, widget)
	return rows
}
