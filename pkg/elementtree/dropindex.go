package elementtree

import "github.com/01DesignX/alva/pkg/models"

// ResolveDropIndex computes the insertion index for dropping dragged
// beside target. Cross-container drops insert at the target's position
// unchanged. Within one container, removing dragged from a lower index
// first shifts every later position down by one, so forward moves
// resolve to target position minus one. The boolean is false when the
// target has no resolvable container.
//
// Append-style drops (onto a container's open body, not beside a
// sibling) bypass this and use the container's current length.
func ResolveDropIndex(dragged, target *models.Element) (int, bool) {
	if dragged == nil || target == nil {
		return 0, false
	}
	newIndex := target.IndexInContainer()
	if newIndex < 0 {
		return 0, false
	}
	if dragged.Container() != target.Container() {
		return newIndex, true
	}
	currentIndex := dragged.IndexInContainer()
	if newIndex > currentIndex {
		return newIndex - 1, true
	}
	return newIndex, true
}
