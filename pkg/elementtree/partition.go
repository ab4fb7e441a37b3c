package elementtree

import "github.com/01DesignX/alva/pkg/models"

// SlotPartition splits a pattern's slots into the single default
// children slot and the named slots, preserving pattern order for the
// named ones.
type SlotPartition struct {
	Children    models.Slot
	HasChildren bool
	Named       []models.Slot
}

// PartitionSlots partitions the slots of a pattern. Patterns without a
// children slot (leaf patterns) yield HasChildren == false.
func PartitionSlots(pat *models.Pattern) SlotPartition {
	var part SlotPartition
	for _, slot := range pat.Slots {
		if slot.IsChildren() && !part.HasChildren {
			part.Children = slot
			part.HasChildren = true
			continue
		}
		if !slot.IsChildren() {
			part.Named = append(part.Named, slot)
		}
	}
	return part
}
