package models

// SlotType distinguishes the single default children slot of a pattern
// from its named insertion points.
type SlotType string

const (
	SlotTypeChildren SlotType = "children"
	SlotTypeNamed    SlotType = "named"
)

// Slot is a named insertion point declared by a pattern. A pattern has
// exactly one children-type slot and any number of named slots.
type Slot struct {
	ID   string   `yaml:"id" json:"id"`
	Name string   `yaml:"name" json:"name"`
	Type SlotType `yaml:"type" json:"type"`
}

// IsChildren reports whether this is the pattern's default children slot.
func (s Slot) IsChildren() bool {
	return s.Type == SlotTypeChildren
}

// Pattern is the type descriptor for an element. It declares the ordered
// set of slots new elements of this type expose.
type Pattern struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Slots []Slot `yaml:"slots,omitempty" json:"slots,omitempty"`
}

// ChildrenSlot returns the pattern's default children slot.
func (p *Pattern) ChildrenSlot() (Slot, bool) {
	for _, slot := range p.Slots {
		if slot.IsChildren() {
			return slot, true
		}
	}
	return Slot{}, false
}

// SlotByID looks up a slot by its identity.
func (p *Pattern) SlotByID(id string) (Slot, bool) {
	for _, slot := range p.Slots {
		if slot.ID == id {
			return slot, true
		}
	}
	return Slot{}, false
}
