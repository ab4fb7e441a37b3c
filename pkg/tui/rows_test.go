package tui

import (
	"testing"

	"github.com/01DesignX/alva/pkg/elementtree"
)

func sampleViewTree() *elementtree.ViewNode {
	return &elementtree.ViewNode{
		ID:    "root",
		Title: "Root",
		Open:  true,
		Children: []*elementtree.ViewNode{
			{
				ID:    "header-content",
				Title: "Header",
				Slot:  true,
				Open:  true,
				Children: []*elementtree.ViewNode{
					{ID: "headline", Title: "Headline"},
				},
			},
			{
				ID:    "closed-box",
				Title: "Closed Box",
				Children: []*elementtree.ViewNode{
					{ID: "hidden", Title: "Hidden"},
				},
			},
			{ID: "leaf", Title: "Leaf"},
		},
	}
}

func TestFlattenRows(t *testing.T) {
	widget := widgetRoot{}
	rows := flattenRows(sampleViewTree(), widget, true)

	wantTitles := []string{"Root", "Header", "Headline", "Closed Box", "Leaf"}
	if len(rows) != len(wantTitles) {
		t.Fatalf("flattenRows() produced %d rows, want %d", len(rows), len(wantTitles))
	}
	for i, title := range wantTitles {
		if rows[i].node.Title != title {
			t.Errorf("rows[%d].Title = %q, want %q", i, rows[i].node.Title, title)
		}
	}

	if rows[1].kind != rowSlot {
		t.Error("the Header group must flatten as a slot row")
	}
	if rows[2].depth != 2 {
		t.Errorf("Headline depth = %d, want 2 (under root and slot group)", rows[2].depth)
	}

	// A closed container contributes itself but not its children.
	for _, r := range rows {
		if r.node.Title == "Hidden" {
			t.Error("children of a closed container must not flatten")
		}
	}
}

func TestFlattenRowsHidesSlotGroups(t *testing.T) {
	widget := widgetRoot{}
	rows := flattenRows(sampleViewTree(), widget, false)

	wantTitles := []string{"Root", "Headline", "Closed Box", "Leaf"}
	if len(rows) != len(wantTitles) {
		t.Fatalf("flattenRows() produced %d rows, want %d", len(rows), len(wantTitles))
	}
	if rows[1].node.Title != "Headline" || rows[1].depth != 1 {
		t.Errorf("with slot rows hidden, Headline must sit directly under root, got depth %d", rows[1].depth)
	}
}

func TestRowVisualChainReachesWidgetRoot(t *testing.T) {
	widget := widgetRoot{}
	rows := flattenRows(sampleViewTree(), widget, true)

	// Headline -> Header group -> Root -> widget root.
	node := elementtree.VisualNode(rows[2])
	steps := 0
	for {
		parent, ok := node.VisualParent()
		if !ok {
			break
		}
		node = parent
		steps++
	}
	if node != elementtree.VisualNode(widget) {
		t.Error("ancestor chain does not end at the widget root")
	}
	if steps != 3 {
		t.Errorf("chain length = %d, want 3", steps)
	}

	marker, ok := rows[1].IdentityMarker()
	if !ok || marker.Kind != elementtree.MarkerContent || marker.ID != "header-content" {
		t.Errorf("slot row marker = %+v, want content marker for header-content", marker)
	}
	marker, ok = rows[0].IdentityMarker()
	if !ok || marker.Kind != elementtree.MarkerElement || marker.ID != "root" {
		t.Errorf("element row marker = %+v, want element marker for root", marker)
	}
}
