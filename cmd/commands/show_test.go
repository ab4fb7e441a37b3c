package commands

import (
	"strings"
	"testing"

	"github.com/01DesignX/alva/pkg/commands"
	"github.com/01DesignX/alva/pkg/elementtree"
	"github.com/01DesignX/alva/pkg/examples"
)

func TestBuildEntrySampleDocument(t *testing.T) {
	showSlots = true
	defer func() { showSlots = true }()

	project := examples.SampleProject()
	ctx := elementtree.NewEditorContext(project, commands.NewJournal(project))
	node := elementtree.NewProjector(ctx).Project(project.Root())
	if node == nil {
		t.Fatal("expected sample root to project")
	}

	entry := buildEntry(project, node)
	if entry.Name != "Landing Page" {
		t.Errorf("root name = %q, want %q", entry.Name, "Landing Page")
	}
	if entry.Pattern != "Page" {
		t.Errorf("root pattern = %q, want %q", entry.Pattern, "Page")
	}
	if len(entry.Children) != 3 {
		t.Fatalf("expected 3 top-level children, got %d", len(entry.Children))
	}

	card := entry.Children[1]
	if card.Name != "Feature Card" {
		t.Fatalf("second child = %q, want Feature Card", card.Name)
	}
	// Named slots project first, in pattern order, then default children.
	var names []string
	var slots []bool
	for _, child := range card.Children {
		names = append(names, child.Name)
		slots = append(slots, child.Slot)
	}
	want := []string{"Header", "Footer", "Feature Copy"}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("card child %d = %q, want %q", i, names[i], w)
		}
	}
	if !slots[0] || !slots[1] || slots[2] {
		t.Errorf("slot flags = %v, want [true true false]", slots)
	}
}

func TestBuildEntryHidesSlotGroups(t *testing.T) {
	showSlots = false
	defer func() { showSlots = true }()

	project := examples.SampleProject()
	ctx := elementtree.NewEditorContext(project, commands.NewJournal(project))
	entry := buildEntry(project, elementtree.NewProjector(ctx).Project(project.Root()))

	card := entry.Children[1]
	var names []string
	for _, child := range card.Children {
		if child.Slot {
			t.Errorf("slot group %q should be hidden", child.Name)
		}
		names = append(names, child.Name)
	}
	want := []string{"Feature Title", "Learn More", "Feature Copy"}
	if len(names) != len(want) {
		t.Fatalf("card children = %v, want %v", names, want)
	}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("card child %d = %q, want %q", i, names[i], w)
		}
	}
}

func TestFilterEntryKeepsAncestorsOfMatches(t *testing.T) {
	showSlots = true
	project := examples.SampleProject()
	ctx := elementtree.NewEditorContext(project, commands.NewJournal(project))
	entry := buildEntry(project, elementtree.NewProjector(ctx).Project(project.Root()))

	got, ok := filterEntry(entry, "feature title")
	if !ok {
		t.Fatal("expected a match for feature title")
	}
	if len(got.Children) != 1 || got.Children[0].Name != "Feature Card" {
		t.Fatalf("filtered top level = %+v", got.Children)
	}
	card := got.Children[0]
	if len(card.Children) != 1 || !card.Children[0].Slot || card.Children[0].Name != "Header" {
		t.Fatalf("filtered card children = %+v", card.Children)
	}
	if len(card.Children[0].Children) != 1 || card.Children[0].Children[0].Name != "Feature Title" {
		t.Errorf("header children = %+v", card.Children[0].Children)
	}

	if _, ok := filterEntry(entry, "no such element"); ok {
		t.Error("expected no match")
	}
}

func TestRenderEntryIndentsAndMarksSlots(t *testing.T) {
	entry := treeEntry{
		Name:    "Root",
		Pattern: "Box",
		Children: []treeEntry{
			{Name: "Header", Slot: true, Children: []treeEntry{
				{Name: "Title", Pattern: "Text"},
			}},
		},
	}

	var sb strings.Builder
	renderEntry(&sb, entry, 0)
	got := sb.String()

	want := "Root (Box)\n  ◇ Header\n    Title (Text)\n"
	if got != want {
		t.Errorf("rendered tree = %q, want %q", got, want)
	}
}
