package models

import "testing"

func testPatterns(p *Project) {
	p.AddPattern(&Pattern{
		ID:   "box",
		Name: "Box",
		Slots: []Slot{
			{ID: "box-children", Name: "Children", Type: SlotTypeChildren},
		},
	})
	p.AddPattern(&Pattern{ID: "text", Name: "Text"})
}

func TestInsertMovesOwnership(t *testing.T) {
	p := NewProject()
	testPatterns(p)

	a := NewElement(p, "box", "A")
	b := NewElement(p, "box", "B")
	child := NewElement(p, "text", "Child")

	ca, _ := a.ChildrenContent()
	cb, _ := b.ChildrenContent()

	ca.Append(child)
	if child.Container() != ca || child.Parent() != a {
		t.Fatal("append did not set ownership")
	}

	cb.Insert(child, 0)
	if child.Container() != cb || child.Parent() != b {
		t.Error("insert did not move ownership to the new container")
	}
	if ca.IndexOf(child) != -1 {
		t.Error("element still listed in its old container")
	}
	if got := child.IndexInContainer(); got != 0 {
		t.Errorf("IndexInContainer() = %d, want 0", got)
	}
}

func TestInsertClampsIndex(t *testing.T) {
	p := NewProject()
	testPatterns(p)
	box := NewElement(p, "box", "Box")
	c, _ := box.ChildrenContent()
	c.Append(NewElement(p, "text", "one"))

	late := NewElement(p, "text", "late")
	c.Insert(late, 99)
	if got := late.IndexInContainer(); got != 1 {
		t.Errorf("index clamped to %d, want 1", got)
	}

	early := NewElement(p, "text", "early")
	c.Insert(early, -5)
	if got := early.IndexInContainer(); got != 0 {
		t.Errorf("index clamped to %d, want 0", got)
	}
}

func TestRemoveDropsSubtreeFromIndex(t *testing.T) {
	p := NewProject()
	testPatterns(p)
	root := NewElement(p, "box", "Root")
	p.SetRoot(root)
	mid := NewElement(p, "box", "Mid")
	leaf := NewElement(p, "text", "Leaf")
	rc, _ := root.ChildrenContent()
	mc, _ := mid.ChildrenContent()
	rc.Append(mid)
	mc.Append(leaf)

	p.Remove(mid)

	if _, ok := p.ElementByID(mid.ID()); ok {
		t.Error("removed element still resolvable")
	}
	if _, ok := p.ElementByID(leaf.ID()); ok {
		t.Error("descendant of removed element still resolvable")
	}
	if _, ok := p.ContentByID(mc.ID()); ok {
		t.Error("content of removed element still resolvable")
	}
	if rc.Len() != 0 {
		t.Error("removed element still in its container")
	}
}

func TestBatchCoalescesNotifications(t *testing.T) {
	p := NewProject()
	testPatterns(p)
	root := NewElement(p, "box", "Root")
	p.SetRoot(root)

	notifications := 0
	p.OnChange(func() { notifications++ })

	p.Batch(func() {
		root.SetSelected(true)
		root.SetOpen(true)
		p.Batch(func() {
			root.SetHighlighted(true)
		})
	})

	if notifications != 1 {
		t.Errorf("batch emitted %d notifications, want 1", notifications)
	}

	// Writes outside a batch notify immediately, once per write.
	root.SetHighlighted(false)
	if notifications != 2 {
		t.Errorf("unbatched write emitted %d total, want 2", notifications)
	}

	// No-op writes stay silent.
	root.SetOpen(true)
	if notifications != 2 {
		t.Errorf("no-op write emitted a notification")
	}
}

func TestDescendantsDepthFirst(t *testing.T) {
	p := NewProject()
	testPatterns(p)
	root := NewElement(p, "box", "Root")
	a := NewElement(p, "box", "A")
	a1 := NewElement(p, "text", "A1")
	b := NewElement(p, "text", "B")
	rc, _ := root.ChildrenContent()
	ac, _ := a.ChildrenContent()
	rc.Append(a)
	ac.Append(a1)
	rc.Append(b)

	got := root.Descendants()
	want := []*Element{a, a1, b}
	if len(got) != len(want) {
		t.Fatalf("Descendants() returned %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Descendants()[%d] = %q, want %q", i, got[i].Name(), want[i].Name())
		}
	}
}
