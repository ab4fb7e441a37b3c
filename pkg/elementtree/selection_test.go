package elementtree

import (
	"testing"

	"github.com/01DesignX/alva/pkg/commands"
	"github.com/01DesignX/alva/pkg/models"
)

func TestSelectionLifecycle(t *testing.T) {
	ctx, p, _ := newTestContext()
	root := models.NewElement(p, "box", "Root")
	p.SetRoot(root)
	a := models.NewElement(p, "text", "A")
	b := models.NewElement(p, "text", "B")
	mustChildren(root).Append(a)
	mustChildren(root).Append(b)

	sel := NewSelectionRenameController(ctx)

	// Idle -> Selected on body click.
	sel.Select(a)
	if ctx.Selected() != a || !a.Selected() {
		t.Fatal("Select() did not make A the selection")
	}

	// Selecting another element supersedes the prior one.
	sel.Select(b)
	if a.Selected() {
		t.Error("prior selection flag not cleared")
	}
	if ctx.Selected() != b || !b.Selected() {
		t.Error("B did not become the selection")
	}

	// Label click on the already-selected element enters editing.
	sel.ClickLabel(b)
	if !ctx.Editing() || !b.NameEditable() {
		t.Error("label click on the selection did not start inline edit")
	}

	// Label click on a different element is just a select.
	sel.CancelEdit()
	sel.ClickLabel(a)
	if ctx.Selected() != a || ctx.Editing() {
		t.Error("label click on a non-selected element must select, not edit")
	}
}

func TestToggleOpenLeavesSelectionAlone(t *testing.T) {
	ctx, p, _ := newTestContext()
	root := models.NewElement(p, "box", "Root")
	p.SetRoot(root)
	a := models.NewElement(p, "box", "A")
	mustChildren(root).Append(a)

	sel := NewSelectionRenameController(ctx)
	sel.Select(root)
	sel.ToggleOpen(a)

	if !a.Open() {
		t.Error("ToggleOpen() did not open the element")
	}
	if ctx.Selected() != root {
		t.Error("expand affordance click must not move the selection")
	}
	sel.ToggleOpen(a)
	if a.Open() {
		t.Error("second ToggleOpen() did not close the element")
	}
}

func TestEnterCommitsExactlyOneRename(t *testing.T) {
	ctx, p, exec := newTestContext()
	root := models.NewElement(p, "box", "Root")
	p.SetRoot(root)

	sel := NewSelectionRenameController(ctx)
	sel.Select(root)

	// Enter while selected starts editing.
	sel.HandleEnter()
	if !ctx.Editing() {
		t.Fatal("Enter while selected must start inline edit")
	}

	sel.SetDraft("Renamed Root")
	sel.HandleEnter()

	if ctx.Editing() {
		t.Error("Enter while editing must return to Selected")
	}
	if got := len(exec.submitted); got != 1 {
		t.Fatalf("submitted %d commands, want exactly 1", got)
	}
	if _, ok := exec.submitted[0].(*commands.Rename); !ok {
		t.Errorf("submitted %T, want *commands.Rename", exec.submitted[0])
	}
	if root.Name() != "Renamed Root" {
		t.Errorf("Name() = %q, want %q", root.Name(), "Renamed Root")
	}
	if ctx.Selected() != root {
		t.Error("commit must keep the element selected")
	}
}

func TestEscapeRevertsWithoutCommand(t *testing.T) {
	ctx, p, exec := newTestContext()
	root := models.NewElement(p, "box", "Root")
	p.SetRoot(root)

	sel := NewSelectionRenameController(ctx)
	sel.Select(root)
	sel.BeginEdit()
	sel.SetDraft("Half-typed")
	sel.CancelEdit()

	if ctx.Editing() {
		t.Error("Escape must return to Selected")
	}
	if len(exec.submitted) != 0 {
		t.Errorf("Escape submitted %d commands, want none", len(exec.submitted))
	}
	if root.Name() != "Root" {
		t.Errorf("Name() = %q, want the pre-edit %q", root.Name(), "Root")
	}
	if sel.Draft() != "Root" {
		t.Errorf("Draft() = %q, want reverted to %q", sel.Draft(), "Root")
	}
	if ctx.Selected() != root || !root.Selected() {
		t.Error("Escape must keep the element selected")
	}
}

func TestBlurCommitsLikeEnter(t *testing.T) {
	ctx, p, exec := newTestContext()
	root := models.NewElement(p, "box", "Root")
	p.SetRoot(root)

	sel := NewSelectionRenameController(ctx)
	sel.Select(root)
	sel.BeginEdit()
	sel.SetDraft("Blurred")
	sel.HandleBlur()

	if ctx.Editing() {
		t.Error("blur must end the edit")
	}
	if len(exec.submitted) != 1 {
		t.Fatalf("blur submitted %d commands, want 1", len(exec.submitted))
	}
	if root.Name() != "Blurred" {
		t.Errorf("Name() = %q, want %q", root.Name(), "Blurred")
	}
}

func TestSelectingElsewhereAutoCommits(t *testing.T) {
	ctx, p, exec := newTestContext()
	root := models.NewElement(p, "box", "Root")
	p.SetRoot(root)
	other := models.NewElement(p, "text", "Other")
	mustChildren(root).Append(other)

	sel := NewSelectionRenameController(ctx)
	sel.Select(root)
	sel.BeginEdit()
	sel.SetDraft("Mid-edit")
	sel.Select(other)

	if len(exec.submitted) != 1 {
		t.Fatalf("selection change submitted %d commands, want the auto-commit", len(exec.submitted))
	}
	if root.Name() != "Mid-edit" {
		t.Errorf("Name() = %q, want the committed %q", root.Name(), "Mid-edit")
	}
	if ctx.Selected() != other || ctx.Editing() {
		t.Error("selection must move to the new element with no edit in flight")
	}
	if root.NameEditable() {
		t.Error("prior element must drop its editable flag")
	}
}
