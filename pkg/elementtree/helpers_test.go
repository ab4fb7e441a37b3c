package elementtree

import (
	"github.com/01DesignX/alva/pkg/commands"
	"github.com/01DesignX/alva/pkg/models"
)

// Test fixtures

// boxPattern has only the default children slot; pagePattern adds two
// named slots; textPattern is a leaf with no slots at all.
func newTestProject() *models.Project {
	p := models.NewProject()
	p.AddPattern(&models.Pattern{
		ID:   "box",
		Name: "Box",
		Slots: []models.Slot{
			{ID: "box-children", Name: "Children", Type: models.SlotTypeChildren},
		},
	})
	p.AddPattern(&models.Pattern{
		ID:   "page",
		Name: "Page",
		Slots: []models.Slot{
			{ID: "page-children", Name: "Children", Type: models.SlotTypeChildren},
			{ID: "page-header", Name: "Header", Type: models.SlotTypeNamed},
			{ID: "page-footer", Name: "Footer", Type: models.SlotTypeNamed},
		},
	})
	p.AddPattern(&models.Pattern{
		ID:    "text",
		Name:  "Text",
		Slots: nil,
	})
	return p
}

type recordingExecutor struct {
	project   *models.Project
	submitted []commands.Command
}

func (r *recordingExecutor) Submit(cmd commands.Command) {
	r.submitted = append(r.submitted, cmd)
	cmd.Execute(r.project)
}

func newTestContext() (*EditorContext, *models.Project, *recordingExecutor) {
	p := newTestProject()
	exec := &recordingExecutor{project: p}
	return NewEditorContext(p, exec), p, exec
}

// fakeVisual is a minimal visual-node chain for hit resolution tests.
type fakeVisual struct {
	marker *Marker
	parent *fakeVisual
}

func (f *fakeVisual) IdentityMarker() (Marker, bool) {
	if f.marker == nil {
		return Marker{}, false
	}
	return *f.marker, true
}

func (f *fakeVisual) VisualParent() (VisualNode, bool) {
	if f.parent == nil {
		return nil, false
	}
	return f.parent, true
}

func elementMarker(id string) *Marker { return &Marker{Kind: MarkerElement, ID: id} }
func contentMarker(id string) *Marker { return &Marker{Kind: MarkerContent, ID: id} }

// mustChildren fetches the default-slot content or panics; fixtures
// only call it on patterns known to declare one.
func mustChildren(e *models.Element) *models.Content {
	c, ok := e.ChildrenContent()
	if !ok {
		panic("fixture element has no children content")
	}
	return c
}
