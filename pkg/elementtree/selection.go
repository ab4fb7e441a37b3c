package elementtree

import (
	"github.com/01DesignX/alva/pkg/commands"
	"github.com/01DesignX/alva/pkg/models"
)

// SelectionRenameController owns the Idle -> Selected -> Editing state
// machine. At most one element is selected or editing at a time; a new
// selection always supersedes the prior one.
//
// While editing, the draft name lives in the controller (the host's
// input widget writes it through SetDraft); the model keeps the
// pre-edit name until commit, so cancel needs no model write.
type SelectionRenameController struct {
	ctx   *EditorContext
	draft string
}

// NewSelectionRenameController creates the controller over the shared
// state.
func NewSelectionRenameController(ctx *EditorContext) *SelectionRenameController {
	return &SelectionRenameController{ctx: ctx}
}

// ToggleOpen handles a click on an element's expand affordance. The
// selection is unchanged.
func (s *SelectionRenameController) ToggleOpen(e *models.Element) {
	if e == nil {
		return
	}
	e.ToggleOpen()
}

// Select handles a click on an element's body. Selecting a different
// element while a rename is in flight commits the rename first.
func (s *SelectionRenameController) Select(e *models.Element) {
	if e == nil || e == s.ctx.selected {
		return
	}
	if s.ctx.editing {
		s.CommitEdit()
	}
	s.ctx.project.Batch(func() {
		if prev := s.ctx.selected; prev != nil {
			prev.SetSelected(false)
		}
		e.SetSelected(true)
		s.ctx.selected = e
	})
	s.ctx.checkInvariants()
}

// ClickLabel handles a click on an element's label: on the already
// selected element it opens the inline rename; otherwise it selects.
func (s *SelectionRenameController) ClickLabel(e *models.Element) {
	if e != nil && e == s.ctx.selected && !s.ctx.editing {
		s.BeginEdit()
		return
	}
	s.Select(e)
}

// BeginEdit starts inline rename of the current selection.
func (s *SelectionRenameController) BeginEdit() {
	e := s.ctx.selected
	if e == nil || s.ctx.editing {
		return
	}
	s.ctx.project.Batch(func() {
		s.ctx.editing = true
		s.ctx.preEditName = e.Name()
		s.draft = e.Name()
		e.SetNameEditable(true)
	})
}

// SetDraft records the edited name as the user types.
func (s *SelectionRenameController) SetDraft(name string) {
	if s.ctx.editing {
		s.draft = name
	}
}

// Draft returns the in-flight edited name.
func (s *SelectionRenameController) Draft() string { return s.draft }

// HandleEnter commits an in-flight rename, or starts one when an
// element is selected but not yet editing.
func (s *SelectionRenameController) HandleEnter() {
	if s.ctx.editing {
		s.CommitEdit()
		return
	}
	s.BeginEdit()
}

// CommitEdit submits exactly one rename command carrying the draft name
// and returns to Selected. Loss of focus commits the same way.
func (s *SelectionRenameController) CommitEdit() {
	e := s.ctx.selected
	if !s.ctx.editing || e == nil {
		return
	}
	name := s.draft
	s.ctx.project.Batch(func() {
		s.ctx.editing = false
		e.SetNameEditable(false)
	})
	s.ctx.executor.Submit(commands.NewRename(e, name))
}

// CancelEdit discards the draft and returns to Selected without
// submitting anything. The model still carries the pre-edit name.
func (s *SelectionRenameController) CancelEdit() {
	e := s.ctx.selected
	if !s.ctx.editing || e == nil {
		return
	}
	s.ctx.project.Batch(func() {
		s.draft = s.ctx.preEditName
		s.ctx.editing = false
		e.SetNameEditable(false)
	})
}

// HandleBlur is the focus-loss transition: same as Enter while editing.
func (s *SelectionRenameController) HandleBlur() {
	if s.ctx.editing {
		s.CommitEdit()
	}
}
