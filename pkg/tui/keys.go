package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes one key event. The router decides whether the tree
// widget owns the event at all; the help overlay supplies a foreign
// origin so an open overlay swallows navigation instead of the tree.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	origin := a.keyOrigin
	if a.helpOpen {
		origin = a.helpOrigin
	}
	if !a.router.ShouldHandle(origin) {
		return a.handleOverlayKey(msg)
	}

	if a.ctx.Editing() {
		return a.handleEditKey(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "?":
		a.helpOpen = true
	case "up", "k":
		a.moveSelection(-1)
	case "down", "j":
		a.moveSelection(1)
	case "right", "l":
		a.openSelected()
	case "left", "h":
		a.closeSelected()
	case " ":
		a.sel.ToggleOpen(a.ctx.Selected())
	case "enter":
		a.sel.HandleEnter()
		a.syncEditInput()
	case "y":
		a.copySelectedName()
	case "u":
		if a.journal.Undo() {
			a.setStatus("Undone")
		}
	case "ctrl+r":
		if a.journal.Redo() {
			a.setStatus("Redone")
		}
	case "esc":
		a.drag.EndDrag()
	}
	return a, nil
}

// handleOverlayKey serves events the router kept away from the tree.
func (a *App) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		a.helpOpen = false
	}
	return a, nil
}

// handleEditKey drives the inline rename input.
func (a *App) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.commitDraftFromInput()
		a.sel.HandleEnter()
		a.syncEditInput()
	case "esc":
		a.sel.CancelEdit()
		a.syncEditInput()
	default:
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		a.sel.SetDraft(a.input.Value())
		return a, cmd
	}
	return a, nil
}

// commitDraftFromInput pushes the input widget's value into the
// controller before any transition that might auto-commit.
func (a *App) commitDraftFromInput() {
	if a.ctx.Editing() {
		a.sel.SetDraft(a.input.Value())
	}
}

// syncEditInput aligns the input widget with the edit state.
func (a *App) syncEditInput() {
	if a.ctx.Editing() {
		a.input.SetValue(a.sel.Draft())
		a.input.CursorEnd()
		a.input.Focus()
		return
	}
	a.input.Blur()
	a.input.SetValue("")
}

func (a *App) moveSelection(delta int) {
	a.refresh()
	var candidates []*row
	for _, r := range a.rows {
		if r.kind == rowElement {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return
	}
	current := -1
	if selected := a.ctx.Selected(); selected != nil {
		for i, r := range candidates {
			if r.node.ID == selected.ID() {
				current = i
				break
			}
		}
	}
	next := current + delta
	if current == -1 {
		next = 0
	}
	if next < 0 || next >= len(candidates) {
		return
	}
	a.commitDraftFromInput()
	a.sel.Select(a.hit.ResolveElement(candidates[next], false))
	a.syncEditInput()
	a.scrollToSelection()
}

func (a *App) openSelected() {
	if e := a.ctx.Selected(); e != nil && !e.Open() {
		a.sel.ToggleOpen(e)
	}
}

func (a *App) closeSelected() {
	e := a.ctx.Selected()
	if e == nil {
		return
	}
	if e.Open() {
		a.sel.ToggleOpen(e)
		return
	}
	if parent := e.Parent(); parent != nil {
		a.sel.Select(parent)
	}
}

func (a *App) copySelectedName() {
	e := a.ctx.Selected()
	if e == nil {
		return
	}
	if err := clipboard.WriteAll(e.Name()); err != nil {
		a.setStatus("Clipboard unavailable")
		return
	}
	a.setStatus("Copied name")
}

func (a *App) scrollToSelection() {
	selected := a.ctx.Selected()
	if selected == nil {
		return
	}
	idx := a.rowIndexOfElement(selected.ID())
	if idx < 0 {
		return
	}
	if idx < a.tree.YOffset {
		a.tree.SetYOffset(idx)
	}
	if idx >= a.tree.YOffset+a.tree.Height {
		a.tree.SetYOffset(idx - a.tree.Height + 1)
	}
}
