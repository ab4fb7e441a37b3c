package commands

import "github.com/01DesignX/alva/pkg/models"

// Journal is an Executor that applies commands against a project and
// keeps linear undo/redo history. Submitting a new command truncates
// the redo branch.
type Journal struct {
	project *models.Project
	done    []Command
	undone  []Command
}

// NewJournal creates a journal bound to a project.
func NewJournal(p *models.Project) *Journal {
	return &Journal{project: p}
}

// Submit executes cmd and records it. Commands whose preconditions
// failed are dropped, not recorded.
func (j *Journal) Submit(cmd Command) {
	if !cmd.Execute(j.project) {
		return
	}
	j.done = append(j.done, cmd)
	j.undone = nil
}

// Undo reverts the most recent command. Returns false when there is
// nothing to undo.
func (j *Journal) Undo() bool {
	if len(j.done) == 0 {
		return false
	}
	cmd := j.done[len(j.done)-1]
	j.done = j.done[:len(j.done)-1]
	if !cmd.Undo(j.project) {
		return false
	}
	j.undone = append(j.undone, cmd)
	return true
}

// Redo re-applies the most recently undone command.
func (j *Journal) Redo() bool {
	if len(j.undone) == 0 {
		return false
	}
	cmd := j.undone[len(j.undone)-1]
	j.undone = j.undone[:len(j.undone)-1]
	if !cmd.Execute(j.project) {
		return false
	}
	j.done = append(j.done, cmd)
	return true
}

// CanUndo reports whether history holds an undoable command.
func (j *Journal) CanUndo() bool { return len(j.done) > 0 }

// CanRedo reports whether history holds a redoable command.
func (j *Journal) CanRedo() bool { return len(j.undone) > 0 }
