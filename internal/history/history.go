// Package history implements the editing history as a pure reducer over
// site documents: linear undo/redo stacks bounded at MaxUndo entries plus
// the unsaved-change counter.
package history

import "github.com/five82/composer/internal/site"

// MaxUndo is the capacity of the undo stack.
const MaxUndo = 50

// State is one point in an editing session. Undo and Redo are ordered
// oldest first; the last element is the next one popped.
type State struct {
	Current          site.Document
	Undo             []site.Document
	Redo             []site.Document
	ChangesSinceSave int
	LastSaved        *site.Document
}

// New returns a history with doc as the current document and empty stacks.
func New(doc site.Document) State {
	return State{Current: doc.Clone()}
}

// CanUndo reports whether an undo step is available.
func (s State) CanUndo() bool { return len(s.Undo) > 0 }

// CanRedo reports whether a redo step is available.
func (s State) CanRedo() bool { return len(s.Redo) > 0 }

// IsUnsaved reports whether changes were made since the last save.
func (s State) IsUnsaved() bool { return s.ChangesSinceSave > 0 }

// Action is a history transition. The set is closed: only the types in this
// package implement it.
type Action interface {
	action()
}

// ApplyChange merges Patch into the current document as one undoable step.
type ApplyChange struct{ Patch site.Patch }

// ApplyDirect merges Patch without recording history.
type ApplyDirect struct{ Patch site.Patch }

// Undo restores the previous document.
type Undo struct{}

// Redo reapplies the most recently undone document.
type Redo struct{}

// Save marks the current document as saved.
type Save struct{}

// Publish marks the current document as saved and published. Promoting it to
// the live copy is the persistence layer's job.
type Publish struct{}

func (ApplyChange) action() {}
func (ApplyDirect) action() {}
func (Undo) action() {}
func (Redo) action() {}
func (Save) action() {}
func (Publish) action() {}

// Reduce returns the state that results from applying a to s. s is not
// modified and the returned state shares no mutable structure with it
// beyond immutable stack entries.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ApplyChange:
		next := site.Merge(s.Current, a.Patch)
		s.Undo = push(s.Undo, s.Current.Clone())
		s.Current = next
		s.Redo = nil
		s.ChangesSinceSave++
		return s

	case ApplyDirect:
		s.Current = site.Merge(s.Current, a.Patch)
		return s

	case Undo:
		if len(s.Undo) == 0 {
			return s
		}
		n := len(s.Undo) - 1
		prev := s.Undo[n]
		s.Undo = s.Undo[:n]
		s.Redo = push(s.Redo, s.Current.Clone())
		s.Current = prev.Clone()
		if s.ChangesSinceSave > 0 {
			s.ChangesSinceSave--
		}
		return s

	case Redo:
		if len(s.Redo) == 0 {
			return s
		}
		n := len(s.Redo) - 1
		next := s.Redo[n]
		s.Redo = s.Redo[:n]
		s.Undo = push(s.Undo, s.Current.Clone())
		s.Current = next.Clone()
		s.ChangesSinceSave++
		return s

	case Save, Publish:
		saved := s.Current.Clone()
		s.LastSaved = &saved
		s.ChangesSinceSave = 0
		return s
	}
	return s
}

// push returns a new stack with doc on top, evicting the single oldest entry
// when the stack is already at MaxUndo. The input slice is never written.
func push(stack []site.Document, doc site.Document) []site.Document {
	start := 0
	if len(stack) >= MaxUndo {
		start = len(stack) - MaxUndo + 1
	}
	out := make([]site.Document, 0, len(stack)-start+1)
	out = append(out, stack[start:]...)
	return append(out, doc)
}
