package state

import (
	"sync"

	"github.com/five82/composer/internal/history"
	"github.com/five82/composer/internal/site"
)

// PresetLookup resolves a named color preset.
type PresetLookup interface {
	Lookup(name string) (site.Colors, bool)
}

// Options configure a Store.
type Options struct {
	// Initial seeds the session. Nil uses site.DefaultDocument().
	Initial *site.Document
	// Presets backs ApplyTheme. Nil disables named presets.
	Presets PresetLookup
	// ReadOnly turns every mutation into a no-op (public render mode).
	ReadOnly bool
}

// Change is delivered to listeners after a transition.
type Change struct {
	Document site.Document
	// Publish is set when the transition was a publish.
	Publish bool
}

// Listener observes store transitions.
type Listener func(Change)

// Snapshot is a point-in-time view of the store.
type Snapshot struct {
	Document         site.Document
	CanUndo          bool
	CanRedo          bool
	IsUnsaved        bool
	ChangesSinceSave int
	UndoDepth        int
	RedoDepth        int
	LastSaved        *site.Document
	ReadOnly         bool
	// PublishPending is set by TakeSnapshot when a publish happened since
	// the previous TakeSnapshot or TakePublish.
	PublishPending bool
}

// Store owns the editing history of one session and republishes the current
// document to subscribers.
type Store struct {
	mu       sync.RWMutex
	history  history.State
	presets  PresetLookup
	readOnly bool

	listeners []subscription
	nextID    int

	publishPending bool
}

type subscription struct {
	id int
	fn Listener
}

// New creates a Store seeded from opts.
func New(opts Options) *Store {
	doc := site.DefaultDocument()
	if opts.Initial != nil {
		doc = opts.Initial.Clone()
	}
	return &Store{
		history:  history.New(doc),
		presets:  opts.Presets,
		readOnly: opts.ReadOnly,
	}
}

// Subscribe registers fn to run after every transition that changes the
// current document, and after every publish. fn runs synchronously on the
// goroutine that made the change, after the store lock is released. The
// returned func removes the subscription.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// TakeSnapshot returns a copy of the current state together with the
// publish flag and clears the flag. Both are read under one lock, so a
// pending publish always comes with the document it published.
func (s *Store) TakeSnapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshotLocked()
	snap.PublishPending = s.publishPending
	s.publishPending = false
	return snap
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Document:         s.history.Current.Clone(),
		CanUndo:          s.history.CanUndo(),
		CanRedo:          s.history.CanRedo(),
		IsUnsaved:        s.history.IsUnsaved(),
		ChangesSinceSave: s.history.ChangesSinceSave,
		UndoDepth:        len(s.history.Undo),
		RedoDepth:        len(s.history.Redo),
		ReadOnly:         s.readOnly,
	}
	if s.history.LastSaved != nil {
		saved := s.history.LastSaved.Clone()
		snap.LastSaved = &saved
	}
	return snap
}

// Document returns a copy of the current document.
func (s *Store) Document() site.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Current.Clone()
}

// CanUndo reports whether Undo would change the document.
func (s *Store) CanUndo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change the document.
func (s *Store) CanRedo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.CanRedo()
}

// IsUnsaved reports whether changes were made since the last save.
func (s *Store) IsUnsaved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.IsUnsaved()
}

// ReadOnly reports whether the store rejects mutations.
func (s *Store) ReadOnly() bool {
	return s.readOnly
}

// TakePublish reports whether a publish happened since the last call and
// clears the flag.
func (s *Store) TakePublish() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.publishPending
	s.publishPending = false
	return pending
}

// ApplyChange merges p into the current document as one undo step. A
// patch touching the gradient fields without HeroGradient gets the CSS
// recomputed.
func (s *Store) ApplyChange(p site.Patch) {
	s.dispatch(func(cur site.Document) (history.Action, bool) {
		return history.ApplyChange{Patch: syncGradient(cur, p)}, true
	})
}

// Modify builds a patch from a copy of the current document and applies it
// as one undo step. An empty patch is not dispatched. fn runs while the
// store is locked and must not call back into the store.
func (s *Store) Modify(fn func(doc site.Document) site.Patch) {
	s.dispatch(func(cur site.Document) (history.Action, bool) {
		p := fn(cur.Clone())
		if p.IsEmpty() {
			return nil, false
		}
		return history.ApplyChange{Patch: syncGradient(cur, p)}, true
	})
}

// ApplyChangeDirect merges p without recording an undo step or counting a
// change. Gradient fields are handled as in ApplyChange.
func (s *Store) ApplyChangeDirect(p site.Patch) {
	s.dispatch(func(cur site.Document) (history.Action, bool) {
		return history.ApplyDirect{Patch: syncGradient(cur, p)}, true
	})
}

// syncGradient fills in HeroGradient when p changes the gradient type,
// angle or stops and leaves the CSS string unset. p itself is not modified.
func syncGradient(cur site.Document, p site.Patch) site.Patch {
	lp := p.Layout
	if lp == nil || lp.HeroGradient != nil {
		return p
	}
	if lp.HeroGradientType == nil && lp.HeroGradientAngle == nil && lp.HeroGradientStops == nil {
		return p
	}
	merged := site.Merge(cur, site.Patch{Layout: lp}).Layout
	next := *lp
	next.HeroGradient = site.Ptr(merged.GradientCSS())
	p.Layout = &next
	return p
}

// Undo restores the previous document. It is a no-op with nothing to undo.
func (s *Store) Undo() {
	s.dispatch(func(site.Document) (history.Action, bool) {
		return history.Undo{}, true
	})
}

// Redo reapplies the last undone document. It is a no-op with nothing to redo.
func (s *Store) Redo() {
	s.dispatch(func(site.Document) (history.Action, bool) {
		return history.Redo{}, true
	})
}

// Save marks the current document as saved.
func (s *Store) Save() {
	s.dispatch(func(site.Document) (history.Action, bool) {
		return history.Save{}, true
	})
}

// Publish saves and raises the one-shot publish flag so the persistence
// layer promotes the document to the live copy.
func (s *Store) Publish() {
	s.dispatch(func(site.Document) (history.Action, bool) {
		return history.Publish{}, true
	})
}

// dispatch runs one reducer transition under the lock and notifies
// listeners afterwards.
func (s *Store) dispatch(build func(cur site.Document) (history.Action, bool)) {
	if s.readOnly {
		return
	}

	s.mu.Lock()
	action, ok := build(s.history.Current)
	if !ok {
		s.mu.Unlock()
		return
	}

	before := s.history
	s.history = history.Reduce(s.history, action)

	notify := false
	publish := false
	switch action.(type) {
	case history.ApplyChange, history.ApplyDirect:
		notify = true
	case history.Undo:
		notify = before.CanUndo()
	case history.Redo:
		notify = before.CanRedo()
	case history.Publish:
		s.publishPending = true
		notify, publish = true, true
	}

	var listeners []Listener
	var doc site.Document
	if notify && len(s.listeners) > 0 {
		listeners = make([]Listener, len(s.listeners))
		for i, sub := range s.listeners {
			listeners[i] = sub.fn
		}
		doc = s.history.Current.Clone()
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(Change{Document: doc.Clone(), Publish: publish})
	}
}
