// Package state provides the builder state container for a composer session.
//
// # Overview
//
// A Store owns one history.State and is the only place where editing
// transitions happen. The UI issues field writes and history commands; the
// persistence syncer subscribes to changes. Every write goes through the
// history reducer, so each call is exactly one undoable step.
//
//	UI goroutine:                    Syncer goroutine:
//	┌──────────────────┐            ┌──────────────────┐
//	│ store.SetLayout()│            │                  │
//	│ store.Undo()     │            │                  │
//	│       ↓          │            │                  │
//	│ history.Reduce() │──notify───→│ wake             │
//	│       ↓          │            │ store.Document() │
//	│ store.Snapshot() │            │ persist.Write()  │
//	└──────────────────┘            └──────────────────┘
//
// # Core Types
//
// Store:
//   - Holds the current document, the bounded undo and redo stacks and the
//     unsaved-change counter
//   - Guards them with a sync.RWMutex
//   - Field setters (SetColors, UpdateLayout, AddPage...) build a patch and
//     dispatch history.ApplyChange
//
// Snapshot:
//   - Point-in-time view returned by value with a cloned document
//   - Carries CanUndo, CanRedo, IsUnsaved and the undo/redo depth
//
// # Write Semantics
//
// SetX(v) replaces a field group; UpdateX(fn) replaces it with fn(prev),
// where prev is a copy. Layout writes recompute the HeroGradient CSS.
// Color writes clear ThemeName when the colors no longer match the preset.
//
//	store.ApplyTheme("Ocean")   // themeName + colors, one undo step
//	store.Undo()                // back to the previous theme
//
// ApplyChangeDirect merges a patch without touching the history. Modify runs
// a patch builder against the current document under the write lock, which
// is how the compose package makes read-modify-write edits atomic.
//
// # Notifications
//
// Subscribe registers a Listener. Listeners run after every transition that
// changed the current document and after Publish, on the caller's goroutine,
// once the lock is released. Each listener receives its own document copy.
// Undo and Redo on empty stacks and Save do not notify.
//
// Publish also raises a one-shot flag. TakeSnapshot reads and clears it
// together with the document, so the syncer promotes the published document
// to the live copy exactly once. TakePublish clears it without a snapshot.
//
// # Read-only Mode
//
// Options.ReadOnly is used when rendering the published site. Every mutation
// becomes a no-op and ApplyTheme reports false.
package state
