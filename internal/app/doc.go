// Package app wires configuration, storage, the builder state container and
// the UI into one composer session.
//
// # Startup
//
//  1. Load ~/.config/composer/config.toml (or the -config path)
//  2. Redirect the standard logger to <data_dir>/composer.log
//  3. Load UI preferences
//  4. Open the sqlite or file storage backend
//  5. Seed the session from the working copy, the live copy (-live) or the
//     default document (-fresh, or resume = false)
//  6. Start the Syncer unless the session is read-only
//  7. Run the TUI until the user quits
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()      data_dir, storage, resume
//	       ├─────> persist.Open()     working/live document store
//	       ├─────> state.New()        builder state container
//	       ├─────> StartSyncer()      subscribe + background writer
//	       └─────> ui.Run()           TUI (blocks)
//
//	Syncer:
//	┌─────────────────────────────────────────┐
//	│ store listener ──signal──> wake chan(1) │
//	│ goroutine:                              │
//	│  ├─> store.TakeSnapshot()               │
//	│  ├─> Write(working)                     │
//	│  └─> PublishPending? Write(live)        │
//	└─────────────────────────────────────────┘
//
// Wakes that arrive while a write is running collapse into one, so a burst
// of edits costs at most one extra write.
//
// # Error Handling
//
// Fatal (returned from Run):
//   - Invalid config or unknown storage backend
//   - Data dir, log file or storage cannot be opened
//   - The stored working copy exists but cannot be decoded
//   - -live with nothing published
//
// Recoverable (logged, session continues):
//   - Any document write. The Syncer records the last failure for the
//     status line and writes the full document again on the next change.
package app
