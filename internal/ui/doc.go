// Package ui provides the terminal editor for composer sites.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds the editor state and reads the
// document through state.Store; every edit goes through compose.Composer or
// a store setter, so undo, redo and persistence see the same changes the
// screen shows. The model never keeps its own copy of document data beyond
// the last Snapshot it rendered.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and Run
//   - input_handlers.go: key dispatch and the editing actions
//   - render.go: header, command bar, panes and footer
//   - preview.go: read-only document summary for the preview pane
//   - modal.go: Modal interface, the add-page dialog and the session log
//   - help.go: help overlay generated from the key map
//   - palette.go: editor color palettes (Nightfox, Kanagawa, Slate)
//
// # Panes
//
//   - Pages: every page, home first; ● marks the page being edited
//   - Sections: in single-page mode the canonical order with [x] marking
//     sections shown on the page; in multi-page mode the active page's
//     sections followed by the ones that can still be added
//   - Preview: colors, typography, layout, hero gradient and page contents
//
// # Key Bindings
//
//   - tab: Switch focus between pages and sections
//   - j/k: Move the cursor
//   - [ / ]: Previous/next page
//   - enter: Edit the page under the cursor (pages pane)
//   - Space: Toggle the section under the cursor
//   - J/K: Move the section down/up
//   - R: Reset the single-page order
//   - m: Toggle multi-page layout
//   - a / d: Add/delete page
//   - t: Apply the next color preset
//   - u, U or ctrl+r: Undo, redo
//   - s / P: Save, publish
//   - v: Toggle preview, pgup/pgdown scroll it
//   - L: Show the tail of the session log
//   - T: Cycle editor palette
//   - ?: Help
//   - q or ctrl+c: Quit
//
// Opening the live copy makes the store read-only; edit keys then only
// report that in the footer.
package ui
