// Package logtail reads the tail of the composer session log for display in
// the TUI.
//
// # Reading
//
// Read extracts the last maxLines lines in one pass using a ring buffer of
// size maxLines, so memory stays O(maxLines) however large the log grows:
//
//  1. Store each scanned line at the current ring index
//  2. Advance the index, wrapping at maxLines
//  3. If fewer than maxLines were seen, return the filled prefix
//  4. Otherwise return the ring starting at the oldest entry
//
// Example usage:
//
//	lines, err := logtail.Read(cfg.LogPath(), 200)
//	if err != nil {
//		log.Printf("failed to read log: %v", err)
//	}
//
// # Levels
//
// The standard logger writes plain lines, so Classify infers a level from the
// wording: lines mentioning a failure or error are LevelError and lines
// mentioning a warning are LevelWarn. The UI maps levels onto palette colors.
//
// # Error Handling
//
// Read returns nil, nil for a missing file; the log is only created once a
// session starts. Other errors are wrapped.
package logtail
