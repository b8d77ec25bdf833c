// Package config loads composer's TOML configuration.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. An explicitly provided path
//  2. Otherwise ~/.config/composer/config.toml
//  3. A missing file yields Default()
//  4. Fields that are missing or blank keep their defaults
//
// # Configuration Fields
//
//   - data_dir: where documents and the log file live (~/.local/share/composer)
//   - storage: "sqlite" (composer.db in data_dir) or "file" (one JSON file per copy)
//   - resume: seed the session from the stored working copy (default true)
//
// Example config.toml:
//
//	data_dir = "~/sites/acme"
//	storage = "file"
//	resume = false
//
// Tilde expansion is applied to data_dir and relative paths are made
// absolute.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures
//   - File read errors other than os.ErrNotExist
//   - TOML parse errors and unknown storage backends, both reported as
//     "parse config: ..."
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//	logPath := cfg.LogPath()
package config
