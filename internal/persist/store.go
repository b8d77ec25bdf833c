// Package persist stores site documents under a working-copy and a
// live-copy key, in a directory of JSON files or in a SQLite database.
package persist

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/five82/composer/internal/site"
)

// Key names a stored document.
type Key string

const (
	// WorkingCopy is rewritten after every edit.
	WorkingCopy Key = "working"
	// LiveCopy is rewritten only on publish.
	LiveCopy Key = "live"
)

// ErrNotFound is returned by Read when nothing is stored under the key.
var ErrNotFound = errors.New("document not found")

// Store reads and writes whole documents by key. Documents are stored as
// JSON and repaired by Decode on the way back in.
type Store interface {
	Read(ctx context.Context, key Key) (site.Document, error)
	Write(ctx context.Context, key Key, doc site.Document) error
	Close() error
}

// Backend selects a Store implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
)

// ParseBackend normalizes a configured backend name. Empty means sqlite.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case "", BackendSQLite:
		return BackendSQLite, nil
	case BackendFile:
		return BackendFile, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q", name)
	}
}

// Open returns the Store for backend rooted at dataDir.
func Open(backend Backend, dataDir string) (Store, error) {
	switch backend {
	case BackendFile:
		return NewFileStore(filepath.Join(dataDir, "documents"))
	case BackendSQLite, "":
		return OpenSQLite(filepath.Join(dataDir, "composer.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func validKey(key Key) error {
	switch key {
	case WorkingCopy, LiveCopy:
		return nil
	default:
		return fmt.Errorf("invalid document key %q", key)
	}
}
