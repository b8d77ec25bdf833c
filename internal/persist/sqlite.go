package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/five82/composer/internal/site"
)

// SQLiteStore keeps documents in a single SQLite table.
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer at a time.
	conn.SetMaxOpenConns(1)

	s := &SQLiteStore{conn: conn}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.conn.Exec(`CREATE TABLE IF NOT EXISTS documents (
		key TEXT PRIMARY KEY,
		body TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`)
	return err
}

// Read loads the document stored under key.
func (s *SQLiteStore) Read(ctx context.Context, key Key) (site.Document, error) {
	if err := validKey(key); err != nil {
		return site.Document{}, err
	}
	var body string
	err := s.conn.QueryRowContext(ctx, `SELECT body FROM documents WHERE key = ?`, string(key)).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return site.Document{}, ErrNotFound
		}
		return site.Document{}, fmt.Errorf("read %s copy: %w", key, err)
	}
	return Decode([]byte(body))
}

// Write replaces the document stored under key.
func (s *SQLiteStore) Write(ctx context.Context, key Key, doc site.Document) error {
	if err := validKey(key); err != nil {
		return err
	}
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO documents (key, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		string(key), string(data), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write %s copy: %w", key, err)
	}
	return nil
}

// UpdatedAt reports when key was last written.
func (s *SQLiteStore) UpdatedAt(ctx context.Context, key Key) (time.Time, error) {
	var millis int64
	err := s.conn.QueryRowContext(ctx, `SELECT updated_at FROM documents WHERE key = ?`, string(key)).Scan(&millis)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, fmt.Errorf("read %s timestamp: %w", key, err)
	}
	return time.UnixMilli(millis).UTC(), nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
