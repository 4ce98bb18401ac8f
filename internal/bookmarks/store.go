// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bookmarks persists the set of bookmarked paper identifiers.
// The set lives under a single fixed key in a local SQLite key-value
// table, serialized as a JSON array of strings, and survives across
// sessions. Single-writer by construction: one UI session.
package bookmarks

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
)

// storageKey is the fixed key holding the serialized bookmark id set.
const storageKey = "wf-fp-bookmarks"

// Store is the process-wide bookmark set with synchronous persistence.
// Every mutation writes the full set back (read-modify-write).
type Store struct {
	db  *sql.DB
	ids map[string]bool
}

// Open creates or opens the bookmark database at dbPath and loads the
// stored set. Missing or corrupt stored data falls back to an empty set
// with a warning on w; this is the only recoverable failure mode here,
// since the set self-heals on the next write.
func Open(dbPath string, w io.Writer) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating bookmark directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening bookmark database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv schema: %w", err)
	}

	s := &Store{db: db, ids: make(map[string]bool)}
	s.load(w)
	return s, nil
}

// load reads the stored set. Malformed data is ignored with a warning.
func (s *Store) load(w io.Writer) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, storageKey).Scan(&value)
	if err == sql.ErrNoRows {
		return
	}
	if err != nil {
		fmt.Fprintf(w, "warning: could not read bookmarks: %v\n", err)
		return
	}

	var stored []string
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		fmt.Fprintf(w, "warning: ignoring corrupt bookmark data: %v\n", err)
		return
	}
	for _, id := range stored {
		s.ids[id] = true
	}
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Has reports whether id is bookmarked.
func (s *Store) Has(id string) bool {
	return s.ids[id]
}

// IDs returns the bookmarked identifiers as a membership map. The map is a
// copy; mutations on it do not affect the store.
func (s *Store) IDs() map[string]bool {
	out := make(map[string]bool, len(s.ids))
	for id := range s.ids {
		out[id] = true
	}
	return out
}

// List returns the bookmarked identifiers in sorted order.
func (s *Store) List() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of bookmarked identifiers.
func (s *Store) Len() int {
	return len(s.ids)
}

// Toggle flips membership of id and writes the updated set back
// synchronously. Toggling twice restores the original membership.
func (s *Store) Toggle(id string) error {
	if s.ids[id] {
		delete(s.ids, id)
	} else {
		s.ids[id] = true
	}
	return s.persist()
}

// Clear empties the set and persists the empty state.
func (s *Store) Clear() error {
	s.ids = make(map[string]bool)
	return s.persist()
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.List())
	if err != nil {
		return fmt.Errorf("serializing bookmarks: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		storageKey, string(data),
	); err != nil {
		return fmt.Errorf("writing bookmarks: %w", err)
	}
	return nil
}
