// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmarks

import (
	"bytes"
	"database/sql"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, dbPath string) *Store {
	t.Helper()
	s, err := Open(dbPath, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestToggleIsInvolution(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "bookmarks.db"))

	require.NoError(t, s.Toggle("sirinam2018-df"))
	assert.True(t, s.Has("sirinam2018-df"))

	require.NoError(t, s.Toggle("sirinam2018-df"))
	assert.False(t, s.Has("sirinam2018-df"))
	assert.Zero(t, s.Len())
}

func TestClear(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "bookmarks.db"))

	require.NoError(t, s.Toggle("a"))
	require.NoError(t, s.Toggle("b"))
	require.NoError(t, s.Clear())

	assert.Zero(t, s.Len())
	assert.Empty(t, s.List())
}

func TestPersistsAcrossSessions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bookmarks.db")

	s, err := Open(dbPath, io.Discard)
	require.NoError(t, err)
	require.NoError(t, s.Toggle("b"))
	require.NoError(t, s.Toggle("a"))
	require.NoError(t, s.Close())

	s2 := openTestStore(t, dbPath)
	assert.Equal(t, []string{"a", "b"}, s2.List())
}

func TestIDsReturnsCopy(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "bookmarks.db"))
	require.NoError(t, s.Toggle("a"))

	got := s.IDs()
	delete(got, "a")
	assert.True(t, s.Has("a"))
}

func TestCorruptDataFallsBackToEmptySet(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "bookmarks.db")

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, "wf-fp-bookmarks", `{not json`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	var warnings bytes.Buffer
	s, err := Open(dbPath, &warnings)
	require.NoError(t, err)
	defer s.Close()

	assert.Zero(t, s.Len())
	assert.Contains(t, warnings.String(), "corrupt")

	// Self-heals on next write.
	require.NoError(t, s.Toggle("a"))
	require.NoError(t, s.Close())

	s2 := openTestStore(t, dbPath)
	assert.Equal(t, []string{"a"}, s2.List())
}
