// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wfcatalog/internal/catalog"
	"github.com/pdiddy/wfcatalog/pkg/types"
)

const testCollection = `[
	{"id": "a", "title": "Deep Fingerprinting", "year": 2019, "venue": "NDSS", "authors": [], "summary": "s", "subfields": ["小样本"]},
	{"id": "b", "title": "Robust Fingerprinting", "year": 2022, "venue": "CCS", "authors": [], "summary": "s", "subfields": ["多标签"]}
]`

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "papers.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(testCollection), 0o644))

	cat, err := catalog.Open(context.Background(), types.CatalogConfig{
		Dataset:   types.DatasetConfig{Source: dataPath},
		Bookmarks: types.BookmarksConfig{DBPath: filepath.Join(dir, "bookmarks.db")},
	}, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { cat.Close() })

	return NewApp(cat)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialStateShowsAll(t *testing.T) {
	a := newTestApp(t)
	assert.Len(t, a.filtered, 2)
	// Default ordering is year-desc.
	assert.Equal(t, "b", a.filtered[0].ID)
}

func TestBookmarkToggleAndBookmarksOnly(t *testing.T) {
	a := newTestApp(t)

	// Bookmark the record under the cursor, then restrict the view.
	a.Update(keyMsg("b"))
	a.Update(keyMsg("o"))

	require.Len(t, a.filtered, 1)
	assert.Equal(t, "b", a.filtered[0].ID)
	assert.True(t, a.cat.Bookmarks.Has("b"))

	// Toggling again drops it; the restricted view becomes empty.
	a.Update(keyMsg("b"))
	assert.Empty(t, a.filtered)
}

func TestSortCycles(t *testing.T) {
	a := newTestApp(t)

	a.Update(keyMsg("s"))
	assert.Equal(t, types.SortYearAsc, a.state.Sort)
	assert.Equal(t, "a", a.filtered[0].ID)

	a.Update(keyMsg("s"))
	assert.Equal(t, types.SortTitle, a.state.Sort)

	a.Update(keyMsg("s"))
	assert.Equal(t, types.SortYearDesc, a.state.Sort)
}

func TestFacetToggleFiltersList(t *testing.T) {
	a := newTestApp(t)

	a.Update(keyMsg("f"))
	require.Equal(t, viewFacets, a.mode)

	// First dimension is venue; values sorted: CCS, NDSS.
	a.Update(keyMsg(" "))
	require.Len(t, a.filtered, 1)
	assert.Equal(t, "CCS", a.filtered[0].Venue)

	// Toggling the same value off restores the full list.
	a.Update(keyMsg(" "))
	assert.Len(t, a.filtered, 2)

	a.Update(keyMsg("esc"))
	assert.Equal(t, viewList, a.mode)
}

func TestSearchFiltersOnKeystroke(t *testing.T) {
	a := newTestApp(t)

	a.Update(keyMsg("/"))
	require.Equal(t, viewSearch, a.mode)

	for _, r := range "robust" {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	require.Len(t, a.filtered, 1)
	assert.Equal(t, "b", a.filtered[0].ID)
}

func TestViewRendersCounts(t *testing.T) {
	a := newTestApp(t)
	out := a.View()
	assert.Contains(t, out, "2 / 2 篇")
	assert.Contains(t, out, "Deep Fingerprinting")
}

func TestRefreshReloadsDataset(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "papers.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(testCollection), 0o644))

	cat, err := catalog.Open(context.Background(), types.CatalogConfig{
		Dataset:   types.DatasetConfig{Source: dataPath},
		Bookmarks: types.BookmarksConfig{DBPath: filepath.Join(dir, "bookmarks.db")},
	}, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { cat.Close() })

	a := NewApp(cat)
	require.Len(t, a.filtered, 2)

	updated := `[
		{"id": "a", "title": "Deep Fingerprinting", "year": 2019, "venue": "NDSS", "authors": [], "summary": "s"},
		{"id": "b", "title": "Robust Fingerprinting", "year": 2022, "venue": "CCS", "authors": [], "summary": "s"},
		{"id": "c", "title": "Fresh Paper", "year": 2024, "venue": "PETS", "authors": [], "summary": "s"}
	]`
	require.NoError(t, os.WriteFile(dataPath, []byte(updated), 0o644))

	a.Update(keyMsg("r"))

	assert.Len(t, a.filtered, 3)
	assert.Contains(t, a.message, "已重新加载")
	// The facet picker sees the new venue.
	assert.Contains(t, a.dims[0].values, "PETS")
}
