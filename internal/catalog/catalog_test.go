// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wfcatalog/pkg/types"
)

const testCollection = `[
	{"id": "a", "title": "A", "year": 2019, "venue": "NDSS", "authors": [], "summary": "s", "subfields": ["小样本"]},
	{"id": "b", "title": "B", "year": 2022, "venue": "CCS", "authors": [], "summary": "s", "subfields": ["多标签"]}
]`

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "papers.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(testCollection), 0o644))

	cfg := types.CatalogConfig{
		Dataset:   types.DatasetConfig{Source: dataPath},
		Bookmarks: types.BookmarksConfig{DBPath: filepath.Join(dir, "bookmarks.db")},
	}
	c, err := Open(context.Background(), cfg, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestOpenBuildsFacets(t *testing.T) {
	c := openTestCatalog(t)

	assert.Len(t, c.Papers, 2)
	assert.Equal(t, 2019, c.Facets.MinYear)
	assert.Equal(t, 2022, c.Facets.MaxYear)
	assert.Equal(t, []string{"CCS", "NDSS"}, c.Facets.Venues)
}

func TestFilterSeesBookmarks(t *testing.T) {
	c := openTestCatalog(t)
	require.NoError(t, c.Bookmarks.Toggle("b"))

	state := types.NewFilterState()
	state.BookmarksOnly = true

	got := c.Filter(state)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestReplaceRebuildsFacets(t *testing.T) {
	c := openTestCatalog(t)

	c.Replace([]types.Paper{{ID: "z", Title: "Z", Year: 2024, Venue: "PETS", Summary: "s"}})

	assert.Equal(t, []string{"PETS"}, c.Facets.Venues)
	assert.Equal(t, 2024, c.Facets.MinYear)
}

func TestReloadPicksUpNewRecords(t *testing.T) {
	c := openTestCatalog(t)
	require.Len(t, c.Papers, 2)

	updated := `[
		{"id": "a", "title": "A", "year": 2019, "venue": "NDSS", "authors": [], "summary": "s"},
		{"id": "b", "title": "B", "year": 2022, "venue": "CCS", "authors": [], "summary": "s"},
		{"id": "c", "title": "C", "year": 2024, "venue": "PETS", "authors": [], "summary": "s"}
	]`
	require.NoError(t, os.WriteFile(c.cfg.Dataset.Source, []byte(updated), 0o644))

	require.NoError(t, c.Reload(context.Background()))
	assert.Len(t, c.Papers, 3)
	assert.Equal(t, 2024, c.Facets.MaxYear)
	assert.Contains(t, c.Facets.Venues, "PETS")
}

func TestReloadFailureKeepsCollection(t *testing.T) {
	c := openTestCatalog(t)

	require.NoError(t, os.WriteFile(c.cfg.Dataset.Source, []byte("not json"), 0o644))

	require.Error(t, c.Reload(context.Background()))
	assert.Len(t, c.Papers, 2)
}
