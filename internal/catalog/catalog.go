// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog owns the process-wide state for one browsing session:
// the loaded collection, its derived facet index, the filter engine, and
// the bookmark store. The context is passed explicitly to consumers; there
// are no ambient singletons. Teardown is a no-op beyond Close since all
// persistence is synchronous.
package catalog

import (
	"context"
	"io"

	"github.com/pdiddy/wfcatalog/internal/bookmarks"
	"github.com/pdiddy/wfcatalog/internal/dataset"
	"github.com/pdiddy/wfcatalog/internal/facet"
	"github.com/pdiddy/wfcatalog/internal/query"
	"github.com/pdiddy/wfcatalog/pkg/types"
)

// Catalog is the session context for browsing and filtering.
type Catalog struct {
	Papers    []types.Paper
	Facets    types.FacetIndex
	Engine    *query.Engine
	Bookmarks *bookmarks.Store

	cfg types.CatalogConfig
}

// Open loads the dataset from cfg.Dataset.Source, builds the facet index,
// and opens the bookmark store. Warnings (e.g. corrupt bookmark data) go
// to w.
func Open(ctx context.Context, cfg types.CatalogConfig, w io.Writer) (*Catalog, error) {
	papers, err := dataset.Load(ctx, cfg.Dataset.Source, cfg.Dataset.HTTPConfig)
	if err != nil {
		return nil, err
	}

	store, err := bookmarks.Open(cfg.Bookmarks.DBPath, w)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Papers:    papers,
		Facets:    facet.BuildIndex(papers),
		Engine:    query.NewEngine(cfg.Search),
		Bookmarks: store,
		cfg:       cfg,
	}, nil
}

// Filter applies state against the loaded collection and the current
// bookmark set.
func (c *Catalog) Filter(state types.FilterState) []types.Paper {
	return c.Engine.Filter(c.Papers, state, c.Bookmarks.IDs())
}

// Replace swaps in a new collection and recomputes the facet index. The
// bookmark store is independent of the dataset and is left untouched.
func (c *Catalog) Replace(papers []types.Paper) {
	c.Papers = papers
	c.Facets = facet.BuildIndex(papers)
}

// Reload re-reads the dataset from its configured source and swaps it in.
// On failure the current collection is kept.
func (c *Catalog) Reload(ctx context.Context) error {
	papers, err := dataset.Load(ctx, c.cfg.Dataset.Source, c.cfg.Dataset.HTTPConfig)
	if err != nil {
		return err
	}
	c.Replace(papers)
	return nil
}

// Close releases the bookmark store.
func (c *Catalog) Close() error {
	return c.Bookmarks.Close()
}
