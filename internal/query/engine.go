// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query implements the faceted filter/search engine over a loaded
// paper collection. All operations are pure and synchronous: cheap enough
// to re-run on every keystroke or selection change.
package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/wfcatalog/pkg/types"
)

// DefaultThreshold is the fuzzy-match tolerance used when the config leaves
// it unset. Empirically tuned; loose enough that single-character typos
// still match.
const DefaultThreshold = 0.35

// Engine applies a FilterState to a collection. Construct once and reuse;
// it holds only the similarity threshold and a collator for title ordering.
type Engine struct {
	threshold float64
	collator  *collate.Collator
}

// NewEngine builds an engine from the search configuration.
func NewEngine(cfg types.SearchConfig) *Engine {
	threshold := cfg.SimilarityThreshold
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}
	return &Engine{
		threshold: threshold,
		collator:  collate.New(language.Und),
	}
}

// Filter produces the ordered subset of papers matching state. Stages apply
// in fixed order: bookmarks, free-text match, year range, facet selections,
// sort. The input slice is never mutated; an empty result is a valid state
// and filtering never errors.
func (e *Engine) Filter(papers []types.Paper, state types.FilterState, bookmarked map[string]bool) []types.Paper {
	result := papers

	if state.BookmarksOnly {
		result = retain(result, func(p types.Paper) bool { return bookmarked[p.ID] })
	}

	if state.Query != "" {
		result = e.textMatch(result, state.Query)
	}

	if state.YearRange != nil {
		r := *state.YearRange
		result = retain(result, func(p types.Paper) bool { return r.Contains(p.Year) })
	}

	result = retainFacet(result, state.Venues, func(p types.Paper) []string { return []string{p.Venue} })
	result = retainFacet(result, state.Subfields, func(p types.Paper) []string { return p.Subfields })
	result = retainFacet(result, state.Tasks, func(p types.Paper) []string { return p.Tasks })
	result = retainFacet(result, state.Features, func(p types.Paper) []string { return p.Features })
	result = retainFacet(result, state.Models, func(p types.Paper) []string { return p.Models })
	result = retainFacet(result, state.Tags, func(p types.Paper) []string { return p.Tags })

	return e.sorted(result, state.Sort)
}

// textMatch replaces the candidate set with records whose best-field fuzzy
// similarity reaches 1 - threshold. Ranking from this stage is not
// preserved; the sort stage orders the final result.
func (e *Engine) textMatch(papers []types.Paper, query string) []types.Paper {
	cutoff := 1 - e.threshold
	return retain(papers, func(p types.Paper) bool {
		return bestFieldSimilarity(p, query) >= cutoff
	})
}

// retain filters papers by keep, allocating a fresh slice so the input is
// left untouched.
func retain(papers []types.Paper, keep func(types.Paper) bool) []types.Paper {
	result := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}

// retainFacet keeps papers whose field intersects the selection. An empty
// selection means "no constraint", not "match nothing"; applying every
// dimension in sequence yields AND semantics across dimensions.
func retainFacet(papers []types.Paper, selected []string, field func(types.Paper) []string) []types.Paper {
	if len(selected) == 0 {
		return papers
	}
	set := make(map[string]bool, len(selected))
	for _, s := range selected {
		set[s] = true
	}
	return retain(papers, func(p types.Paper) bool {
		for _, v := range field(p) {
			if set[v] {
				return true
			}
		}
		return false
	})
}

// sorted returns a sorted copy; ties keep their input order.
func (e *Engine) sorted(papers []types.Paper, key types.SortOption) []types.Paper {
	result := make([]types.Paper, len(papers))
	copy(result, papers)

	switch key {
	case types.SortYearAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Year < result[j].Year })
	case types.SortYearDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Year > result[j].Year })
	case types.SortTitle:
		sort.SliceStable(result, func(i, j int) bool {
			return e.collator.CompareString(result[i].Title, result[j].Title) < 0
		})
	}

	return result
}
