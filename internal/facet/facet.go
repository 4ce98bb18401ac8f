// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package facet derives the set of filterable values from a loaded collection.
package facet

import (
	"sort"

	"github.com/pdiddy/wfcatalog/pkg/types"
)

// BuildIndex computes the facet index for papers: min/max year plus the
// sorted, deduplicated, non-empty values observed per faceted dimension.
// It is a pure function; rebuild whenever the collection changes. Cost is
// linear in total tag occurrences.
func BuildIndex(papers []types.Paper) types.FacetIndex {
	idx := types.FacetIndex{}

	for _, p := range papers {
		if !idx.HasYears {
			idx.MinYear, idx.MaxYear = p.Year, p.Year
			idx.HasYears = true
			continue
		}
		if p.Year < idx.MinYear {
			idx.MinYear = p.Year
		}
		if p.Year > idx.MaxYear {
			idx.MaxYear = p.Year
		}
	}

	idx.Venues = distinct(papers, func(p types.Paper) []string { return []string{p.Venue} })
	idx.Subfields = distinct(papers, func(p types.Paper) []string { return p.Subfields })
	idx.Tasks = distinct(papers, func(p types.Paper) []string { return p.Tasks })
	idx.Features = distinct(papers, func(p types.Paper) []string { return p.Features })
	idx.Models = distinct(papers, func(p types.Paper) []string { return p.Models })
	idx.Tags = distinct(papers, func(p types.Paper) []string { return p.Tags })

	return idx
}

// distinct flattens field values across papers, drops empty strings,
// deduplicates, and sorts for deterministic display order.
func distinct(papers []types.Paper, field func(types.Paper) []string) []string {
	seen := make(map[string]bool)
	var values []string

	for _, p := range papers {
		for _, v := range field(p) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}
	}

	sort.Strings(values)
	return values
}
