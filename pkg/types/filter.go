// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SortOption selects the ordering applied to filtered results.
type SortOption string

const (
	SortYearDesc SortOption = "year-desc"
	SortYearAsc  SortOption = "year-asc"
	SortTitle    SortOption = "title"
)

// YearRange is an inclusive [Min, Max] publication-year bound.
// A range with Min > Max matches nothing.
type YearRange struct {
	Min int
	Max int
}

// Contains reports whether year falls within the inclusive range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// FilterState holds the ephemeral, UI-owned query parameters for one
// filtering pass. A zero-value facet selection means "no constraint".
// FilterState is never persisted.
type FilterState struct {
	// Query is the free-text search string; empty skips text matching.
	Query string

	// YearRange restricts results to an inclusive year span when non-nil.
	YearRange *YearRange

	// Multi-select facet dimensions. Within a dimension any selected value
	// may match (OR); across dimensions every active selection must be
	// satisfied (AND).
	Venues    []string
	Subfields []string
	Tasks     []string
	Features  []string
	Models    []string
	Tags      []string

	// Sort is the ordering of results.
	Sort SortOption

	// BookmarksOnly restricts results to bookmarked records.
	BookmarksOnly bool
}

// NewFilterState returns a FilterState with defaults: year-desc ordering,
// no query, no facet selections.
func NewFilterState() FilterState {
	return FilterState{Sort: SortYearDesc}
}

// FacetIndex is the derived set of filterable values observed in a loaded
// collection. It has no independent lifecycle: rebuild it whenever the
// collection changes.
type FacetIndex struct {
	// MinYear and MaxYear bound the years observed across the collection.
	// HasYears is false for an empty collection, in which case the bounds
	// are meaningless.
	MinYear  int
	MaxYear  int
	HasYears bool

	// Sorted, deduplicated, non-empty values per dimension.
	Venues    []string
	Subfields []string
	Tasks     []string
	Features  []string
	Models    []string
	Tags      []string
}
