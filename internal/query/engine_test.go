// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wfcatalog/pkg/types"
)

func testEngine() *Engine {
	return NewEngine(types.SearchConfig{})
}

func testPapers() []types.Paper {
	return []types.Paper{
		{
			ID: "a", Title: "Deep Fingerprinting", Year: 2019, Venue: "NDSS",
			Authors:   []string{"Payap Sirinam"},
			Subfields: []string{"小样本", "鲁棒性"},
			Models:    []string{"CNN"},
			Summary:   "深度学习网站指纹攻击。",
		},
		{
			ID: "b", Title: "Robust Fingerprinting", Year: 2022, Venue: "CCS",
			Authors:   []string{"Jane Doe"},
			Subfields: []string{"多标签"},
			Models:    []string{"Transformer"},
			Summary:   "多标签网站指纹。",
		},
		{
			ID: "c", Title: "Adversarial Traces", Year: 2020, Venue: "NDSS",
			Authors:   []string{"John Roe"},
			Subfields: []string{"对抗样本", "小样本"},
			Models:    []string{"CNN", "RNN"},
			Summary:   "对抗扰动防御。",
		},
	}
}

func ids(papers []types.Paper) []string {
	out := make([]string, len(papers))
	for i, p := range papers {
		out[i] = p.ID
	}
	return out
}

func TestFilterDefaultsSortYearDesc(t *testing.T) {
	got := testEngine().Filter(testPapers(), types.NewFilterState(), nil)
	assert.Equal(t, []string{"b", "c", "a"}, ids(got))
}

func TestFilterYearRange(t *testing.T) {
	papers := []types.Paper{
		{ID: "a", Title: "A", Year: 2019, Venue: "NDSS"},
		{ID: "b", Title: "B", Year: 2022, Venue: "CCS"},
	}
	state := types.NewFilterState()
	state.YearRange = &types.YearRange{Min: 2020, Max: 2023}

	got := testEngine().Filter(papers, state, nil)
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestFilterInvertedYearRangeMatchesNothing(t *testing.T) {
	state := types.NewFilterState()
	state.YearRange = &types.YearRange{Min: 2023, Max: 2019}

	got := testEngine().Filter(testPapers(), state, nil)
	assert.Empty(t, got)
}

func TestFilterFacetORWithinDimension(t *testing.T) {
	state := types.NewFilterState()
	state.Subfields = []string{"小样本"}

	got := testEngine().Filter(testPapers(), state, nil)
	assert.ElementsMatch(t, []string{"a", "c"}, ids(got))

	// A record only needs one selected value to match.
	state.Subfields = []string{"小样本", "多标签"}
	got = testEngine().Filter(testPapers(), state, nil)
	assert.Len(t, got, 3)
}

func TestFilterFacetANDAcrossDimensions(t *testing.T) {
	e := testEngine()
	papers := testPapers()

	state := types.NewFilterState()
	state.Subfields = []string{"小样本"}
	state.Models = []string{"RNN"}
	both := e.Filter(papers, state, nil)

	// AND-across-dimensions law: the combined result equals the
	// intersection of each dimension filtered independently.
	onlySub := types.NewFilterState()
	onlySub.Subfields = []string{"小样本"}
	onlyModel := types.NewFilterState()
	onlyModel.Models = []string{"RNN"}

	inBoth := map[string]bool{}
	for _, p := range e.Filter(papers, onlySub, nil) {
		inBoth[p.ID] = true
	}
	var want []string
	for _, p := range e.Filter(papers, onlyModel, nil) {
		if inBoth[p.ID] {
			want = append(want, p.ID)
		}
	}

	assert.Equal(t, want, ids(both))
	assert.Equal(t, []string{"c"}, ids(both))
}

func TestFilterEmptySelectionMeansNoConstraint(t *testing.T) {
	state := types.NewFilterState()
	state.Subfields = []string{}

	got := testEngine().Filter(testPapers(), state, nil)
	assert.Len(t, got, 3)
}

func TestFilterBookmarksOnly(t *testing.T) {
	state := types.NewFilterState()
	state.BookmarksOnly = true
	bookmarked := map[string]bool{"a": true, "c": true}

	got := testEngine().Filter(testPapers(), state, bookmarked)
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.True(t, bookmarked[p.ID], "record %s is not bookmarked", p.ID)
	}
	assert.Len(t, got, 2)
}

func TestFilterQueryExactAndTypo(t *testing.T) {
	e := testEngine()

	state := types.NewFilterState()
	state.Query = "fingerprinting"
	got := e.Filter(testPapers(), state, nil)
	assert.ElementsMatch(t, []string{"a", "b"}, ids(got))

	// Single-character typo still matches.
	state.Query = "fingerprnting"
	got = e.Filter(testPapers(), state, nil)
	assert.ElementsMatch(t, []string{"a", "b"}, ids(got))

	// Gibberish does not.
	state.Query = "zzqqxxyy"
	got = e.Filter(testPapers(), state, nil)
	assert.Empty(t, got)
}

func TestFilterQueryMatchesFacetFields(t *testing.T) {
	state := types.NewFilterState()
	state.Query = "多标签"

	got := testEngine().Filter(testPapers(), state, nil)
	assert.Equal(t, []string{"b"}, ids(got))
}

func TestFilterEmptyQuerySkipsTextMatching(t *testing.T) {
	state := types.NewFilterState()
	state.Query = ""

	got := testEngine().Filter(testPapers(), state, nil)
	assert.Len(t, got, 3)
}

func TestSortYearAscReversesYearDesc(t *testing.T) {
	e := testEngine()
	papers := testPapers() // distinct years, no ties

	desc := types.NewFilterState()
	desc.Sort = types.SortYearDesc
	asc := types.NewFilterState()
	asc.Sort = types.SortYearAsc

	down := ids(e.Filter(papers, desc, nil))
	up := ids(e.Filter(papers, asc, nil))

	require.Equal(t, len(down), len(up))
	for i := range down {
		assert.Equal(t, down[i], up[len(up)-1-i])
	}
}

func TestSortTitleIsTotalOrder(t *testing.T) {
	state := types.NewFilterState()
	state.Sort = types.SortTitle

	got := testEngine().Filter(testPapers(), state, nil)
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	papers := testPapers()
	state := types.NewFilterState()
	state.Sort = types.SortYearAsc

	_ = testEngine().Filter(papers, state, nil)
	assert.Equal(t, []string{"a", "b", "c"}, ids(papers))
}

func TestNewEngineThresholdFallback(t *testing.T) {
	e := NewEngine(types.SearchConfig{SimilarityThreshold: 0})
	assert.Equal(t, DefaultThreshold, e.threshold)

	e = NewEngine(types.SearchConfig{SimilarityThreshold: 0.2})
	assert.Equal(t, 0.2, e.threshold)
}
