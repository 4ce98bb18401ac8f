// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/pdiddy/wfcatalog/pkg/types"
)

// bestFieldSimilarity scores a record against a free-text query: the
// maximum similarity over the searchable fields (title, summary, authors,
// venue, keywords, subfields, tasks, features, models).
func bestFieldSimilarity(p types.Paper, query string) float64 {
	best := similarity(query, p.Title)
	for _, field := range [][]string{
		{p.Summary},
		{p.Venue},
		p.Authors,
		p.Keywords,
		p.Subfields,
		p.Tasks,
		p.Features,
		p.Models,
	} {
		for _, text := range field {
			if s := similarity(query, text); s > best {
				best = s
				if best == 1 {
					return best
				}
			}
		}
	}
	return best
}

// similarity scores query against text in [0, 1]. A case-insensitive
// substring hit is a perfect match; otherwise the score is the best
// edit-distance similarity between the query and any word (or the whole
// text), so single-character typos still score near 1.
func similarity(query, text string) float64 {
	if query == "" || text == "" {
		return 0
	}
	query = strings.ToLower(query)
	text = strings.ToLower(text)

	if strings.Contains(text, query) {
		return 1
	}

	best := editSimilarity(query, text)
	for _, word := range strings.Fields(text) {
		if s := editSimilarity(query, word); s > best {
			best = s
		}
	}
	return best
}

// editSimilarity is 1 - normalized Levenshtein distance over runes.
func editSimilarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
