// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schema validates and normalizes paper records. The same rules run
// at dataset load time and when the extraction pipeline persists model
// output, so data accepted by the pipeline is guaranteed renderable.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/pdiddy/wfcatalog/pkg/types"
)

// ValidationError reports a schema violation at a specific field path
// (e.g. "[3].year" for the fourth record's year).
type ValidationError struct {
	Path string
	Msg  string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "schema: " + e.Msg
	}
	return fmt.Sprintf("schema: %s: %s", e.Path, e.Msg)
}

func errAt(path, format string, args ...any) error {
	return &ValidationError{Path: path, Msg: fmt.Sprintf(format, args...)}
}

// rawPaper mirrors the Paper wire shape with pointers so missing required
// fields are distinguishable from zero values.
type rawPaper struct {
	ID          *string         `json:"id"`
	Title       *string         `json:"title"`
	Year        *int            `json:"year"`
	Venue       *string         `json:"venue"`
	Authors     []string        `json:"authors"`
	PaperType   string          `json:"paper_type"`
	ThreatModel string          `json:"threat_model"`
	Keywords    []string        `json:"keywords"`
	Subfields   []string        `json:"subfields"`
	Tasks       []string        `json:"tasks"`
	Features    []string        `json:"features"`
	Models      []string        `json:"models"`
	Datasets    []string        `json:"datasets"`
	Metrics     []string        `json:"metrics"`
	Summary     *string         `json:"summary"`
	Findings    string          `json:"findings"`
	Limitations string          `json:"limitations"`
	FutureWork  string          `json:"future_work"`
	Tags        []string        `json:"tags"`
	Links       json.RawMessage `json:"links"`
}

// NormalizePaper validates one JSON object against the Paper shape and
// returns it with all defaults applied: missing optional arrays become
// empty slices, missing optional strings become "", missing links become
// the empty mapping. It returns a *ValidationError on any violation.
func NormalizePaper(data []byte) (types.Paper, error) {
	return normalizePaper(data, "")
}

// NormalizeCollection validates a JSON array of Paper objects. A single
// invalid record invalidates the whole collection; partial collections are
// never accepted. Record IDs must be unique.
func NormalizeCollection(data []byte) ([]types.Paper, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errAt("", "expected an array of records: %v", err)
	}

	papers := make([]types.Paper, 0, len(items))
	seen := make(map[string]int, len(items))

	for i, item := range items {
		path := fmt.Sprintf("[%d]", i)
		p, err := normalizePaper(item, path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[p.ID]; ok {
			return nil, errAt(path+".id", "duplicate id %q (first seen at [%d])", p.ID, prev)
		}
		seen[p.ID] = i
		papers = append(papers, p)
	}

	return papers, nil
}

func normalizePaper(data []byte, path string) (types.Paper, error) {
	var raw rawPaper
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return types.Paper{}, errAt(join(path, typeErr.Field), "expected %s, got %s", typeErr.Type, typeErr.Value)
		}
		return types.Paper{}, errAt(path, "expected an object: %v", err)
	}

	if raw.ID == nil || *raw.ID == "" {
		return types.Paper{}, errAt(join(path, "id"), "required")
	}
	if raw.Title == nil || *raw.Title == "" {
		return types.Paper{}, errAt(join(path, "title"), "required")
	}
	if raw.Year == nil {
		return types.Paper{}, errAt(join(path, "year"), "required")
	}
	if raw.Venue == nil || *raw.Venue == "" {
		return types.Paper{}, errAt(join(path, "venue"), "required")
	}
	if raw.Summary == nil || *raw.Summary == "" {
		return types.Paper{}, errAt(join(path, "summary"), "required")
	}

	links, err := normalizeLinks(raw.Links, path)
	if err != nil {
		return types.Paper{}, err
	}

	return types.Paper{
		ID:          *raw.ID,
		Title:       *raw.Title,
		Year:        *raw.Year,
		Venue:       *raw.Venue,
		Authors:     orEmpty(raw.Authors),
		PaperType:   raw.PaperType,
		ThreatModel: raw.ThreatModel,
		Keywords:    orEmpty(raw.Keywords),
		Subfields:   orEmpty(raw.Subfields),
		Tasks:       orEmpty(raw.Tasks),
		Features:    orEmpty(raw.Features),
		Models:      orEmpty(raw.Models),
		Datasets:    orEmpty(raw.Datasets),
		Metrics:     orEmpty(raw.Metrics),
		Summary:     *raw.Summary,
		Findings:    raw.Findings,
		Limitations: raw.Limitations,
		FutureWork:  raw.FutureWork,
		Tags:        orEmpty(raw.Tags),
		Links:       links,
	}, nil
}

func normalizeLinks(data json.RawMessage, path string) (types.Links, error) {
	if len(data) == 0 || string(data) == "null" {
		return types.Links{}, nil
	}

	var links types.Links
	if err := json.Unmarshal(data, &links); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return types.Links{}, errAt(join(path, "links."+typeErr.Field), "expected %s, got %s", typeErr.Type, typeErr.Value)
		}
		return types.Links{}, errAt(join(path, "links"), "expected an object: %v", err)
	}

	checks := []struct {
		key string
		val string
	}{
		{"pdf", links.PDF},
		{"code", links.Code},
		{"dataset", links.Dataset},
		{"project", links.Project},
	}
	for _, c := range checks {
		if c.val == "" {
			continue
		}
		if !IsAbsoluteURL(c.val) {
			return types.Links{}, errAt(join(path, "links."+c.key), "not an absolute http(s) URL: %q", c.val)
		}
	}

	return links, nil
}

// IsAbsoluteURL reports whether s is a well-formed absolute http(s) URL.
// The extraction pipeline uses the same check to discard malformed link
// values before validation.
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
