// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns raw paper documents into validated catalog records.
// The pipeline is deliberately sequential: one model completion per
// document, one at a time, so the rate-limited external API is never hit
// concurrently and output ordering follows file-enumeration order.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/wfcatalog/internal/dataset"
	"github.com/pdiddy/wfcatalog/internal/schema"
	"github.com/pdiddy/wfcatalog/pkg/types"
)

const (
	// defaultMaxInputChars bounds the document text embedded in the prompt.
	defaultMaxInputChars = 20000

	// summaryPrefixLen is the placeholder summary length in dry-run mode.
	// The PDF variant uses a shorter prefix and no ellipsis.
	summaryPrefixLen    = 240
	pdfSummaryPrefixLen = 200
)

// ConfigurationError is fatal and reported before any document is
// processed: a missing credential outside dry-run mode or a missing input
// directory.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return "configuration: " + e.Msg }

// DocumentError marks a single unreadable or unparsable source document.
// It is logged and the document skipped; the batch continues.
type DocumentError struct {
	Name string
	Err  error
}

func (e *DocumentError) Error() string { return fmt.Sprintf("document %s: %v", e.Name, e.Err) }
func (e *DocumentError) Unwrap() error { return e.Err }

// ExternalServiceError is a failed model API call: non-success response,
// empty body, or unparsable content. Fatal; the remaining batch aborts
// with no partial write.
type ExternalServiceError struct {
	Err error
}

func (e *ExternalServiceError) Error() string { return fmt.Sprintf("model API: %v", e.Err) }
func (e *ExternalServiceError) Unwrap() error { return e.Err }

// ModelBackend issues one completion request carrying the extraction
// prompt and returns the raw JSON object from the model. Implementations:
// OpenAIBackend (live) and test mocks.
type ModelBackend interface {
	Complete(ctx context.Context, prompt string) ([]byte, error)
}

// Run processes every source document in cfg.InputDir sequentially,
// validates each resulting record, and writes the full batch to
// cfg.OutPath. It returns the number of records written. Progress and
// skip warnings go to w.
func Run(ctx context.Context, cfg types.ExtractionConfig, backend ModelBackend, w io.Writer) (int, error) {
	if !cfg.DryRun && cfg.APIKey == "" {
		return 0, &ConfigurationError{Msg: "missing OpenAI API key (set OPENAI_API_KEY or use --dry-run)"}
	}
	if _, err := os.Stat(cfg.InputDir); err != nil {
		return 0, &ConfigurationError{Msg: fmt.Sprintf("input directory %s: %v", cfg.InputDir, err)}
	}

	files, err := listDocuments(cfg)
	if err != nil {
		return 0, &ConfigurationError{Msg: err.Error()}
	}
	if len(files) == 0 {
		fmt.Fprintln(w, "no source documents found, nothing to do")
		return 0, nil
	}

	maxChars := cfg.MaxInputChars
	if maxChars <= 0 {
		maxChars = defaultMaxInputChars
	}

	records := make([]types.Paper, 0, len(files))

	for _, file := range files {
		fmt.Fprintf(w, "processing %s\n", file)

		text, err := documentText(cfg, file)
		if err != nil {
			fmt.Fprintf(w, "skipped: %v\n", &DocumentError{Name: file, Err: err})
			continue
		}

		baseID := strings.TrimSuffix(file, filepath.Ext(file))

		var record types.Paper
		if cfg.DryRun {
			record, err = placeholderRecord(baseID, file, text, cfg.PDF)
		} else {
			record, err = extractRecord(ctx, backend, text, maxChars)
		}
		if err != nil {
			return 0, err
		}

		records = append(records, record)
	}

	if err := dataset.Write(cfg.OutPath, records); err != nil {
		return 0, err
	}

	return len(records), nil
}

// listDocuments enumerates source documents in deterministic name order.
// The Limit cap applies to the PDF variant only.
func listDocuments(cfg types.ExtractionConfig) ([]string, error) {
	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", cfg.InputDir, err)
	}

	ext := ".txt"
	if cfg.PDF {
		ext = ".pdf"
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ext) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	if cfg.PDF && cfg.Limit > 0 && len(files) > cfg.Limit {
		files = files[:cfg.Limit]
	}

	return files, nil
}

// documentText extracts or passes through the text content of one source
// document. PDF extraction in dry-run mode is skipped in favor of
// placeholder content, matching the live/dry-run parity of the record
// shape without requiring parsable PDFs.
func documentText(cfg types.ExtractionConfig, file string) (string, error) {
	path := filepath.Join(cfg.InputDir, file)

	if !cfg.PDF {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if cfg.DryRun {
		return "占位内容 " + file, nil
	}

	return PDFText(path)
}

// extractRecord issues one completion request, normalizes the returned
// links, and validates against the record schema.
func extractRecord(ctx context.Context, backend ModelBackend, text string, maxChars int) (types.Paper, error) {
	prompt, err := renderPrompt(truncateRunes(text, maxChars))
	if err != nil {
		return types.Paper{}, fmt.Errorf("rendering prompt: %w", err)
	}

	raw, err := backend.Complete(ctx, prompt)
	if err != nil {
		return types.Paper{}, &ExternalServiceError{Err: err}
	}

	cleaned, err := normalizeCompletion(raw)
	if err != nil {
		return types.Paper{}, &ExternalServiceError{Err: err}
	}

	return schema.NormalizePaper(cleaned)
}

// placeholderRecord synthesizes a dry-run record from the raw text. It
// still passes through the schema validator so both modes produce the same
// output shape. The text variant titles by base id and appends an ellipsis
// to the summary prefix; the PDF variant titles by filename and takes a
// shorter, plain prefix.
func placeholderRecord(baseID, file, text string, pdf bool) (types.Paper, error) {
	title := "占位标题 - " + baseID
	summary := truncateRunes(text, summaryPrefixLen) + "..."
	if pdf {
		title = "占位标题 - " + file
		summary = truncateRunes(text, pdfSummaryPrefixLen)
		if summary == "" {
			summary = "占位摘要"
		}
	}

	record := map[string]any{
		"id":      baseID,
		"title":   title,
		"year":    2024,
		"venue":   "TBD",
		"authors": []string{"待提取"},
		"summary": summary,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return types.Paper{}, fmt.Errorf("marshaling placeholder: %w", err)
	}
	return schema.NormalizePaper(data)
}

// normalizeCompletion discards links.* values that are not absolute
// http(s) URLs before schema validation, mirroring the loader-side rules.
func normalizeCompletion(raw []byte) ([]byte, error) {
	var record map[string]any
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}

	if links, ok := record["links"].(map[string]any); ok {
		for _, key := range []string{"pdf", "code", "dataset", "project"} {
			v, ok := links[key].(string)
			if !ok || !schema.IsAbsoluteURL(v) {
				delete(links, key)
			}
		}
		record["links"] = links
	} else {
		delete(record, "links")
	}

	return json.Marshal(record)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
