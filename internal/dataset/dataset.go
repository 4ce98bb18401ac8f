// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads, writes, and syncs the paper collection JSON file.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/wfcatalog/internal/httputil"
	"github.com/pdiddy/wfcatalog/internal/schema"
	"github.com/pdiddy/wfcatalog/pkg/types"
)

// LoadError wraps any dataset load failure: fetch/read, JSON parse, or
// schema violation. The caller surfaces Message as the visible error state;
// there is no retry.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading dataset %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load retrieves the collection from source (an http(s) URL or a local file
// path), parses it, and runs it through the schema validator. The operation
// is idempotent and has no side effects beyond the read.
func Load(ctx context.Context, source string, cfg types.HTTPConfig) ([]types.Paper, error) {
	var (
		data []byte
		err  error
	)
	if isURL(source) {
		data, err = httputil.Fetch(ctx, source, cfg)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	papers, err := schema.NormalizeCollection(data)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	return papers, nil
}

// Write persists the collection to path as a single UTF-8 JSON document
// with two-space indentation, overwriting any existing file. Defaults are
// always materialized so downstream consumers need no defaulting logic.
func Write(path string, papers []types.Paper) error {
	if papers == nil {
		papers = []types.Paper{}
	}
	data, err := json.MarshalIndent(papers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dataset: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing dataset %s: %w", path, err)
	}
	return nil
}

// Sync copies the dataset file at source into targetDir, creating the
// directory if absent. It fails if source does not exist.
func Sync(source, targetDir string) (string, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading dataset %s: %w", source, err)
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("creating target directory %s: %w", targetDir, err)
	}

	target := filepath.Join(targetDir, filepath.Base(source))
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	return target, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
