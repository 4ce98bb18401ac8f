// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "wfcatalog/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DatasetConfig holds settings for loading and syncing the paper dataset.
type DatasetConfig struct {
	HTTPConfig `yaml:",inline"`

	// Source is the dataset location: a local file path or an http(s) URL.
	Source string `json:"source" yaml:"source"`

	// TargetDir is the directory the sync command copies the dataset into.
	TargetDir string `json:"target_dir" yaml:"target_dir"`
}

// SearchConfig holds settings for the filter/search engine.
type SearchConfig struct {
	// SimilarityThreshold is the fuzzy-match tolerance in [0, 1]. A record
	// matches when its best-field similarity is at least 1 - threshold.
	// The default (0.35) is an empirically tuned constant; its exact value
	// carries no meaning beyond "loose substring/typo tolerance".
	SimilarityThreshold float64 `json:"similarity_threshold" yaml:"similarity_threshold"`
}

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ExtractionConfig holds settings for the extraction pipeline.
type ExtractionConfig struct {
	AIConfig `yaml:",inline"`

	// InputDir is the directory of raw source documents (.txt or .pdf).
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutPath is the output JSON dataset path.
	OutPath string `json:"out_path" yaml:"out_path"`

	// DryRun synthesizes placeholder records instead of calling the model.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// PDF switches the pipeline to the PDF document source.
	PDF bool `json:"pdf" yaml:"pdf"`

	// Limit caps the number of documents processed (PDF source only).
	// Zero means no cap.
	Limit int `json:"limit" yaml:"limit"`

	// MaxInputChars truncates document text embedded in the prompt
	// (default 20000).
	MaxInputChars int `json:"max_input_chars" yaml:"max_input_chars"`
}

// BookmarksConfig holds settings for the bookmark store.
type BookmarksConfig struct {
	// DBPath is the SQLite database path holding the bookmark set.
	DBPath string `json:"db_path" yaml:"db_path"`
}

// CatalogConfig groups all component configurations.
type CatalogConfig struct {
	Dataset    DatasetConfig    `json:"dataset" yaml:"dataset"`
	Search     SearchConfig     `json:"search" yaml:"search"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Bookmarks  BookmarksConfig  `json:"bookmarks" yaml:"bookmarks"`
}
