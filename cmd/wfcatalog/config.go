// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/wfcatalog/pkg/types"
)

// catalogConfig assembles the component configuration from viper.
func catalogConfig() types.CatalogConfig {
	return types.CatalogConfig{
		Dataset: types.DatasetConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("dataset.timeout"),
				UserAgent: "wfcatalog/" + version,
			},
			Source:    viper.GetString("dataset.source"),
			TargetDir: viper.GetString("dataset.target_dir"),
		},
		Search: types.SearchConfig{
			SimilarityThreshold: viper.GetFloat64("search.similarity_threshold"),
		},
		Extraction: types.ExtractionConfig{
			AIConfig: types.AIConfig{
				Model:  viper.GetString("extraction.model"),
				APIKey: openaiAPIKey(),
			},
			InputDir:      viper.GetString("extraction.input_dir"),
			OutPath:       viper.GetString("extraction.out_path"),
			MaxInputChars: viper.GetInt("extraction.max_input_chars"),
		},
		Bookmarks: types.BookmarksConfig{
			DBPath: viper.GetString("bookmarks.db_path"),
		},
	}
}
