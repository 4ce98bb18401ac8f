// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wfcatalog/internal/catalog"
	"github.com/pdiddy/wfcatalog/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered record set to a file",
	Long: `Export applies the same filter engine the browser uses (query, year
range, facet selections, bookmarks-only) and writes the result as JSON or
YAML. Useful for sharing a curated subset of the catalog.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := catalogConfig()

	cat, err := catalog.Open(context.Background(), cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer cat.Close()

	state := types.NewFilterState()
	state.Query, _ = cmd.Flags().GetString("query")
	state.Venues, _ = cmd.Flags().GetStringSlice("venue")
	state.Subfields, _ = cmd.Flags().GetStringSlice("subfield")
	state.Tasks, _ = cmd.Flags().GetStringSlice("task")
	state.Features, _ = cmd.Flags().GetStringSlice("feature")
	state.Models, _ = cmd.Flags().GetStringSlice("model")
	state.Tags, _ = cmd.Flags().GetStringSlice("tag")
	state.BookmarksOnly, _ = cmd.Flags().GetBool("bookmarks-only")

	if sortKey, _ := cmd.Flags().GetString("sort"); sortKey != "" {
		state.Sort = types.SortOption(sortKey)
	}

	minYear, _ := cmd.Flags().GetInt("min-year")
	maxYear, _ := cmd.Flags().GetInt("max-year")
	if minYear != 0 || maxYear != 0 {
		if maxYear == 0 {
			maxYear = cat.Facets.MaxYear
		}
		if minYear == 0 {
			minYear = cat.Facets.MinYear
		}
		state.YearRange = &types.YearRange{Min: minYear, Max: maxYear}
	}

	result := cat.Filter(state)

	format, _ := cmd.Flags().GetString("format")
	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(result)
	case "json", "":
		data, err = json.MarshalIndent(result, "", "  ")
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing export %s: %w", outPath, err)
	}
	fmt.Printf("exported %d record(s) to %s\n", len(result), outPath)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "json", "output format: json or yaml")
	exportCmd.Flags().String("out", "", "output path (stdout when empty)")
	exportCmd.Flags().String("query", "", "free-text query")
	exportCmd.Flags().String("sort", "", "sort key: year-desc, year-asc, or title")
	exportCmd.Flags().StringSlice("venue", nil, "venue selections")
	exportCmd.Flags().StringSlice("subfield", nil, "subfield selections")
	exportCmd.Flags().StringSlice("task", nil, "task selections")
	exportCmd.Flags().StringSlice("feature", nil, "feature selections")
	exportCmd.Flags().StringSlice("model", nil, "model selections")
	exportCmd.Flags().StringSlice("tag", nil, "tag selections")
	exportCmd.Flags().Bool("bookmarks-only", false, "restrict to bookmarked records")
	exportCmd.Flags().Int("min-year", 0, "minimum publication year")
	exportCmd.Flags().Int("max-year", 0, "maximum publication year")

	rootCmd.AddCommand(exportCmd)
}
