// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wfcatalog/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a dataset file against the record schema",
	Long: `Validate parses the dataset JSON and checks every record against the
schema. Any violation exits non-zero with the offending field path; no
partial collection is ever accepted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := catalogConfig().Dataset.Source
	if len(args) == 1 {
		path = args[0]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading dataset %s: %w", path, err)
	}

	papers, err := schema.NormalizeCollection(data)
	if err != nil {
		return fmt.Errorf("校验失败: %w", err)
	}

	fmt.Printf("校验通过：%d 条记录\n", len(papers))
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
