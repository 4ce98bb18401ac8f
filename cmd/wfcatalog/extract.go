// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wfcatalog/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured records from raw paper documents",
	Long: `Extract reads raw paper text (or PDFs with --pdf) from the input
directory and produces schema-validated JSON records, one per document,
processed strictly one at a time.

In live mode each document is sent to the model once; --dry-run skips the
model and synthesizes placeholder records with the same output shape. The
OpenAI credential comes from OPENAI_API_KEY or .secrets/openai-api-key.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := catalogConfig().Extraction

	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.InputDir = v
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.OutPath = v
	}
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		cfg.Model = v
	}
	cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	if noDryRun, _ := cmd.Flags().GetBool("no-dry-run"); noDryRun {
		cfg.DryRun = false
	}
	cfg.PDF, _ = cmd.Flags().GetBool("pdf")
	cfg.Limit, _ = cmd.Flags().GetInt("limit")

	var backend extract.ModelBackend
	if !cfg.DryRun {
		backend = extract.NewOpenAIBackend(cfg.APIKey, cfg.Model)
	}

	count, err := extract.Run(context.Background(), cfg, backend, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("已写入 %d 条记录到 %s\n", count, cfg.OutPath)
	return nil
}

func init() {
	extractCmd.Flags().String("input", "", "directory of source documents (default from config)")
	extractCmd.Flags().String("out", "", "output JSON path (default from config)")
	extractCmd.Flags().String("model", "", "model identifier (default from config)")
	extractCmd.Flags().Bool("dry-run", true, "synthesize placeholder records without calling the model")
	extractCmd.Flags().Bool("no-dry-run", false, "force live mode (overrides --dry-run)")
	extractCmd.Flags().Bool("pdf", false, "process .pdf sources instead of .txt")
	extractCmd.Flags().Int("limit", 0, "cap the number of documents processed (PDF only)")

	rootCmd.AddCommand(extractCmd)
}
