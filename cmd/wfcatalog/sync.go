// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wfcatalog/internal/dataset"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy the dataset into the front-end data directory",
	Long: `Sync copies the dataset file into the target directory (created if
absent) so the front end serves the latest records. Fails if the source
file is missing.`,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg := catalogConfig().Dataset

	if v, _ := cmd.Flags().GetString("source"); v != "" {
		cfg.Source = v
	}
	if v, _ := cmd.Flags().GetString("target-dir"); v != "" {
		cfg.TargetDir = v
	}

	target, err := dataset.Sync(cfg.Source, cfg.TargetDir)
	if err != nil {
		return err
	}

	fmt.Printf("已同步数据到 %s\n", target)
	return nil
}

func init() {
	syncCmd.Flags().String("source", "", "dataset file to copy (default from config)")
	syncCmd.Flags().String("target-dir", "", "directory to copy into (default from config)")

	rootCmd.AddCommand(syncCmd)
}
