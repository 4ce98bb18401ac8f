// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/wfcatalog/internal/catalog"
	"github.com/pdiddy/wfcatalog/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse, filter, and bookmark papers in the terminal",
	Long: `Browse loads the dataset, derives the facet index, and opens an
interactive list. Type / to search, f to select facets, b to bookmark,
o to restrict the view to bookmarks.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := catalogConfig()

	if v, _ := cmd.Flags().GetString("data"); v != "" {
		cfg.Dataset.Source = v
	}

	cat, err := catalog.Open(context.Background(), cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer cat.Close()

	program := tea.NewProgram(tui.NewApp(cat), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func init() {
	browseCmd.Flags().String("data", "", "dataset path or URL (default from config)")

	rootCmd.AddCommand(browseCmd)
}
