// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wfcatalog/internal/bookmarks"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Inspect or clear the persisted bookmark set",
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print bookmarked record identifiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := bookmarks.Open(catalogConfig().Bookmarks.DBPath, os.Stderr)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, id := range store.List() {
			fmt.Println(id)
		}
		return nil
	},
}

var bookmarksClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the bookmark set",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := bookmarks.Open(catalogConfig().Bookmarks.DBPath, os.Stderr)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("bookmarks cleared")
		return nil
	},
}

func init() {
	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksCmd.AddCommand(bookmarksClearCmd)
	rootCmd.AddCommand(bookmarksCmd)
}
