// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wfcatalog CLI: extract paper
// records with a model, validate and sync the dataset, and browse it in
// the terminal.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wfcatalog/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// openaiAPIKey resolves the OpenAI credential: environment first, then the
// .secrets/ directory.
func openaiAPIKey() string {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		return v
	}
	return loadedSecrets["openai-api-key"]
}

// rootCmd is the base command for the wfcatalog CLI.
var rootCmd = &cobra.Command{
	Use:   "wfcatalog",
	Short: "Catalog tooling for website-fingerprinting papers",
	Long: `wfcatalog maintains a structured catalog of website-fingerprinting
papers. An extraction pipeline turns raw paper text or PDFs into validated
JSON records via a language model; the browse command lists, filters, and
bookmarks records in the terminal.

Each operation is a subcommand: extract, validate, sync, browse,
bookmarks, and export.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; absence is not an error.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./wfcatalog.yaml or ~/.config/wfcatalog/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wfcatalog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wfcatalog"))
		}
	}

	viper.SetEnvPrefix("WFCATALOG")
	viper.AutomaticEnv()

	viper.SetDefault("dataset.source", "data/papers.json")
	viper.SetDefault("dataset.target_dir", "frontend/public/data")
	viper.SetDefault("bookmarks.db_path", defaultBookmarkPath())
	viper.SetDefault("extraction.input_dir", "data/raw")
	viper.SetDefault("extraction.out_path", "data/papers.json")
	viper.SetDefault("extraction.model", "gpt-4o-mini")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func defaultBookmarkPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bookmarks.db"
	}
	return filepath.Join(home, ".config", "wfcatalog", "bookmarks.db")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
