// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the l10n-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// Built-in defaults, overridable through the config file, environment,
// or flags. The database and namespace defaults reproduce the original
// extraction script when the CLI runs at the editor repository root.
const (
	defaultDatabase  = "src/visual-editor/clang-format/data/clang-format-options-database.ts"
	defaultNamespace = "clangFormat"
	defaultBundle    = "bundle.l10n.json"
	defaultCatalog   = "l10n/catalog.db"
)

// rootCmd is the base command for the l10n-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "l10n-engine",
	Short: "Localization workflow tooling for the clang-format options database",
	Long: `l10n-engine handles the mechanical bookkeeping around translating the
clang-format options database: extracting untranslated entries into a
prompt and template, merging filled-in translations into the l10n
bundle, checking completeness, and pruning stale keys. The translating
itself stays with a human and whatever assistant they paste the prompt
into.

Each workflow stage is a subcommand: extract, merge, check, prune,
catalog, and search.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: .l10n-engine.yaml in . or ~/.config/l10n-engine/)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".l10n-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "l10n-engine"))
		}
	}

	viper.SetEnvPrefix("L10N_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("database", defaultDatabase)
	viper.SetDefault("namespace", defaultNamespace)
	viper.SetDefault("bundle", defaultBundle)
	viper.SetDefault("catalog", defaultCatalog)
	viper.SetDefault("glossary", "")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
