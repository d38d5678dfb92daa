// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/l10n-engine/internal/bundle"
	"github.com/pdiddy/l10n-engine/internal/catalog"
	"github.com/pdiddy/l10n-engine/internal/glossary"
	"github.com/pdiddy/l10n-engine/internal/search"
	"github.com/pdiddy/l10n-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Look a term up across the catalog, glossary, and bundle",
	Long: `Search fans a term out to the local translation sources: the catalog
(full-text over option keys, names, and descriptions), the terminology
glossary, and the l10n bundle. Sources that are not configured or not
yet created are skipped with a note on stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg := types.SearchConfig{
		CatalogPath:  setting(cmd, "catalog"),
		GlossaryPath: setting(cmd, "glossary"),
		BundlePath:   setting(cmd, "bundle"),
		Namespace:    setting(cmd, "namespace"),
	}

	sources, cleanup, err := buildSources(cfg)
	defer cleanup()
	if err != nil {
		return err
	}

	out, err := search.Search(context.Background(), args[0], sources, limit, os.Stderr)
	if err != nil {
		return err
	}

	switch format {
	case "table":
		search.FormatTable(out, os.Stdout)
		return nil
	case "json":
		return search.FormatJSON(out, os.Stdout)
	default:
		return fmt.Errorf("unsupported format %q: use table or json", format)
	}
}

// buildSources assembles the available sources in their fixed order:
// catalog, glossary, bundle. A source whose backing file does not exist
// is skipped with a note; a configured glossary that fails to load is
// an error, since the user asked for it explicitly.
func buildSources(cfg types.SearchConfig) ([]search.Source, func(), error) {
	var sources []search.Source
	cleanup := func() {}

	if _, err := os.Stat(cfg.CatalogPath); err == nil {
		store, err := catalog.NewStore(types.CatalogConfig{Path: cfg.CatalogPath})
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { store.Close() }
		sources = append(sources, &search.CatalogSource{Store: store})
	} else {
		fmt.Fprintf(os.Stderr, "note: catalog %s not found, skipping catalog source\n", cfg.CatalogPath)
	}

	if cfg.GlossaryPath != "" {
		gl, err := glossary.Load(cfg.GlossaryPath)
		if err != nil {
			return nil, cleanup, err
		}
		sources = append(sources, &search.GlossarySource{Glossary: gl})
	} else {
		fmt.Fprintln(os.Stderr, "note: no glossary configured, skipping glossary source")
	}

	if _, err := os.Stat(cfg.BundlePath); err == nil {
		doc, err := bundle.Load(cfg.BundlePath)
		if err != nil {
			return nil, cleanup, err
		}
		sources = append(sources, &search.BundleSource{Doc: doc, Namespace: cfg.Namespace})
	} else {
		fmt.Fprintf(os.Stderr, "note: bundle %s not found, skipping bundle source\n", cfg.BundlePath)
	}

	return sources, cleanup, nil
}

func init() {
	searchCmd.Flags().String("format", "table", "output format: table or json")
	searchCmd.Flags().Int("limit", 0, "maximum merged results (0 = all)")
	searchCmd.Flags().String("catalog", "", "catalog database file (default: "+defaultCatalog+")")
	searchCmd.Flags().String("glossary", "", "terminology glossary YAML")
	searchCmd.Flags().String("bundle", "", "l10n bundle file (default: "+defaultBundle+")")
	searchCmd.Flags().String("namespace", "", "bundle namespace scope (default: "+defaultNamespace+")")

	rootCmd.AddCommand(searchCmd)
}
