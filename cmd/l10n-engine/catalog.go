// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/l10n-engine/internal/bundle"
	"github.com/pdiddy/l10n-engine/internal/catalog"
	"github.com/pdiddy/l10n-engine/internal/extract"
	"github.com/pdiddy/l10n-engine/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the translation catalog (store, retrieve, export)",
	Long: `Catalog manages a local SQLite translation memory built from the
options database and the l10n bundle. Use subcommands to index the
current state, look up how an option was translated before, or export
a snapshot.`,
}

// --- store subcommand ---

var catalogStoreCmd = &cobra.Command{
	Use:   "store",
	Short: "Index the options database and bundle into the catalog",
	Long: `Store scans the options database, upserts every entry into the
catalog with FTS5 indexing, and records the translations currently in
the l10n bundle. Unchanged files are skipped on subsequent runs.`,
	RunE: runCatalogStore,
}

func runCatalogStore(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	databasePath := setting(cmd, "database")
	records, err := extract.ScanFile(databasePath)
	if err != nil {
		return err
	}
	if _, err := store.StoreOptions(ctx, records, databasePath, force, os.Stdout); err != nil {
		return err
	}

	bundlePath := setting(cmd, "bundle")
	if _, err := os.Stat(bundlePath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "note: bundle %s not found, skipping translations\n", bundlePath)
		return nil
	}
	doc, err := bundle.Load(bundlePath)
	if err != nil {
		return err
	}
	_, err = store.StoreTranslations(ctx, doc, setting(cmd, "namespace"), bundlePath, force, os.Stdout)
	return err
}

// --- retrieve subcommand ---

var catalogRetrieveCmd = &cobra.Command{
	Use:   "retrieve",
	Short: "Query the catalog for options and their stored translations",
	Long: `Retrieve queries the catalog by exact key, by FTS5 full-text match
over keys, names, and descriptions, or for entries still missing a
stored translation.`,
	RunE: runCatalogRetrieve,
}

func runCatalogRetrieve(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd)
	if opts.IsEmpty() {
		return fmt.Errorf("query required: provide --key, --match, or --untranslated")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(results, jsonOutput)
}

func formatRetrieveOutput(results []catalog.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-28s  %-18s  %-22s  %s\n",
		"Key", "Name", "Translated", "Description")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range results {
		fmt.Fprintf(os.Stdout, "%-28s  %-18s  %-22s  %s\n",
			clip(r.Key, 28), clip(r.Name, 18), clip(r.TranslatedName, 22), clip(r.Description, 40))
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// clip shortens s to max runes for table display.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as JSON or YAML",
	Long: `Export writes the full catalog to stdout ordered by option key.
Redirect to a file to snapshot the translation memory.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Export(context.Background(), os.Stdout, format)
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return types.CatalogConfig{
		Path:       setting(cmd, "catalog"),
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command) catalog.QueryOptions {
	key, _ := cmd.Flags().GetString("key")
	match, _ := cmd.Flags().GetString("match")
	untranslated, _ := cmd.Flags().GetBool("untranslated")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Key:          key,
		Match:        match,
		Untranslated: untranslated,
		MaxResults:   limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog", "", "catalog database file (default: "+defaultCatalog+")")
	catalogCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Store flags.
	catalogStoreCmd.Flags().String("database", "", "options database file (default: "+defaultDatabase+")")
	catalogStoreCmd.Flags().String("bundle", "", "l10n bundle file (default: "+defaultBundle+")")
	catalogStoreCmd.Flags().String("namespace", "", "localization key prefix (default: "+defaultNamespace+")")
	catalogStoreCmd.Flags().Bool("force", false, "re-index even when source files are unchanged")

	// Retrieve flags.
	catalogRetrieveCmd.Flags().String("key", "", "exact option key")
	catalogRetrieveCmd.Flags().String("match", "", "FTS5 query over key, name, and description")
	catalogRetrieveCmd.Flags().Bool("untranslated", false, "only options still missing a translation")
	catalogRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "json", "export format: json or yaml")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogStoreCmd)
	catalogCmd.AddCommand(catalogRetrieveCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
