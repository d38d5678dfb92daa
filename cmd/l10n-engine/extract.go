package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/l10n-engine/internal/extract"
	"github.com/pdiddy/l10n-engine/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Scan the options database and print the translation prompt and template",
	Long: `Extract scans the options database for entries whose name and
description are still in Chinese and prints two reports to stdout: a
prompt listing every entry for a chat assistant, and a JSON template
with empty slots for the English translations. Nothing is written to
disk; fill in the template and feed it to "l10n-engine merge".`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := types.ExtractConfig{
		DatabasePath: setting(cmd, "database"),
		Namespace:    setting(cmd, "namespace"),
		GlossaryPath: setting(cmd, "glossary"),
	}
	return extract.Run(cfg, os.Stdout)
}

func init() {
	extractCmd.Flags().String("database", "", "options database file (default: "+defaultDatabase+")")
	extractCmd.Flags().String("namespace", "", "localization key prefix (default: "+defaultNamespace+")")
	extractCmd.Flags().String("glossary", "", "terminology glossary YAML folded into the prompt")

	rootCmd.AddCommand(extractCmd)
}
