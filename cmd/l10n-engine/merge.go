package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/l10n-engine/internal/bundle"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <translations.json>",
	Short: "Fold filled-in translations into the l10n bundle",
	Long: `Merge parses a filled translation template (use "-" to read stdin),
loads the l10n bundle, and folds the translations in: new keys append
in template order, existing keys are updated in place, and entries left
empty in the template are skipped so they never blank an existing
translation. The bundle is rewritten atomically.`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	bundlePath := setting(cmd, "bundle")

	src, err := readTranslations(args[0])
	if err != nil {
		return err
	}

	dst, err := bundle.Load(bundlePath)
	if err != nil {
		return err
	}

	summary := bundle.Merge(dst, src, os.Stdout)

	if dryRun {
		fmt.Printf("Merge summary: %d added, %d updated, %d skipped (dry run, bundle not written)\n",
			summary.Added, summary.Updated, summary.Skipped)
		return nil
	}

	if err := dst.Save(bundlePath); err != nil {
		return err
	}
	fmt.Printf("Merge summary: %d added, %d updated, %d skipped\n",
		summary.Added, summary.Updated, summary.Skipped)
	return nil
}

// readTranslations parses the filled template from path or stdin. Unlike
// the bundle itself, a missing template file is an error.
func readTranslations(path string) (*bundle.Document, error) {
	if path == "-" {
		doc, err := bundle.Parse(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("parsing translations from stdin: %w", err)
		}
		return doc, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening translations %s: %w", path, err)
	}
	defer f.Close()

	doc, err := bundle.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing translations %s: %w", path, err)
	}
	return doc, nil
}

func init() {
	mergeCmd.Flags().String("bundle", "", "l10n bundle file (default: "+defaultBundle+")")
	mergeCmd.Flags().Bool("dry-run", false, "report what would change without writing the bundle")

	rootCmd.AddCommand(mergeCmd)
}
