// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/pdiddy/l10n-engine/internal/bundle"
	"github.com/pdiddy/l10n-engine/internal/extract"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove bundle keys no longer generated by the database",
	Long: `Prune scans the options database and removes bundle keys in the
configured namespace that no current entry generates, which happens
when options are renamed or deleted upstream. Keys outside the
namespace are never touched. The doomed keys are listed and confirmed
interactively unless --yes is given.`,
	RunE: runPrune,
}

func runPrune(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	bundlePath := setting(cmd, "bundle")
	namespace := setting(cmd, "namespace")

	records, err := extract.ScanFile(setting(cmd, "database"))
	if err != nil {
		return err
	}

	doc, err := bundle.Load(bundlePath)
	if err != nil {
		return err
	}

	generated := bundle.GeneratedKeys(records, namespace)
	stale := bundle.StaleKeys(doc, generated, namespace)

	if len(stale) == 0 {
		fmt.Println("No stale keys.")
		return nil
	}

	for _, key := range stale {
		fmt.Printf("stale    %s\n", key)
	}

	if dryRun {
		fmt.Printf("Prune summary: %d stale key(s) (dry run, bundle not written)\n", len(stale))
		return nil
	}

	if !yes {
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Remove %d stale key(s) from %s?", len(stale), bundlePath),
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return fmt.Errorf("confirming prune: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted; bundle not written.")
			return nil
		}
	}

	summary := bundle.Prune(doc, generated, namespace)
	if err := doc.Save(bundlePath); err != nil {
		return err
	}
	fmt.Printf("Prune summary: removed %d, kept %d\n", len(summary.Removed), len(summary.Kept))
	return nil
}

func init() {
	pruneCmd.Flags().String("database", "", "options database file (default: "+defaultDatabase+")")
	pruneCmd.Flags().String("namespace", "", "localization key prefix (default: "+defaultNamespace+")")
	pruneCmd.Flags().String("bundle", "", "l10n bundle file (default: "+defaultBundle+")")
	pruneCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	pruneCmd.Flags().Bool("dry-run", false, "list stale keys without asking or writing")

	rootCmd.AddCommand(pruneCmd)
}
