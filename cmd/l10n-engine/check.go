package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/l10n-engine/internal/bundle"
	"github.com/pdiddy/l10n-engine/internal/extract"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report database entries still missing bundle translations",
	Long: `Check scans the options database, loads the l10n bundle, and lists
every generated key that is absent from the bundle or present with an
empty value, in database order. The exit status is non-zero while any
key still awaits translation, so the command slots into CI.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	records, err := extract.ScanFile(setting(cmd, "database"))
	if err != nil {
		return err
	}

	doc, err := bundle.Load(setting(cmd, "bundle"))
	if err != nil {
		return err
	}

	report := bundle.Check(records, setting(cmd, "namespace"), doc)

	for _, e := range report.Pending {
		if e.Missing {
			fmt.Printf("missing  %s\n", e.Key)
		} else {
			fmt.Printf("empty    %s\n", e.Key)
		}
	}

	missing, empty := report.Counts()
	fmt.Printf("Check summary: %d keys, %d missing, %d empty\n", report.Total, missing, empty)

	if !report.Complete() {
		return fmt.Errorf("%d key(s) await translation", len(report.Pending))
	}
	return nil
}

func init() {
	checkCmd.Flags().String("database", "", "options database file (default: "+defaultDatabase+")")
	checkCmd.Flags().String("namespace", "", "localization key prefix (default: "+defaultNamespace+")")
	checkCmd.Flags().String("bundle", "", "l10n bundle file (default: "+defaultBundle+")")

	rootCmd.AddCommand(checkCmd)
}
