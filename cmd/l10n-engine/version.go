package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of l10n-engine",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("l10n-engine %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
