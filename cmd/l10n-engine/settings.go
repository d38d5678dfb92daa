package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// setting returns the effective value for a string flag that shadows a
// viper key of the same name: an explicitly set flag wins, then the
// config file and environment, then the built-in default.
func setting(cmd *cobra.Command, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return f.Value.String()
	}
	return viper.GetString(name)
}
