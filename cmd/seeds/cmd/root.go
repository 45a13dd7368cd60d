// Package cmd implements the seeds CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "seeds",
	Short:         "Utilities that grow smart solutions",
	Long:          `seeds bundles small command line utilities for the seeds library, starting with a renderer for YAML table definitions.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
