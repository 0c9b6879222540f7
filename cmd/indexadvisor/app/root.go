// Package app provides the entry point for the indexadvisor command-line application.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "indexadvisor",
	DisableAutoGenTag: true,
	Short:             "indexadvisor recommends vector index configurations for a workload",
	Long: `indexadvisor recommends vector index configurations for a workload.

Given the shape of a deployment (vector count, dimensionality, latency and
memory targets), it picks an index family, sizes its build and search
parameters, and estimates memory footprint, build time, query latency and
recall. It can also validate hand-written index parameters against hard
limits and recommended operating bounds.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			fmt.Fprintf(os.Stderr, "Error displaying help: %v\n", err)
		}
	},
}

// NewRootCmd creates a new root command for the index advisor CLI.
func NewRootCmd() *cobra.Command {
	rootCmd.SilenceUsage = true

	// Add subcommands
	rootCmd.AddCommand(newRecommendCmd())
	rootCmd.AddCommand(newWizardCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}
