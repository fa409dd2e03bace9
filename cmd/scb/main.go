// Command scb reports, per year, the Swedish region(s) with the highest
// unemployment rate published by Statistics Sweden.
//
// Usage:
//
//	scb report [--format text|json|yaml]
//	scb serve
//
// Settings are read from the environment; see internal/config.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scb",
		Short: "Regional unemployment maxima per year from Statistics Sweden",
		Long: `scb fetches the SCB regional unemployment table, resolves region codes
to names, and lists for every year the region(s) with the highest
unemployment percentage.`,
		SilenceUsage: true,
	}
	root.AddCommand(newReportCmd(), newServeCmd())
	return root
}
