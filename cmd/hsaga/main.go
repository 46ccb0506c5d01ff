// Command hsaga is the CLI front end to the optimizer library (spec.md
// §6.4): it reads a layout request from JSON, runs the hybrid SA→GA search,
// and writes the result back out as JSON.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hsaga",
	Short: "Hybrid simulated-annealing/genetic-algorithm campus layout optimizer",
	Long: `hsaga searches for a campus building layout that balances construction
cost, adjacency preferences, pedestrian accessibility, walking distance, and
road-network connectivity, subject to setback, coverage, FAR, and green-space
constraints.

It runs a population of independent simulated-annealing chains to explore the
site broadly, then refines the best chains with a genetic algorithm.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("hsaga", "err", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a terminal error to spec.md §6.4's exit-code contract.
// It is only consulted when Execute itself returns an error (argument
// parsing failures, missing required flags); the optimize command's own run
// loop calls os.Exit directly, both for unreadable input files and so it can
// still write a partial result file on a reached deadline.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, err)
	return 2
}
