package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/campusopt/hsaga"
	"github.com/campusopt/hsaga/config"
	"github.com/campusopt/hsaga/errs"
	"github.com/campusopt/hsaga/metrics"
)

var (
	optimizeInput    string
	optimizeOutput   string
	optimizeConfig   string
	optimizeSeed     int64
	optimizeSeedSet  bool
	optimizeDeadline float64
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run the hybrid SA/GA search against a layout request",
	Long: `optimize reads an OptimizationRequest from --input, runs the search,
and writes the OptimizationResult to --output.

Exit codes:
  0  search completed
  2  the request failed validation
  3  the deadline was reached before the search completed (a partial result
     is still written)
  4  the search itself faulted (no SA chain succeeded, or similar)`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeInput, "input", "", "path to the request JSON file (required)")
	optimizeCmd.Flags().StringVar(&optimizeOutput, "output", "", "path to write the result JSON file (required)")
	optimizeCmd.Flags().StringVar(&optimizeConfig, "config", "", "path to an SA/GA tuning-parameters YAML file (optional)")
	optimizeCmd.Flags().Float64Var(&optimizeDeadline, "deadline", 0, "wall-clock budget in seconds (optional; 0 means no deadline)")
	optimizeCmd.Flags().Int64Var(&optimizeSeed, "seed", 0, "master RNG seed override (optional; defaults to the request file's seed)")
	_ = optimizeCmd.MarkFlagRequired("input")
	_ = optimizeCmd.MarkFlagRequired("output")

	optimizeCmd.PreRun = func(cmd *cobra.Command, args []string) {
		optimizeSeedSet = cmd.Flags().Changed("seed")
	}
}

func runOptimize(cmd *cobra.Command, args []string) error {
	rf, err := loadRequestFile(optimizeInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", optimizeInput, err)
		os.Exit(2)
	}

	cfgFile := &config.File{}
	if optimizeConfig != "" {
		cfgFile, err = config.Load(optimizeConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading %s: %v\n", optimizeConfig, err)
			os.Exit(2)
		}
	}

	seed := rf.Seed
	if optimizeSeedSet {
		seed = optimizeSeed
	}

	deadline := time.Time{}
	switch {
	case optimizeDeadline > 0:
		deadline = time.Now().Add(time.Duration(optimizeDeadline * float64(time.Second)))
	case cfgFile.Deadline != nil && *cfgFile.Deadline > 0:
		deadline = time.Now().Add(time.Duration(*cfgFile.Deadline * float64(time.Second)))
	}

	req := rf.toRequest(cfgFile.SA(), cfgFile.GA(), seed, deadline)

	runID := uuid.New().String()
	logger := slog.Default().With("run_id", runID)
	runner := hsaga.Runner{
		Logger:  logger,
		Metrics: metrics.NewRecorder("hsaga"),
	}

	result, err := runner.Run(context.Background(), req)
	if err != nil {
		if errs.Is(err, errs.InputInvalid) {
			fmt.Fprintf(os.Stderr, "invalid request: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "optimization faulted: %v\n", err)
		os.Exit(4)
	}

	if err := writeResultFile(optimizeOutput, runID, result); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", optimizeOutput, err)
		os.Exit(4)
	}

	if result.StopReason == hsaga.Deadline {
		logger.Warn("deadline reached before search completed; partial result written")
		os.Exit(3)
	}

	logger.Info("optimization complete", "fitness", result.Best.FitnessValue())
	return nil
}
