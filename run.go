package hsaga

import (
	"context"
	"log/slog"
	"time"

	"github.com/campusopt/hsaga/domain"
	"github.com/campusopt/hsaga/errs"
	"github.com/campusopt/hsaga/fitness"
	"github.com/campusopt/hsaga/ga"
	"github.com/campusopt/hsaga/metrics"
	"github.com/campusopt/hsaga/observer"
	"github.com/campusopt/hsaga/sa"
)

// Runner holds the optional collaborators (logging, metrics, progress
// observation) that Run consults beyond the request itself. The zero
// Runner is ready to use: it logs via slog.Default(), records no metrics,
// and reports no progress.
type Runner struct {
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Observer observer.Observer
}

func (r Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Run executes the two-stage SA→GA pipeline of spec.md §4.E.4 and returns
// the assembled result. A zero-value Runner{} is a valid, fully functional
// configuration.
func (r Runner) Run(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	start := time.Now()

	if err := validate(&req); err != nil {
		return nil, err
	}

	weighted, err := buildObjectives(&req)
	if err != nil {
		return nil, err
	}
	constraintMgr := buildConstraintManager(&req)

	eval := &fitness.Evaluator{
		Objectives:  weighted,
		Constraints: constraintMgr,
		Buildings:   req.Buildings,
		Site:        req.Bounds,
		Logger:      r.logger(),
		Metrics:     r.Metrics,
	}

	if !req.Deadline.IsZero() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, req.Deadline)
		defer cancel()
	}

	explorer := &sa.Explorer{
		Config:     req.SAConfig,
		Evaluator:  eval,
		Buildings:  req.Buildings,
		Site:       req.Bounds,
		Observer:   r.observer(),
		MasterSeed: req.Seed,
	}

	saStart := time.Now()
	saFinalists, err := explorer.Run(ctx)
	saTime := time.Since(saStart)
	if err != nil {
		return nil, errs.Wrap(errs.OptimizerFault, err, "SA stage failed")
	}

	refiner := &ga.Refiner{
		Config:     req.GAConfig,
		Evaluator:  eval,
		Buildings:  req.Buildings,
		Site:       req.Bounds,
		Observer:   r.observer(),
		MasterSeed: req.Seed,
	}

	gaStart := time.Now()
	gaResult, err := refiner.Run(ctx, saFinalists)
	gaTime := time.Since(gaStart)
	if err != nil {
		return nil, errs.Wrap(errs.OptimizerFault, err, "GA stage failed")
	}

	best := pickBest(saFinalists, gaResult.Finalists)

	stopReason := Completed
	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			stopReason = Deadline
		}
	default:
	}

	result := &OptimizationResult{
		Best:      best,
		Finalists: gaResult.Finalists,
		Stats: Stats{
			Runtime:       time.Since(start),
			SATime:        saTime,
			GATime:        gaTime,
			Evaluations:   int(eval.Evaluations()),
			SAIterations:  explorer.TotalIterations,
			SAChains:      len(saFinalists),
			GAGenerations: gaResult.Generations,
		},
		Convergence: Convergence{
			SABestPerInterval:   bestPerChain(saFinalists),
			GABestPerGeneration: bestHistory(gaResult.History),
			GAMeanPerGeneration: meanHistory(gaResult.History),
		},
		StopReason: stopReason,
	}

	if constraintMgr != nil && best != nil {
		report := constraintMgr.Evaluate(best, req.Bounds, req.Buildings)
		cr := fromConstraintReport(report)
		result.ConstraintReport = &cr
	}

	return result, nil
}

// Run executes req with a default Runner{} (default logging, no metrics, no
// progress observer). Use Runner.Run directly to supply any of those.
func Run(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	return Runner{}.Run(ctx, req)
}

// observer wraps the caller's Observer (if any) so that every chain/
// generation event also feeds the Metrics recorder, if one is configured.
// ObserveChain/ObserveGeneration are no-ops on a nil *metrics.Recorder, so
// this is safe regardless of whether Metrics was set.
func (r Runner) observer() observer.Observer {
	user := r.Observer
	rec := r.Metrics
	return observer.Func{
		Chain: func(s observer.ChainStats) {
			rec.ObserveChain(s.Duration, s.Accepted, s.Rejected)
			if user != nil {
				user.OnChainComplete(s)
			}
		},
		Generation: func(s observer.GenerationStats) {
			rec.ObserveGeneration(s.Generation, s.BestFitness, s.MeanFitness)
			if user != nil {
				user.OnGeneration(s)
			}
		},
	}
}

// pickBest selects the highest-fitness solution across both stages' output,
// safe under solutions that were never evaluated (spec.md §4.E.4 step 4).
func pickBest(saFinalists, gaFinalists []*domain.Solution) *domain.Solution {
	var best *domain.Solution
	consider := func(s *domain.Solution) {
		if s == nil || !s.IsEvaluated() {
			return
		}
		if best == nil || s.FitnessValue() > best.FitnessValue() {
			best = s
		}
	}
	for _, s := range saFinalists {
		consider(s)
	}
	for _, s := range gaFinalists {
		consider(s)
	}
	return best
}

func bestPerChain(finalists []*domain.Solution) []float64 {
	out := make([]float64, len(finalists))
	for i, s := range finalists {
		out[i] = s.FitnessValue()
	}
	return out
}

func bestHistory(history []ga.GenerationRecord) []float64 {
	out := make([]float64, len(history))
	for i, h := range history {
		out[i] = h.Best
	}
	return out
}

func meanHistory(history []ga.GenerationRecord) []float64 {
	out := make([]float64, len(history))
	for i, h := range history {
		out[i] = h.Mean
	}
	return out
}
