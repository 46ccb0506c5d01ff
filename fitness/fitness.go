// Package fitness implements the multi-objective evaluator of spec.md §4.D:
// a weighted sum of Objective scores, scaled down by a capped constraint
// penalty factor, cached on the Solution itself.
package fitness

import (
	"log/slog"
	"sync/atomic"

	"github.com/campusopt/hsaga/constraint"
	"github.com/campusopt/hsaga/domain"
	"github.com/campusopt/hsaga/metrics"
	"github.com/campusopt/hsaga/objective"
)

// MaxPenaltyFactor caps the constraint penalty's effect on fitness, per
// spec.md §4.D step 4 and the preserved Open Question resolution in
// DESIGN.md.
const MaxPenaltyFactor = 0.5

// Weighted pairs an Objective with its non-negative weight.
type Weighted struct {
	Objective objective.Objective
	Weight    float64
}

// Evaluator combines a fixed set of weighted objectives with an optional
// constraint manager into a single [0,1] fitness function. An Evaluator is
// safe for concurrent use: Evaluate mutates only the cached fields of the
// Solution passed to it, plus the Evaluator's atomic evaluation counter.
type Evaluator struct {
	Objectives  []Weighted
	Constraints *constraint.Manager
	Buildings   []domain.Building
	Site        domain.Bounds
	Logger      *slog.Logger
	// Metrics is optional; a nil *metrics.Recorder is safe to call.
	Metrics *metrics.Recorder

	evaluations atomic.Int64
}

func (e *Evaluator) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// normalizedWeights returns each objective's weight divided by the sum of
// all weights, so they sum to 1 regardless of the caller's raw input
// (spec.md §4.D step 3, §6.1 "weights are normalized to sum to 1").
func (e *Evaluator) normalizedWeights() []float64 {
	sum := 0.0
	for _, w := range e.Objectives {
		sum += w.Weight
	}
	out := make([]float64, len(e.Objectives))
	if sum <= 0 {
		if len(out) == 0 {
			return out
		}
		equal := 1.0 / float64(len(out))
		for i := range out {
			out[i] = equal
		}
		return out
	}
	for i, w := range e.Objectives {
		out[i] = w.Weight / sum
	}
	return out
}

// Evaluate returns s's fitness, computing and caching it if not already
// cached (spec.md §4.D steps 1 and 5).
func (e *Evaluator) Evaluate(s *domain.Solution) float64 {
	if s.IsEvaluated() {
		return s.FitnessValue()
	}

	weights := e.normalizedWeights()
	base := 0.0
	objectives := make(map[string]float64, len(e.Objectives))
	for i, w := range e.Objectives {
		score := e.safeScore(w.Objective, s)
		objectives[w.Objective.Name()] = score
		base += weights[i] * score
	}

	penaltyFactor := 0.0
	if e.Constraints != nil {
		penaltyFactor = e.Constraints.TotalPenalty(s, e.Site, e.Buildings)
		if penaltyFactor > MaxPenaltyFactor {
			penaltyFactor = MaxPenaltyFactor
		}
	}

	final := base * (1 - penaltyFactor)
	s.CacheFitness(final, objectives)
	e.evaluations.Add(1)
	e.Metrics.ObserveEvaluation()
	return final
}

// Evaluations returns the number of fitness computations actually
// performed (cache hits don't count), for OptimizationResult.Stats.
func (e *Evaluator) Evaluations() int64 { return e.evaluations.Load() }

// safeScore guards against a misbehaving objective (e.g. a NaN-producing
// singularity) per spec.md §7 EvaluationFault: the score is treated as the
// worst possible (0) and the fault is logged, not propagated.
func (e *Evaluator) safeScore(o objective.Objective, s *domain.Solution) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			e.logger().Warn("objective panicked, scoring as worst",
				slog.String("objective", o.Name()), slog.Any("recover", r))
			score = 0
		}
	}()
	v := o.Score(s, e.Buildings, e.Site)
	if v != v { // NaN
		e.logger().Warn("objective returned NaN, scoring as worst", slog.String("objective", o.Name()))
		return 0
	}
	return v
}
