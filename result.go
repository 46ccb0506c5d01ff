package hsaga

import (
	"time"

	"github.com/campusopt/hsaga/constraint"
	"github.com/campusopt/hsaga/domain"
)

// StopReason records why Run stopped (spec.md §6.2).
type StopReason string

const (
	Completed StopReason = "Completed"
	Deadline  StopReason = "Deadline"
	Fault     StopReason = "Fault"
)

// Stats is the runtime/evaluation bookkeeping of spec.md §6.2.
type Stats struct {
	Runtime        time.Duration
	SATime         time.Duration
	GATime         time.Duration
	Evaluations    int
	SAIterations   int
	SAChains       int
	GAGenerations  int
}

// Convergence is the optimizer's recorded history (spec.md §6.2).
type Convergence struct {
	SABestPerInterval   []float64
	GABestPerGeneration []float64
	GAMeanPerGeneration []float64
}

// ConstraintReport summarizes constraint satisfaction for the best solution
// (spec.md §6.2, populated only when a ConstraintManager is configured).
type ConstraintReport struct {
	Satisfied  bool
	Penalty    float64
	Violations map[string]float64
}

func fromConstraintReport(r constraint.Report) ConstraintReport {
	return ConstraintReport{
		Satisfied:  r.Satisfied(),
		Penalty:    r.Total,
		Violations: r.Violations,
	}
}

// OptimizationResult is the result record of spec.md §6.2.
type OptimizationResult struct {
	Best              *domain.Solution
	Finalists         []*domain.Solution
	Stats             Stats
	Convergence       Convergence
	ConstraintReport  *ConstraintReport
	StopReason        StopReason
}
