package objective

import "github.com/campusopt/hsaga/domain"

// Cost scores total construction cost, inverted so that higher is better
// (spec.md §4.B.1). Placement does not affect the raw cost; only the
// building set and the oracle do, so Score is constant across solutions
// sharing the same building set. It exists as an Objective (rather than a
// plain constant) so it composes uniformly with the placement-sensitive
// objectives inside the Evaluator.
type Cost struct {
	Config CostConfig
}

func (Cost) Name() string { return NameCost }

func (c Cost) Score(_ *domain.Solution, buildings []domain.Building, _ domain.Bounds) float64 {
	ref := c.Config.referenceTotal(buildings)
	if ref <= 0 {
		return 1
	}
	total := c.Config.Total(buildings)
	normalized := total / ref
	return clamp01(1 - normalized)
}
