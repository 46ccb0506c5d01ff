package objective

import "github.com/campusopt/hsaga/domain"

// CostOracle returns a per-m² construction cost for a building type. Its
// implementation (e.g. a Turkish-standards cost table) is an external
// collaborator; the core only consumes this function signature
// (spec.md §1 Non-goals, §3 "Cost oracle").
type CostOracle func(t domain.Type) float64

// CostConfig configures the Cost objective (spec.md §4.B.1).
type CostConfig struct {
	// Oracle returns the per-m² unit cost for a building type. Required.
	Oracle CostOracle

	// LocationFactor and QualityFactor are multiplicative scalars applied to
	// every building's cost contribution. Both default to 1 when zero.
	LocationFactor float64
	QualityFactor  float64

	// ReferenceTotal is the denominator used to normalize total cost into
	// [0,1] before inversion. If zero, Total(buildings) at 2x the oracle's
	// flat-rate estimate is used as a conservative ceiling.
	ReferenceTotal float64
}

func (c CostConfig) locationFactor() float64 {
	if c.LocationFactor == 0 {
		return 1
	}
	return c.LocationFactor
}

func (c CostConfig) qualityFactor() float64 {
	if c.QualityFactor == 0 {
		return 1
	}
	return c.QualityFactor
}

// Total computes the raw (unnormalized) construction cost of every building
// in the set, independent of placement.
func (c CostConfig) Total(buildings []domain.Building) float64 {
	total := 0.0
	for _, b := range buildings {
		total += c.Oracle(b.Type) * b.Area
	}
	return total * c.locationFactor() * c.qualityFactor()
}

func (c CostConfig) referenceTotal(buildings []domain.Building) float64 {
	if c.ReferenceTotal > 0 {
		return c.ReferenceTotal
	}
	// Conservative ceiling: twice the flat total, so that a reasonably
	// priced campus scores comfortably above 0 rather than saturating at 0.
	return 2 * c.Total(buildings)
}
