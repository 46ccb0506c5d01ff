// Package objective implements the pure scoring functions of spec.md §4.B.
// Every Objective is a pure function of (solution, buildings, site)
// returning a score in [0,1] where higher is better.
package objective

import "github.com/campusopt/hsaga/domain"

// Objective is a single named scoring function. Implementations must be
// side-effect free: they read the solution and domain inputs but never
// mutate them.
type Objective interface {
	// Name identifies this objective in a Solution's per-objective breakdown
	// and in configured weight maps.
	Name() string

	// Score returns a value in [0,1], higher is better.
	Score(s *domain.Solution, buildings []domain.Building, site domain.Bounds) float64
}

// Well-known objective names, used as map keys for weights and breakdowns.
const (
	NameCost          = "cost"
	NameAdjacency     = "adjacency"
	NameAccessibility = "accessibility"
	NameWalking       = "walking"
	NameConnectivity  = "connectivity"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp linearly interpolates v from [loX,hiX] into [loY,hiY], clamping the
// input to [loX,hiX] first. Used by several objectives to map a raw metric
// into [0,1].
func lerp(v, loX, hiX, loY, hiY float64) float64 {
	if v <= loX {
		return loY
	}
	if v >= hiX {
		return hiY
	}
	t := (v - loX) / (hiX - loX)
	return loY + t*(hiY-loY)
}
