package objective

import (
	"math"

	"github.com/campusopt/hsaga/domain"
)

// WeightKind selects the distance-decay function used by the Accessibility
// objective's 2SFCA computation (spec.md §4.B.3).
type WeightKind int

const (
	// WeightGaussian uses exp(-beta*(d/r)^2).
	WeightGaussian WeightKind = iota
	// WeightLinear uses 1 - d/r.
	WeightLinear
	// WeightStep uses 1 inside the catchment radius, 0 outside.
	WeightStep
)

// service/demand partitions of the building type set (spec.md §4.B.3).
var serviceTypes = map[domain.Type]bool{
	domain.Library: true,
	domain.Dining:  true,
	domain.Health:  true,
	domain.Social:  true,
	domain.Sports:  true,
}

// demandTypes is the closed set of building types counted as population
// demand points in the 2SFCA computation (spec.md §4.B.3); "academic" in
// the original's `demand_types` maps onto this module's Educational type.
// Any type in neither serviceTypes nor demandTypes (administrative,
// commercial, ...) is excluded from the computation entirely.
var demandTypes = map[domain.Type]bool{
	domain.Residential: true,
	domain.Educational: true,
}

var demandDensity = map[domain.Type]float64{
	domain.Residential: 20,
	domain.Educational: 10,
}

const defaultDemandDensity = 15

func isService(t domain.Type) bool { return serviceTypes[t] }

func isDemand(t domain.Type) bool { return demandTypes[t] }

func population(b domain.Building) float64 {
	density, ok := demandDensity[b.Type]
	if !ok {
		density = defaultDemandDensity
	}
	return b.Area / density
}

// AccessibilityConfig configures the two-step floating catchment area
// computation.
type AccessibilityConfig struct {
	// Radius is the catchment radius r, in meters. Defaults to 400.
	Radius float64
	// Beta is the Gaussian decay parameter. Defaults to 1.0.
	Beta float64
	// Kind selects the decay function. Defaults to WeightGaussian.
	Kind WeightKind
	// Reference is the normalization denominator for the mean accessibility
	// score. Defaults to 2.0.
	Reference float64
}

func (c AccessibilityConfig) radius() float64 {
	if c.Radius <= 0 {
		return 400
	}
	return c.Radius
}

func (c AccessibilityConfig) beta() float64 {
	if c.Beta <= 0 {
		return 1.0
	}
	return c.Beta
}

func (c AccessibilityConfig) reference() float64 {
	if c.Reference <= 0 {
		return 2.0
	}
	return c.Reference
}

// weight implements W(d) for the configured decay kind. W(d>r) = 0 always.
func (c AccessibilityConfig) weight(d float64) float64 {
	r := c.radius()
	if d > r {
		return 0
	}
	switch c.Kind {
	case WeightLinear:
		return 1 - d/r
	case WeightStep:
		return 1
	default:
		x := d / r
		return math.Exp(-c.beta() * x * x)
	}
}

// Accessibility scores campus-wide 2SFCA accessibility (spec.md §4.B.3).
type Accessibility struct {
	Config AccessibilityConfig
}

func (Accessibility) Name() string { return NameAccessibility }

func (a Accessibility) Score(s *domain.Solution, buildings []domain.Building, _ domain.Bounds) float64 {
	var services, demand []domain.Building
	for _, b := range buildings {
		switch {
		case isService(b.Type):
			services = append(services, b)
		case isDemand(b.Type):
			demand = append(demand, b)
		}
	}
	if len(services) == 0 || len(demand) == 0 {
		return 1
	}

	// Step 1: provider-to-population ratio R_j for each service.
	ratio := make(map[string]float64, len(services))
	for _, svc := range services {
		capacity := svc.Area
		denom := 0.0
		for _, dem := range demand {
			d := domain.Distance(s, dem, svc)
			if d > a.Config.radius() {
				continue
			}
			denom += population(dem) * a.Config.weight(d)
		}
		if denom <= 0 {
			ratio[svc.ID] = 0
			continue
		}
		ratio[svc.ID] = capacity / denom
	}

	// Step 2: accessibility A_i for each demand point.
	sum := 0.0
	for _, dem := range demand {
		access := 0.0
		for _, svc := range services {
			d := domain.Distance(s, dem, svc)
			if d > a.Config.radius() {
				continue
			}
			access += ratio[svc.ID] * a.Config.weight(d)
		}
		sum += access
	}
	mean := sum / float64(len(demand))
	return clamp01(mean / a.Config.reference())
}
