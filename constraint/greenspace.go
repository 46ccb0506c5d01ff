package constraint

import "github.com/campusopt/hsaga/domain"

// GreenSpace requires at least MinRatio of the site to remain unbuilt
// (spec.md §4.C).
type GreenSpace struct {
	MinRatio float64
}

func (GreenSpace) Description() string { return "greenspace" }

func (c GreenSpace) green(buildings []domain.Building, site domain.Bounds) float64 {
	siteArea := site.Area()
	if siteArea <= 0 {
		return 1
	}
	footprint := 0.0
	for _, b := range buildings {
		footprint += b.Footprint()
	}
	return 1 - footprint/siteArea
}

func (c GreenSpace) Check(_ *domain.Solution, site domain.Bounds, buildings []domain.Building) bool {
	if c.MinRatio <= 0 {
		return true
	}
	return c.green(buildings, site) >= c.MinRatio
}

// Penalty is the fractional shortfall below MinRatio, clamped to [0,1].
func (c GreenSpace) Penalty(_ *domain.Solution, site domain.Bounds, buildings []domain.Building) float64 {
	if c.MinRatio <= 0 {
		return 0
	}
	green := c.green(buildings, site)
	if green >= c.MinRatio {
		return 0
	}
	return clamp01((c.MinRatio - green) / c.MinRatio)
}
