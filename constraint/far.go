package constraint

import "github.com/campusopt/hsaga/domain"

// FAR bounds the floor-area ratio (total floor area over site area) of a
// solution (spec.md §4.C).
type FAR struct {
	MaxRatio float64
}

func (FAR) Description() string { return "far" }

func (c FAR) ratio(buildings []domain.Building, site domain.Bounds) float64 {
	siteArea := site.Area()
	if siteArea <= 0 {
		return 0
	}
	total := 0.0
	for _, b := range buildings {
		total += b.Area
	}
	return total / siteArea
}

func (c FAR) Check(_ *domain.Solution, site domain.Bounds, buildings []domain.Building) bool {
	if c.MaxRatio <= 0 {
		return true
	}
	return c.ratio(buildings, site) <= c.MaxRatio
}

// Penalty shares the excess-fraction shape of Coverage: 0 at MaxRatio,
// clamped to 1 at 2*MaxRatio.
func (c FAR) Penalty(_ *domain.Solution, site domain.Bounds, buildings []domain.Building) float64 {
	if c.MaxRatio <= 0 {
		return 0
	}
	ratio := c.ratio(buildings, site)
	if ratio <= c.MaxRatio {
		return 0
	}
	return clamp01((ratio - c.MaxRatio) / c.MaxRatio)
}
