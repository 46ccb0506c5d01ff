package constraint

import "github.com/campusopt/hsaga/domain"

// SitePolygon enforces that every building's placement lies within an
// optional richer site boundary (spec.md §3: a Polygon "contains(point)"
// oracle consulted for constraint checks), in addition to the axis-aligned
// Bounds box the other constraints already use. A nil Polygon disables the
// constraint, matching the zero-limit convention the other constraints use
// for "absent".
type SitePolygon struct {
	Polygon domain.Polygon
}

func (SitePolygon) Description() string { return "site_polygon" }

func (c SitePolygon) violatingFraction(s *domain.Solution, buildings []domain.Building) float64 {
	if c.Polygon == nil || len(buildings) == 0 {
		return 0
	}
	outside := 0
	for _, b := range buildings {
		p, ok := s.Positions[b.ID]
		if !ok {
			continue
		}
		if !c.Polygon.Contains(p) {
			outside++
		}
	}
	return float64(outside) / float64(len(buildings))
}

func (c SitePolygon) Check(s *domain.Solution, _ domain.Bounds, buildings []domain.Building) bool {
	return c.violatingFraction(s, buildings) <= 0
}

// Penalty is the fraction of buildings placed outside the polygon, already
// within [0,1] without needing clamp01's excess-ratio shape.
func (c SitePolygon) Penalty(s *domain.Solution, _ domain.Bounds, buildings []domain.Building) float64 {
	return c.violatingFraction(s, buildings)
}
