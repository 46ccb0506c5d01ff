package constraint

import "github.com/campusopt/hsaga/domain"

// Setback requires every building's disk to lie inside the site boundary
// eroded by Distance meters (spec.md §4.C).
type Setback struct {
	Distance float64
}

func (Setback) Description() string { return "setback" }

// worstShortfall returns the largest (most violating) per-edge shortfall
// across all buildings, or a value <= 0 if every building satisfies the
// constraint. Scenario S2 (spec.md §8): building of radius 5 at (10,50) on a
// (0,0,100,100) site with d=20 has a left-edge shortfall of
// 20 - (10-5) = 15.
func (c Setback) worstShortfall(s *domain.Solution, site domain.Bounds, buildings []domain.Building) float64 {
	worst := -1e300
	for _, b := range buildings {
		p, ok := s.Positions[b.ID]
		if !ok {
			continue
		}
		r := b.Radius()
		clearances := [4]float64{
			p.X - site.XMin - r, // left
			site.XMax - p.X - r, // right
			p.Y - site.YMin - r, // bottom
			site.YMax - p.Y - r, // top
		}
		for _, clearance := range clearances {
			shortfall := c.Distance - clearance
			if shortfall > worst {
				worst = shortfall
			}
		}
	}
	return worst
}

func (c Setback) Check(s *domain.Solution, site domain.Bounds, buildings []domain.Building) bool {
	if c.Distance <= 0 {
		return true
	}
	return c.worstShortfall(s, site, buildings) <= 0
}

func (c Setback) Penalty(s *domain.Solution, site domain.Bounds, buildings []domain.Building) float64 {
	if c.Distance <= 0 {
		return 0
	}
	v := c.worstShortfall(s, site, buildings)
	if v <= 0 {
		return 0
	}
	return clamp01(v / c.Distance)
}
