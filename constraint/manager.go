package constraint

import "github.com/campusopt/hsaga/domain"

// Report is the per-constraint breakdown produced by a Manager, keyed by
// each constraint's Description() so callers (fitness, CLI output) get a
// stable violation key instead of an index (spec.md §4.D, §6.2).
type Report struct {
	Violations map[string]float64
	Total      float64
}

// Satisfied reports whether every constraint in the report passed.
func (r Report) Satisfied() bool {
	for _, p := range r.Violations {
		if p > 0 {
			return false
		}
	}
	return true
}

// Manager evaluates a fixed set of constraints against a solution.
type Manager struct {
	Constraints []Constraint
}

// NewManager builds a Manager from the four standard campus constraints plus
// an optional richer site boundary. A zero-valued limit (or a nil polygon)
// disables that constraint (it always reports 0 penalty), matching the
// zero-guards already present on each Constraint.
func NewManager(setback, coverageMax, farMax, greenMin float64, polygon domain.Polygon) *Manager {
	return &Manager{
		Constraints: []Constraint{
			Setback{Distance: setback},
			Coverage{MaxRatio: coverageMax},
			FAR{MaxRatio: farMax},
			GreenSpace{MinRatio: greenMin},
			SitePolygon{Polygon: polygon},
		},
	}
}

// CheckAll reports whether every constraint is satisfied.
func (m *Manager) CheckAll(s *domain.Solution, site domain.Bounds, buildings []domain.Building) bool {
	for _, c := range m.Constraints {
		if !c.Check(s, site, buildings) {
			return false
		}
	}
	return true
}

// Evaluate runs every constraint and returns the keyed violation report
// along with the summed penalty (spec.md §4.D: the summed penalty feeds the
// fitness penalty factor, capped there at 0.5, not here). Per spec.md §4.C,
// `violations = {description: penalty | penalty > 0}`: a satisfied
// constraint contributes to Total but is omitted from the map entirely.
func (m *Manager) Evaluate(s *domain.Solution, site domain.Bounds, buildings []domain.Building) Report {
	r := Report{Violations: make(map[string]float64, len(m.Constraints))}
	for _, c := range m.Constraints {
		p := c.Penalty(s, site, buildings)
		if p > 0 {
			r.Violations[c.Description()] = p
		}
		r.Total += p
	}
	return r
}

// TotalPenalty is a convenience for callers that only need the scalar sum.
func (m *Manager) TotalPenalty(s *domain.Solution, site domain.Bounds, buildings []domain.Building) float64 {
	return m.Evaluate(s, site, buildings).Total
}
