package objective

import (
	"github.com/campusopt/hsaga/domain"
	"github.com/campusopt/hsaga/roadgraph"
)

// Connectivity scores the topology of an externally generated road network
// (spec.md §4.B.4). It is the only objective that consumes a collaborator
// input beyond (solution, buildings, site); a Connectivity with no
// polylines set (no road network yet generated) scores 0, since no
// placement-independent default is meaningful.
type Connectivity struct {
	Polylines []roadgraph.Polyline
	Threshold float64
}

func (Connectivity) Name() string { return NameConnectivity }

func (c Connectivity) Score(_ *domain.Solution, _ []domain.Building, _ domain.Bounds) float64 {
	if len(c.Polylines) == 0 {
		return 0
	}
	return roadgraph.Compute(c.Polylines, c.Threshold).Aggregate()
}

// Indices exposes the full Kansky breakdown behind the scalar score, for
// callers that want more than the aggregate.
func (c Connectivity) Indices() roadgraph.Indices {
	return roadgraph.Compute(c.Polylines, c.Threshold)
}
