// Package hsaga implements a hybrid simulated-annealing/genetic-algorithm
// optimizer for campus spatial planning: placing a fixed set of buildings
// on a site so as to maximize a weighted multi-objective fitness function
// subject to spatial/regulatory constraints (spec.md §1-§2).
//
// The package is a pure library: Run takes an OptimizationRequest and
// returns an OptimizationResult, touching neither the filesystem nor
// standard output. cmd/hsaga wraps it for command-line use.
package hsaga

import (
	"github.com/campusopt/hsaga/constraint"
	"github.com/campusopt/hsaga/errs"
	"github.com/campusopt/hsaga/fitness"
	"github.com/campusopt/hsaga/objective"
)

// maxFootprintFraction is the spec.md §4.E.4 threshold above which a single
// building's footprint is rejected as OversizedFootprint.
const maxFootprintFraction = 0.8

// validate checks the structural preconditions of spec.md §4.E.4 step 1 and
// §7 InputInvalid.
func validate(req *OptimizationRequest) error {
	if len(req.Buildings) == 0 {
		return errs.New(errs.InputInvalid, "buildings must not be empty")
	}
	if err := req.Bounds.Validate(); err != nil {
		return errs.Wrap(errs.InputInvalid, err, "invalid bounds")
	}
	for _, b := range req.Buildings {
		if err := b.Validate(); err != nil {
			return errs.Wrap(errs.InputInvalid, err, "invalid building")
		}
	}

	siteArea := req.Bounds.Area()
	for _, b := range req.Buildings {
		if b.Footprint() > maxFootprintFraction*siteArea {
			return errs.New(errs.InputInvalid, "building "+b.ID+" footprint exceeds 80% of site area")
		}
	}

	if len(req.Objectives) == 0 {
		return errs.New(errs.InputInvalid, "at least one objective must be configured")
	}
	sum := 0.0
	for _, w := range req.Objectives {
		if w.Weight < 0 {
			return errs.New(errs.InputInvalid, "objective weight must be non-negative")
		}
		sum += w.Weight
	}
	if sum <= 0 {
		return errs.New(errs.InputInvalid, "objective weights must not all be zero")
	}
	return nil
}

// buildObjectives resolves each requested (name, weight) pair into a
// concrete objective.Objective (spec.md §6.1).
func buildObjectives(req *OptimizationRequest) ([]fitness.Weighted, error) {
	adjacency := req.AdjacencyWeights
	if adjacency == nil {
		adjacency = objective.DefaultCampusAdjacency()
	}

	out := make([]fitness.Weighted, 0, len(req.Objectives))
	for _, w := range req.Objectives {
		var obj objective.Objective
		switch w.Name {
		case objective.NameCost:
			obj = objective.Cost{Config: req.CostConfig}
		case objective.NameAdjacency:
			obj = objective.Adjacency{Weights: adjacency}
		case objective.NameAccessibility:
			obj = objective.Accessibility{}
		case objective.NameWalking:
			obj = objective.Walking{}
		case objective.NameConnectivity:
			obj = buildConnectivity(req)
		default:
			return nil, errs.New(errs.InputInvalid, "unknown objective: "+w.Name)
		}
		out = append(out, fitness.Weighted{Objective: obj, Weight: w.Weight})
	}
	return out, nil
}

func buildConnectivity(req *OptimizationRequest) objective.Connectivity {
	if req.Roads == nil {
		return objective.Connectivity{}
	}
	c := objective.Connectivity{Threshold: req.Roads.Threshold}
	for _, line := range req.Roads.Polylines {
		c.Polylines = append(c.Polylines, line)
	}
	return c
}

// buildConstraintManager translates the request's optional ConstraintSpec
// and SitePolygon into a *constraint.Manager (spec.md §6.1, §4.C, §3). A
// SitePolygon is consulted even when ConstraintSpec itself is absent: it is
// a separate constructor input, not one of ConstraintSpec's fields.
func buildConstraintManager(req *OptimizationRequest) *constraint.Manager {
	spec := req.Constraints
	if spec == nil && req.SitePolygon == nil {
		return nil
	}
	var setback, coverage, far, green float64
	if spec != nil {
		if spec.SetbackDistance != nil {
			setback = *spec.SetbackDistance
		}
		if spec.CoverageMaxRatio != nil {
			coverage = *spec.CoverageMaxRatio
		}
		if spec.FARMaxRatio != nil {
			far = *spec.FARMaxRatio
		}
		if spec.GreenMinRatio != nil {
			green = *spec.GreenMinRatio
		}
	}
	return constraint.NewManager(setback, coverage, far, green, req.SitePolygon)
}
