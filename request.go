package hsaga

import (
	"time"

	"github.com/campusopt/hsaga/domain"
	"github.com/campusopt/hsaga/ga"
	"github.com/campusopt/hsaga/objective"
	"github.com/campusopt/hsaga/sa"
)

// ObjectiveWeight pairs a well-known objective name (objective.NameCost,
// objective.NameAdjacency, ...) with its non-negative weight (spec.md §6.1).
type ObjectiveWeight struct {
	Name   string
	Weight float64
}

// ConstraintSpec selects the optional constraints to enforce (spec.md §6.1
// "constraints: optional list from {...}"). A nil pointer means that
// constraint is absent, not merely zero-valued.
type ConstraintSpec struct {
	SetbackDistance  *float64
	CoverageMaxRatio *float64
	FARMaxRatio      *float64
	GreenMinRatio    *float64
}

// OptimizationRequest is the constructor input of spec.md §6.1.
type OptimizationRequest struct {
	Buildings        []domain.Building
	Bounds           domain.Bounds
	SitePolygon      domain.Polygon // optional
	CostConfig       objective.CostConfig
	AdjacencyWeights *objective.AdjacencyTable // optional; defaults to objective.DefaultCampusAdjacency()
	Objectives       []ObjectiveWeight
	Constraints      *ConstraintSpec // optional
	Roads            *RoadNetwork    // optional; feeds the Connectivity objective

	SAConfig sa.Config
	GAConfig ga.Config

	Seed     int64     // master seed; 0 is a valid, reproducible seed
	Deadline time.Time // optional; zero value means "no deadline"
}

// RoadNetwork is the optional externally-generated road network consumed by
// the Connectivity objective (spec.md §6.3). It is supplied alongside an
// OptimizationRequest rather than produced by it, since road generation is
// explicitly a downstream collaborator's responsibility (spec.md §1
// Non-goals).
type RoadNetwork struct {
	Polylines [][]domain.Point
	Threshold float64
}
