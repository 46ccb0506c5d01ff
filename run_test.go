package hsaga_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusopt/hsaga"
	"github.com/campusopt/hsaga/domain"
	"github.com/campusopt/hsaga/ga"
	"github.com/campusopt/hsaga/objective"
	"github.com/campusopt/hsaga/sa"
)

func smallRequest(seed int64) hsaga.OptimizationRequest {
	return hsaga.OptimizationRequest{
		Buildings: []domain.Building{
			{ID: "A", Type: domain.Residential, Area: 1000, Floors: 2},
			{ID: "B", Type: domain.Dining, Area: 500, Floors: 1},
			{ID: "C", Type: domain.Library, Area: 800, Floors: 3},
		},
		Bounds:     domain.Bounds{XMin: 0, YMin: 0, XMax: 500, YMax: 500},
		CostConfig: objective.CostConfig{Oracle: func(domain.Type) float64 { return 500 }},
		Objectives: []hsaga.ObjectiveWeight{
			{Name: objective.NameWalking, Weight: 0.5},
			{Name: objective.NameAdjacency, Weight: 0.5},
		},
		SAConfig: sa.Config{NumChains: 2, IterationsPerChain: 30},
		GAConfig: ga.Config{PopulationSize: 10, Generations: 5},
		Seed:     seed,
	}
}

func TestRunProducesEvaluatedBest(t *testing.T) {
	result, err := hsaga.Run(context.Background(), smallRequest(1))
	require.NoError(t, err)
	require.NotNil(t, result.Best)
	assert.True(t, result.Best.IsEvaluated())
	assert.GreaterOrEqual(t, result.Best.FitnessValue(), 0.0)
	assert.LessOrEqual(t, result.Best.FitnessValue(), 1.0)
	assert.Equal(t, hsaga.Completed, result.StopReason)
	assert.NoError(t, result.Best.Validate(smallRequest(1).Buildings))
}

func TestRunRejectsEmptyBuildings(t *testing.T) {
	req := smallRequest(1)
	req.Buildings = nil
	_, err := hsaga.Run(context.Background(), req)
	assert.Error(t, err)
}

func TestRunRejectsOversizedFootprint(t *testing.T) {
	req := smallRequest(1)
	req.Buildings = []domain.Building{
		{ID: "Huge", Type: domain.Administrative, Area: 1_000_000, Floors: 1},
	}
	_, err := hsaga.Run(context.Background(), req)
	assert.Error(t, err)
}

func TestRunRejectsAllZeroWeights(t *testing.T) {
	req := smallRequest(1)
	req.Objectives = []hsaga.ObjectiveWeight{{Name: objective.NameWalking, Weight: 0}}
	_, err := hsaga.Run(context.Background(), req)
	assert.Error(t, err)
}

func TestRunIsReproducibleWithSameSeed(t *testing.T) {
	r1, err := hsaga.Run(context.Background(), smallRequest(42))
	require.NoError(t, err)
	r2, err := hsaga.Run(context.Background(), smallRequest(42))
	require.NoError(t, err)
	assert.Equal(t, r1.Best.FitnessValue(), r2.Best.FitnessValue())
}

// emptyPolygon contains no point; every placement violates it.
type emptyPolygon struct{}

func (emptyPolygon) Contains(domain.Point) bool { return false }

func TestRunConsultsSitePolygonWithoutConstraintSpec(t *testing.T) {
	req := smallRequest(1)
	req.SitePolygon = emptyPolygon{}
	result, err := hsaga.Run(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result.ConstraintReport)
	assert.Contains(t, result.ConstraintReport.Violations, "site_polygon")
	assert.Equal(t, 1.0, result.ConstraintReport.Violations["site_polygon"])
	assert.False(t, result.ConstraintReport.Satisfied)
}

func TestRunWithConstraintsPopulatesReport(t *testing.T) {
	req := smallRequest(5)
	// Larger than any building's best-case (dead-centered) clearance on a
	// 500x500 site, so the constraint is violated no matter where the
	// optimizer places the buildings; the violation is guaranteed to survive
	// into the report regardless of search outcome.
	setback := 1000.0
	req.Constraints = &hsaga.ConstraintSpec{SetbackDistance: &setback}
	result, err := hsaga.Run(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result.ConstraintReport)
	assert.Contains(t, result.ConstraintReport.Violations, "setback")
	assert.False(t, result.ConstraintReport.Satisfied)
}
