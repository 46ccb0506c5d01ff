package sa_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusopt/hsaga/domain"
	"github.com/campusopt/hsaga/fitness"
	"github.com/campusopt/hsaga/objective"
	"github.com/campusopt/hsaga/sa"
)

func newExplorer(seed int64) *sa.Explorer {
	buildings := []domain.Building{
		{ID: "A", Type: domain.Residential, Area: 1000, Floors: 2},
		{ID: "B", Type: domain.Dining, Area: 500, Floors: 1},
	}
	site := domain.Bounds{XMin: 0, YMin: 0, XMax: 1000, YMax: 1000}
	eval := &fitness.Evaluator{
		Objectives: []fitness.Weighted{{Objective: objective.Walking{}, Weight: 1}},
		Buildings:  buildings,
		Site:       site,
	}
	return &sa.Explorer{
		Config: sa.Config{
			NumChains:          1,
			IterationsPerChain: 100,
			InitialTemp:        1000,
			FinalTemp:          0.1,
			CoolingRate:        0.95,
		},
		Evaluator:  eval,
		Buildings:  buildings,
		Site:       site,
		MasterSeed: seed,
	}
}

func TestReproducibilityWithSameSeed(t *testing.T) {
	// spec.md §8 scenario S4.
	r1, err := newExplorer(42).Run(context.Background())
	require.NoError(t, err)
	r2, err := newExplorer(42).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, r1, 1)
	require.Len(t, r2, 1)
	assert.Equal(t, r1[0].FitnessValue(), r2[0].FitnessValue())
}

func TestRunReturnsSortedByFitnessDescending(t *testing.T) {
	exp := newExplorer(7)
	exp.Config.NumChains = 4
	exp.Config.IterationsPerChain = 20
	finalists, err := exp.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, finalists, 4)
	for i := 1; i < len(finalists); i++ {
		assert.GreaterOrEqual(t, finalists[i-1].FitnessValue(), finalists[i].FitnessValue())
	}
}

func TestRunRespectsContextCancellation(t *testing.T) {
	exp := newExplorer(1)
	exp.Config.IterationsPerChain = 1_000_000
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	finalists, err := exp.Run(ctx)
	require.NoError(t, err)
	require.Len(t, finalists, 1)
}

func TestEveryFinalistStaysWithinSiteBounds(t *testing.T) {
	exp := newExplorer(99)
	exp.Config.NumChains = 2
	exp.Config.IterationsPerChain = 50
	finalists, err := exp.Run(context.Background())
	require.NoError(t, err)
	for _, sol := range finalists {
		for _, p := range sol.Positions {
			assert.GreaterOrEqual(t, p.X, exp.Site.XMin)
			assert.LessOrEqual(t, p.X, exp.Site.XMax)
			assert.GreaterOrEqual(t, p.Y, exp.Site.YMin)
			assert.LessOrEqual(t, p.Y, exp.Site.YMax)
		}
	}
}
