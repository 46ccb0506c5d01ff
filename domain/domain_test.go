package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusopt/hsaga/domain"
)

func TestBuildingDerived(t *testing.T) {
	b := domain.Building{ID: "a", Type: domain.Residential, Area: 1000, Floors: 2}
	assert.Equal(t, 500.0, b.Footprint())
	assert.InDelta(t, 12.6157, b.Radius(), 1e-3)
	assert.NoError(t, b.Validate())
}

func TestBuildingValidateRejectsUnknownType(t *testing.T) {
	b := domain.Building{ID: "a", Type: "spaceport", Area: 100, Floors: 1}
	assert.Error(t, b.Validate())
}

func TestBoundsErodeAndContains(t *testing.T) {
	b := domain.Bounds{XMin: 0, YMin: 0, XMax: 100, YMax: 100}
	eroded := b.Erode(10)
	assert.Equal(t, domain.Bounds{XMin: 10, YMin: 10, XMax: 90, YMax: 90}, eroded)
	assert.True(t, eroded.Contains(domain.Point{X: 50, Y: 50}))
	assert.False(t, eroded.Contains(domain.Point{X: 5, Y: 5}))
}

func TestSolutionInvalidateOnSet(t *testing.T) {
	s := domain.New(1)
	s.CacheFitness(0.5, map[string]float64{"cost": 0.5})
	require.True(t, s.IsEvaluated())

	s.Set("a", domain.Point{X: 1, Y: 1})
	assert.False(t, s.IsEvaluated())
}

func TestSolutionCloneIndependent(t *testing.T) {
	s := domain.New(1)
	s.Set("a", domain.Point{X: 1, Y: 1})
	s.CacheFitness(0.7, map[string]float64{"cost": 0.7})

	clone := s.Clone()
	clone.Set("a", domain.Point{X: 9, Y: 9})

	assert.Equal(t, domain.Point{X: 1, Y: 1}, s.Positions["a"])
	assert.Equal(t, domain.Point{X: 9, Y: 9}, clone.Positions["a"])
	assert.True(t, s.IsEvaluated())
	assert.False(t, clone.IsEvaluated())
}

func TestSolutionValidate(t *testing.T) {
	buildings := []domain.Building{
		{ID: "a", Type: domain.Residential, Area: 100, Floors: 1},
		{ID: "b", Type: domain.Dining, Area: 100, Floors: 1},
	}
	s := domain.New(2)
	s.Set("a", domain.Point{})
	assert.Error(t, s.Validate(buildings))

	s.Set("b", domain.Point{})
	assert.NoError(t, s.Validate(buildings))
}

func TestOverlaps(t *testing.T) {
	a := domain.Building{ID: "a", Type: domain.Residential, Area: 1000, Floors: 2}
	b := domain.Building{ID: "b", Type: domain.Dining, Area: 500, Floors: 1}
	s := domain.New(2)
	s.Set("a", domain.Point{X: 0, Y: 0})
	s.Set("b", domain.Point{X: 5, Y: 0})
	assert.True(t, domain.Overlaps(s, a, b, 5))

	s.Set("b", domain.Point{X: 1000, Y: 0})
	assert.False(t, domain.Overlaps(s, a, b, 5))
}
