package roadgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusopt/hsaga/roadgraph"
)

func TestComputeEmptyPolylinesIsZeroValue(t *testing.T) {
	idx := roadgraph.Compute(nil, 0)
	assert.Equal(t, 0, idx.Vertices)
	assert.Equal(t, 0.0, idx.Aggregate())
}

func TestComputeClustersNearbyEndpoints(t *testing.T) {
	// Two polylines sharing an endpoint within the cluster threshold collapse
	// into a single shared node.
	a := roadgraph.Polyline{{X: 0, Y: 0}, {X: 100, Y: 0}}
	b := roadgraph.Polyline{{X: 101, Y: 1}, {X: 100, Y: 100}}
	idx := roadgraph.Compute([]roadgraph.Polyline{a, b}, 10)
	assert.Equal(t, 3, idx.Vertices)
	assert.Equal(t, 2, idx.Edges)
}

func TestAggregateIsClampedToUnitRange(t *testing.T) {
	idx := roadgraph.Indices{Gamma: 1, Alpha: 1, Beta: 100}
	assert.Equal(t, 1.0, idx.Aggregate())
}

func TestMeanEdgeLengthOfSingleSegment(t *testing.T) {
	line := roadgraph.Polyline{{X: 0, Y: 0}, {X: 30, Y: 40}}
	idx := roadgraph.Compute([]roadgraph.Polyline{line}, 1)
	assert.InDelta(t, 50.0, idx.Eta, 1e-6)
}

