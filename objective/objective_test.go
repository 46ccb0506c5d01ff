package objective_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusopt/hsaga/domain"
	"github.com/campusopt/hsaga/objective"
	"github.com/campusopt/hsaga/roadgraph"
)

func TestAdjacencyTwoBuildingScenario(t *testing.T) {
	// spec.md §8 scenario S1.
	a := domain.Building{ID: "A", Type: domain.Residential, Area: 1000, Floors: 2}
	b := domain.Building{ID: "B", Type: domain.Dining, Area: 500, Floors: 1}
	site := domain.Bounds{XMin: 0, YMin: 0, XMax: 1000, YMax: 1000}

	s := domain.New(2)
	s.Set("A", domain.Point{X: 100, Y: 500})
	s.Set("B", domain.Point{X: 300, Y: 500})

	weights := objective.NewAdjacencyTable()
	weights.Set(domain.Residential, domain.Dining, 1.0)

	adj := objective.Adjacency{Weights: weights}
	score := adj.Score(s, []domain.Building{a, b}, site)
	assert.InDelta(t, 0.8889, score, 1e-4)
}

func TestAdjacencySingleBuilding(t *testing.T) {
	a := domain.Building{ID: "A", Type: domain.Residential, Area: 1000, Floors: 2}
	site := domain.Bounds{XMin: 0, YMin: 0, XMax: 1000, YMax: 1000}
	s := domain.New(1)
	s.Set("A", domain.Point{X: 1, Y: 1})

	adj := objective.Adjacency{Weights: objective.NewAdjacencyTable()}
	assert.Equal(t, 1.0, adj.Score(s, []domain.Building{a}, site))
}

func TestWalkingSingleBuilding(t *testing.T) {
	a := domain.Building{ID: "A", Type: domain.Residential, Area: 1000, Floors: 2}
	site := domain.Bounds{XMin: 0, YMin: 0, XMax: 1000, YMax: 1000}
	s := domain.New(1)
	s.Set("A", domain.Point{X: 1, Y: 1})

	w := objective.Walking{}
	assert.Equal(t, 1.0, w.Score(s, []domain.Building{a}, site))
}

func TestWalkingDiagonalEndpointsIsWorst(t *testing.T) {
	a := domain.Building{ID: "A", Type: domain.Residential, Area: 1000, Floors: 2}
	b := domain.Building{ID: "B", Type: domain.Dining, Area: 1000, Floors: 2}
	site := domain.Bounds{XMin: 0, YMin: 0, XMax: 1000, YMax: 1000}
	s := domain.New(2)
	s.Set("A", domain.Point{X: 0, Y: 0})
	s.Set("B", domain.Point{X: 1000, Y: 1000})

	w := objective.Walking{}
	assert.InDelta(t, 0.0, w.Score(s, []domain.Building{a, b}, site), 1e-9)
}

func TestCostInversion(t *testing.T) {
	oracle := func(t domain.Type) float64 { return 100 }
	cfg := objective.CostConfig{Oracle: oracle, ReferenceTotal: 1000}
	cost := objective.Cost{Config: cfg}

	buildings := []domain.Building{
		{ID: "A", Type: domain.Residential, Area: 5, Floors: 1},
	}
	// total = 100*5 = 500; normalized = 0.5; score = 0.5
	score := cost.Score(nil, buildings, domain.Bounds{})
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestAccessibilityNoServicesOrDemandIsPerfect(t *testing.T) {
	acc := objective.Accessibility{}
	buildings := []domain.Building{
		{ID: "A", Type: domain.Library, Area: 100, Floors: 1},
	}
	site := domain.Bounds{XMin: 0, YMin: 0, XMax: 1000, YMax: 1000}
	s := domain.New(1)
	s.Set("A", domain.Point{})
	assert.Equal(t, 1.0, acc.Score(s, buildings, site))
}

func TestConnectivityEmptyNetworkScoresZero(t *testing.T) {
	c := objective.Connectivity{}
	assert.Equal(t, 0.0, c.Score(nil, nil, domain.Bounds{}))
}

func TestConnectivitySimpleLoop(t *testing.T) {
	// A 4-vertex cycle: V=4 E=4 -> mu=1, alpha=mu/(2v-5)=1/3, beta=1,
	// gamma=e/(3(v-2))=4/6=0.667
	line := roadgraph.Polyline{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 0, Y: 0},
	}
	c := objective.Connectivity{Polylines: []roadgraph.Polyline{line}}
	idx := c.Indices()
	assert.Equal(t, 4, idx.Vertices)
	assert.Equal(t, 4, idx.Edges)
	assert.InDelta(t, 1.0, idx.Mu, 1e-9)
	assert.InDelta(t, 1.0/3, idx.Alpha, 1e-9)
	assert.InDelta(t, 1.0, idx.Beta, 1e-9)
}
