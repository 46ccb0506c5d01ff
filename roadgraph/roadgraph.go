// Package roadgraph turns a set of road polylines into a graph of
// intersection/endpoint nodes and computes the classical Kansky topology
// indices of that graph (spec.md §4.B.4). The road network itself is always
// produced by a downstream collaborator (tensor-field or agent-based
// generation is explicitly out of scope, spec.md §1); this package only
// consumes the result.
package roadgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"

	"github.com/campusopt/hsaga/domain"
)

// Polyline is an ordered sequence of points describing one road segment, as
// produced by an external road-network generator.
type Polyline []domain.Point

// DefaultClusterThreshold is the distance below which two polyline vertices
// are merged into the same graph node (spec.md §4.B.4).
const DefaultClusterThreshold = 10.0

// Indices holds the Kansky topology measures computed over a road graph
// (spec.md Glossary "Kansky indices").
type Indices struct {
	Vertices int
	Edges    int
	Mu       float64 // circuits
	Alpha    float64 // clamped to [0,1]
	Beta     float64
	Gamma    float64 // clamped to [0,1]
	Eta      float64 // mean edge length
}

// Aggregate combines the Kansky indices into the single connectivity score
// used by the Connectivity objective (spec.md §4.B.4).
func (idx Indices) Aggregate() float64 {
	score := 0.4*idx.Gamma + 0.3*idx.Alpha + 0.3*math.Min(idx.Beta/3, 1)
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Build clusters the vertices of every polyline within threshold of each
// other into a single node, using github.com/katalvlaran/lvlath/core as the
// underlying graph, and adds one edge per consecutive point pair.
func Build(polylines []Polyline, threshold float64) *core.Graph {
	if threshold <= 0 {
		threshold = DefaultClusterThreshold
	}

	g := core.NewGraph(core.WithWeighted())
	clusters := newClusterSet(threshold)

	for _, line := range polylines {
		if len(line) < 2 {
			continue
		}
		prevID := clusters.idFor(line[0])
		mustAddVertex(g, prevID)
		for i := 1; i < len(line); i++ {
			curID := clusters.idFor(line[i])
			mustAddVertex(g, curID)
			if curID != prevID {
				weight := int64(math.Round(domain.DistancePoints(line[i-1], line[i])))
				if weight == 0 {
					weight = 1
				}
				_, _ = g.AddEdge(prevID, curID, weight)
			}
			prevID = curID
		}
	}
	return g
}

func mustAddVertex(g *core.Graph, id string) {
	if !g.HasVertex(id) {
		_ = g.AddVertex(id)
	}
}

// Compute builds the road graph and returns its Kansky indices.
func Compute(polylines []Polyline, threshold float64) Indices {
	g := Build(polylines, threshold)

	v := g.VertexCount()
	e := g.EdgeCount()

	var idx Indices
	idx.Vertices = v
	idx.Edges = e

	if v == 0 {
		return idx
	}

	idx.Mu = math.Max(0, float64(e-v+1))

	alphaDenom := math.Max(1, float64(2*v-5))
	idx.Alpha = clamp01(idx.Mu / alphaDenom)

	idx.Beta = float64(e) / float64(v)

	gammaDenom := math.Max(1, float64(3*(v-2)))
	idx.Gamma = clamp01(float64(e) / gammaDenom)

	idx.Eta = meanEdgeLength(g)

	return idx
}

func meanEdgeLength(g *core.Graph) float64 {
	edges := g.Edges()
	if len(edges) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range edges {
		sum += float64(e.Weight)
	}
	return sum / float64(len(edges))
}

// clusterSet assigns a stable node ID to every point, merging points within
// threshold of a previously seen point (spec.md §4.B.4 "clustering polyline
// endpoints/vertices within a threshold").
type clusterSet struct {
	threshold float64
	reps      []domain.Point
	ids       []string
	next      int
}

func newClusterSet(threshold float64) *clusterSet {
	return &clusterSet{threshold: threshold}
}

func (c *clusterSet) idFor(p domain.Point) string {
	for i, rep := range c.reps {
		if domain.DistancePoints(p, rep) <= c.threshold {
			return c.ids[i]
		}
	}
	id := fmt.Sprintf("n%d", c.next)
	c.next++
	c.reps = append(c.reps, p)
	c.ids = append(c.ids, id)
	return id
}
