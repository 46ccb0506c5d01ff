package objective

import "github.com/campusopt/hsaga/domain"

// DefaultAdjacencyWeight is the neutral weight assigned to any type pair not
// explicitly configured (spec.md §3).
const DefaultAdjacencyWeight = 0.5

type pairKey struct {
	a, b domain.Type
}

func normalizedPair(a, b domain.Type) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// AdjacencyTable is a symmetric partial function W(type_a, type_b) -> [0,1]
// (spec.md §3). Unspecified pairs default to DefaultAdjacencyWeight.
type AdjacencyTable struct {
	weights map[pairKey]float64
	Default float64
}

// NewAdjacencyTable returns an empty table with the spec's default weight.
func NewAdjacencyTable() *AdjacencyTable {
	return &AdjacencyTable{
		weights: make(map[pairKey]float64),
		Default: DefaultAdjacencyWeight,
	}
}

// Set assigns the weight for the (unordered) pair (a,b). w is not clamped;
// callers are expected to supply values in [0,1] per spec.md §3.
func (t *AdjacencyTable) Set(a, b domain.Type, w float64) {
	t.weights[normalizedPair(a, b)] = w
}

// Get returns the configured weight for (a,b), or the table's default.
func (t *AdjacencyTable) Get(a, b domain.Type) float64 {
	if w, ok := t.weights[normalizedPair(a, b)]; ok {
		return w
	}
	return t.Default
}

// DefaultCampusAdjacency returns a table pre-populated with the
// strongly-preferred pairs spec.md §3 calls out by example
// (residential<->dining at the high end), along with a few other
// commonly-paired types from the domain model. Callers may further
// customize the returned table.
func DefaultCampusAdjacency() *AdjacencyTable {
	t := NewAdjacencyTable()
	t.Set(domain.Residential, domain.Dining, 0.9)
	t.Set(domain.Residential, domain.Social, 0.8)
	t.Set(domain.Residential, domain.Sports, 0.7)
	t.Set(domain.Educational, domain.Library, 0.9)
	t.Set(domain.Educational, domain.Administrative, 0.6)
	t.Set(domain.Health, domain.Residential, 0.6)
	t.Set(domain.Dining, domain.Social, 0.7)
	t.Set(domain.Commercial, domain.Social, 0.6)
	return t
}
