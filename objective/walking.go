package objective

import "github.com/campusopt/hsaga/domain"

// Walking scores the mean pairwise distance between all placed buildings,
// normalized against the site diagonal; smaller mean distance is better
// (spec.md §4.B.5). A single-building layout has no pairs and scores a
// perfect 1.0 (spec.md §8 invariant 11).
type Walking struct{}

func (Walking) Name() string { return NameWalking }

func (Walking) Score(s *domain.Solution, buildings []domain.Building, site domain.Bounds) float64 {
	n := len(buildings)
	if n < 2 {
		return 1
	}

	diag := site.Diagonal()
	if diag <= 0 {
		return 0
	}

	sum := 0.0
	pairs := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += domain.Distance(s, buildings[i], buildings[j])
			pairs++
		}
	}
	mean := sum / float64(pairs)
	normalized := mean / diag
	return clamp01(1 - normalized)
}
