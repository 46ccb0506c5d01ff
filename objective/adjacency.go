package objective

import "github.com/campusopt/hsaga/domain"

// Pair identifies an unordered pair of buildings flagged by the Adjacency
// objective's explainability report.
type Pair struct {
	A, B     string
	Weight   float64
	Distance float64
}

// AdjacencyReport supplements the Adjacency objective's scalar score with
// the "critical" and "good" pairs spec.md §4.B.2 asks for: critical pairs
// are strongly weighted but placed far apart; good pairs are strongly
// weighted and placed close together.
type AdjacencyReport struct {
	QAP      float64
	Critical []Pair
	Good     []Pair
}

// Adjacency scores the QAP-style weighted mean distance between placed
// buildings (spec.md §4.B.2).
type Adjacency struct {
	Weights *AdjacencyTable
}

func (Adjacency) Name() string { return NameAdjacency }

func (a Adjacency) Score(s *domain.Solution, buildings []domain.Building, site domain.Bounds) float64 {
	report := a.Evaluate(s, buildings, site)
	return qapToScore(report.QAP, len(buildings))
}

// Evaluate computes the full AdjacencyReport, including the explainability
// pair lists, for callers that want more than the scalar score.
func (a Adjacency) Evaluate(s *domain.Solution, buildings []domain.Building, _ domain.Bounds) AdjacencyReport {
	n := len(buildings)
	var report AdjacencyReport
	if n < 2 {
		return report
	}

	sum := 0.0
	pairs := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bi, bj := buildings[i], buildings[j]
			w := a.Weights.Get(bi.Type, bj.Type)
			d := domain.Distance(s, bi, bj)
			sum += w * d
			pairs++

			switch {
			case w >= 0.8 && d > 300:
				report.Critical = append(report.Critical, Pair{A: bi.ID, B: bj.ID, Weight: w, Distance: d})
			case w >= 0.8 && d <= 200:
				report.Good = append(report.Good, Pair{A: bi.ID, B: bj.ID, Weight: w, Distance: d})
			}
		}
	}

	report.QAP = sum / float64(pairs)
	return report
}

func qapToScore(qap float64, n int) float64 {
	if n < 2 {
		return 1
	}
	return lerp(qap, 100, 1000, 1.0, 0.0)
}
