// Package ga implements the genetic-algorithm refiner of spec.md §4.E.3:
// a three-band seeded population, refined over a configurable number of
// generations by tournament selection, uniform position crossover, and a
// Gaussian/swap/reset mutation mix, with elitist replacement.
package ga

import (
	"context"
	"math"
	"sort"

	"github.com/campusopt/hsaga/domain"
	"github.com/campusopt/hsaga/errs"
	"github.com/campusopt/hsaga/fitness"
	"github.com/campusopt/hsaga/observer"
	"github.com/campusopt/hsaga/rng"
)

// Config holds the explicit GA tuning parameters of spec.md §4.E.1.
type Config struct {
	PopulationSize  int
	Generations     int
	CrossoverRate   float64
	SwapProbability float64
	MutationRate    float64
	GaussianShare   float64
	SwapShare       float64
	ResetShare      float64
	GaussianSigma   float64
	TournamentSize  int
	// EliteSize is accepted for interface completeness with spec.md §4.E.1;
	// the merge-sort-truncate replacement of step 5 already guarantees that
	// the best individuals survive every generation, so no separate
	// elite-reserve step consumes this value.
	EliteSize int
}

// DefaultConfig returns spec.md's documented GA defaults.
func DefaultConfig() Config {
	return Config{
		PopulationSize:  50,
		Generations:     50,
		CrossoverRate:   0.8,
		SwapProbability: 0.5,
		MutationRate:    0.15,
		GaussianShare:   0.7,
		SwapShare:       0.2,
		ResetShare:      0.1,
		GaussianSigma:   30,
		TournamentSize:  3,
		EliteSize:       5,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PopulationSize <= 0 {
		c.PopulationSize = d.PopulationSize
	}
	if c.Generations <= 0 {
		c.Generations = d.Generations
	}
	if c.CrossoverRate < 0 {
		c.CrossoverRate = d.CrossoverRate
	}
	if c.SwapProbability <= 0 {
		c.SwapProbability = d.SwapProbability
	}
	if c.MutationRate < 0 {
		c.MutationRate = d.MutationRate
	}
	if c.GaussianShare == 0 && c.SwapShare == 0 && c.ResetShare == 0 {
		c.GaussianShare, c.SwapShare, c.ResetShare = d.GaussianShare, d.SwapShare, d.ResetShare
	}
	if c.GaussianSigma <= 0 {
		c.GaussianSigma = d.GaussianSigma
	}
	if c.TournamentSize <= 0 {
		c.TournamentSize = d.TournamentSize
	}
	if c.EliteSize <= 0 {
		c.EliteSize = d.EliteSize
	}
	return c
}

const placementMargin = 5.0

// GenerationRecord is one generation's convergence datum (spec.md §4.E.3
// step 6).
type GenerationRecord struct {
	Best float64
	Mean float64
}

// Refiner runs the GA stage, seeded from the SA explorer's finalists.
type Refiner struct {
	Config     Config
	Evaluator  *fitness.Evaluator
	Buildings  []domain.Building
	Site       domain.Bounds
	Observer   observer.Observer
	MasterSeed int64
}

func (r *Refiner) obs() observer.Observer {
	if r.Observer != nil {
		return r.Observer
	}
	return observer.Noop{}
}

// Result is the GA stage's output (spec.md §4.E.3 "Result").
type Result struct {
	Finalists  []*domain.Solution
	History    []GenerationRecord
	Generations int
}

// Run seeds the initial population from saFinalists (sorted by fitness
// descending, as SA returns them) and refines it for Config.Generations
// generations, checking ctx between generations (spec.md §5 "Cancellation
// and timeouts").
func (r *Refiner) Run(ctx context.Context, saFinalists []*domain.Solution) (*Result, error) {
	cfg := r.Config.withDefaults()
	if len(saFinalists) == 0 {
		return nil, errs.New(errs.OptimizerFault, "ga: no SA finalists to seed from")
	}

	stream := rng.Child(r.MasterSeed, 0)
	population := r.seed(cfg, saFinalists, stream)
	for _, s := range population {
		r.Evaluator.Evaluate(s)
	}

	var history []GenerationRecord
	for gen := 0; gen < cfg.Generations; gen++ {
		select {
		case <-ctx.Done():
			return &Result{Finalists: topN(population, 10), History: history, Generations: gen}, nil
		default:
		}

		genStream := rng.Child(r.MasterSeed, gen+1)
		parents := selectParents(population, cfg, genStream)
		offspring := crossoverAll(parents, cfg, genStream)
		for _, o := range offspring {
			mutate(o, r.Buildings, r.Site, cfg, genStream)
		}

		for _, o := range offspring {
			if !o.IsEvaluated() {
				r.Evaluator.Evaluate(o)
			}
		}

		evaluable := 0
		for _, o := range offspring {
			if o.IsEvaluated() {
				evaluable++
			}
		}
		switch {
		case evaluable == 0 && len(population) == 0:
			// Both the incoming population and this generation's offspring
			// are entirely unevaluable: spec.md §4.E.5 calls this impossible
			// absent a misbehaving evaluator, so it is the only case that
			// propagates as an OptimizerFault.
			return nil, errs.New(errs.OptimizerFault, "ga: zero evaluable individuals")
		case evaluable == 0:
			// Keep the previous elites rather than replacing with an
			// all-sentinel generation (spec.md §4.E.5).
			best, mean := bestAndMean(population)
			history = append(history, GenerationRecord{Best: best, Mean: mean})
			r.obs().OnGeneration(observer.GenerationStats{Generation: gen, BestFitness: best, MeanFitness: mean})
			continue
		}

		population = replace(population, offspring, cfg.PopulationSize)

		best, mean := bestAndMean(population)
		history = append(history, GenerationRecord{Best: best, Mean: mean})
		r.obs().OnGeneration(observer.GenerationStats{Generation: gen, BestFitness: best, MeanFitness: mean})
	}

	return &Result{Finalists: topN(population, 10), History: history, Generations: cfg.Generations}, nil
}

// seed builds the three-band initial population (spec.md §4.E.3).
func (r *Refiner) seed(cfg Config, saFinalists []*domain.Solution, stream *rng.Stream) []*domain.Solution {
	n := cfg.PopulationSize
	exploitationN := int(math.Round(float64(n) * 0.5))
	perturbationN := int(math.Round(float64(n) * 0.3))
	diversificationN := n - exploitationN - perturbationN

	population := make([]*domain.Solution, 0, n)

	for i := 0; i < exploitationN; i++ {
		src := saFinalists[i%len(saFinalists)]
		population = append(population, src.Clone())
	}

	top5 := saFinalists
	if len(top5) > 5 {
		top5 = top5[:5]
	}
	// The perturbation band moves one building at an effective SA
	// temperature of 50, using the SA rule sigma = max(T/divisor, 0.1) with
	// the SA default divisor of 10, i.e. sigma = 5.
	const perturbationTemp = 50.0
	perturbationSigma := math.Max(perturbationTemp/10, 0.1)
	for i := 0; i < perturbationN; i++ {
		src := top5[stream.Intn(len(top5))]
		clone := src.Clone()
		gaussianMoveAt(clone, r.Buildings, r.Site, stream, perturbationTemp, perturbationSigma)
		population = append(population, clone)
	}

	for i := 0; i < diversificationN; i++ {
		population = append(population, randomSolution(r.Buildings, r.Site, stream))
	}

	return population
}

func randomSolution(buildings []domain.Building, site domain.Bounds, stream *rng.Stream) *domain.Solution {
	s := domain.New(len(buildings))
	for _, b := range buildings {
		eroded := site.Erode(b.Radius() + placementMargin)
		p := domain.Point{
			X: stream.Uniform(eroded.XMin, eroded.XMax),
			Y: stream.Uniform(eroded.YMin, eroded.YMax),
		}
		s.Set(b.ID, site.Clamp(p))
	}
	return s
}

// selectParents runs populationSize/2 rounds of tournament selection,
// drawing tournamentSize individuals with replacement each round and
// keeping the highest-fitness one (spec.md §4.E.3 step 1). Deep-copied per
// the spec's explicit instruction.
func selectParents(population []*domain.Solution, cfg Config, stream *rng.Stream) []*domain.Solution {
	n := len(population) / 2
	parents := make([]*domain.Solution, 0, n)
	for i := 0; i < n; i++ {
		var winner *domain.Solution
		for k := 0; k < cfg.TournamentSize; k++ {
			cand := population[stream.Intn(len(population))]
			if winner == nil || cand.FitnessValue() > winner.FitnessValue() {
				winner = cand
			}
		}
		parents = append(parents, winner.Clone())
	}
	return parents
}

// crossoverAll pairs parents and applies uniform position crossover with
// probability cfg.CrossoverRate (spec.md §4.E.3 step 2).
func crossoverAll(parents []*domain.Solution, cfg Config, stream *rng.Stream) []*domain.Solution {
	offspring := make([]*domain.Solution, 0, len(parents))
	for i := 0; i+1 < len(parents); i += 2 {
		p1, p2 := parents[i], parents[i+1]
		c1, c2 := p1.Clone(), p2.Clone()
		if stream.Bool(cfg.CrossoverRate) {
			uniformCrossover(c1, c2, cfg.SwapProbability, stream)
		}
		offspring = append(offspring, c1, c2)
	}
	if len(parents)%2 == 1 {
		offspring = append(offspring, parents[len(parents)-1].Clone())
	}
	return offspring
}

// uniformCrossover swaps each building's position between c1 and c2 with
// probability swapProbability, invalidating both children's fitness.
func uniformCrossover(c1, c2 *domain.Solution, swapProbability float64, stream *rng.Stream) {
	for id, p1 := range c1.Positions {
		p2, ok := c2.Positions[id]
		if !ok {
			continue
		}
		if stream.Bool(swapProbability) {
			c1.Set(id, p2)
			c2.Set(id, p1)
		}
	}
}

// mutate applies exactly one of {Gaussian, swap, reset} to s with
// probability cfg.MutationRate (spec.md §4.E.3 step 3).
func mutate(s *domain.Solution, buildings []domain.Building, site domain.Bounds, cfg Config, stream *rng.Stream) {
	if len(buildings) == 0 || !stream.Bool(cfg.MutationRate) {
		return
	}
	roll := stream.Float64()
	switch {
	case roll < cfg.GaussianShare:
		gaussianMoveAt(s, buildings, site, stream, 0, cfg.GaussianSigma)
	case roll < cfg.GaussianShare+cfg.SwapShare:
		swapMove(s, buildings, stream)
	default:
		resetMove(s, buildings, site, stream)
	}
}

// gaussianMoveAt perturbs one random building's position by N(0,sigma),
// clipped to the site minus margin. The temp argument is accepted for
// symmetry with the SA package's signature but unused here: GA mutation
// uses the fixed cfg.GaussianSigma, and the seeding perturbation band
// passes the sigma it derives from its effective temperature directly.
func gaussianMoveAt(s *domain.Solution, buildings []domain.Building, site domain.Bounds, stream *rng.Stream, _ float64, sigma float64) {
	b := buildings[stream.Intn(len(buildings))]
	p := s.Positions[b.ID]
	p.X += stream.NormFloat64() * sigma
	p.Y += stream.NormFloat64() * sigma
	eroded := site.Erode(b.Radius() + placementMargin)
	s.Set(b.ID, eroded.Clamp(p))
}

func swapMove(s *domain.Solution, buildings []domain.Building, stream *rng.Stream) {
	if len(buildings) < 2 {
		return
	}
	i := stream.Intn(len(buildings))
	j := stream.Intn(len(buildings))
	for j == i {
		j = stream.Intn(len(buildings))
	}
	a, b := buildings[i], buildings[j]
	pa, pb := s.Positions[a.ID], s.Positions[b.ID]
	s.Set(a.ID, pb)
	s.Set(b.ID, pa)
}

func resetMove(s *domain.Solution, buildings []domain.Building, site domain.Bounds, stream *rng.Stream) {
	b := buildings[stream.Intn(len(buildings))]
	eroded := site.Erode(b.Radius() + placementMargin)
	p := domain.Point{X: stream.Uniform(eroded.XMin, eroded.XMax), Y: stream.Uniform(eroded.YMin, eroded.YMax)}
	s.Set(b.ID, p)
}

// replace merges current and offspring, sorts by fitness descending, and
// retains the top populationSize (spec.md §4.E.3 step 5).
func replace(current, offspring []*domain.Solution, populationSize int) []*domain.Solution {
	merged := make([]*domain.Solution, 0, len(current)+len(offspring))
	merged = append(merged, current...)
	merged = append(merged, offspring...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].FitnessValue() > merged[j].FitnessValue()
	})
	if len(merged) > populationSize {
		merged = merged[:populationSize]
	}
	return merged
}

func topN(population []*domain.Solution, n int) []*domain.Solution {
	sorted := make([]*domain.Solution, len(population))
	copy(sorted, population)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FitnessValue() > sorted[j].FitnessValue()
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func bestAndMean(population []*domain.Solution) (best, mean float64) {
	if len(population) == 0 {
		return 0, 0
	}
	best = population[0].FitnessValue()
	sum := 0.0
	for _, s := range population {
		f := s.FitnessValue()
		if f > best {
			best = f
		}
		sum += f
	}
	return best, sum / float64(len(population))
}
