// Package sa implements the simulated-annealing explorer of spec.md §4.E.2:
// numChains independent chains, each running a Metropolis search with a
// composite Gaussian/swap/reset perturbation, fanned out over a worker
// pool sized to numChains and cancellable via context.
package sa

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campusopt/hsaga/domain"
	"github.com/campusopt/hsaga/errs"
	"github.com/campusopt/hsaga/fitness"
	"github.com/campusopt/hsaga/observer"
	"github.com/campusopt/hsaga/rng"
)

// Config holds the explicit SA tuning parameters of spec.md §4.E.1.
type Config struct {
	NumChains               int
	IterationsPerChain      int
	InitialTemp             float64
	FinalTemp               float64
	CoolingRate             float64
	SigmaTemperatureDivisor float64
}

// DefaultConfig returns spec.md's documented SA defaults.
func DefaultConfig() Config {
	return Config{
		NumChains:               8,
		IterationsPerChain:      400,
		InitialTemp:             1000,
		FinalTemp:               0.1,
		CoolingRate:             0.95,
		SigmaTemperatureDivisor: 10,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.NumChains <= 0 {
		c.NumChains = d.NumChains
	}
	if c.IterationsPerChain <= 0 {
		c.IterationsPerChain = d.IterationsPerChain
	}
	if c.InitialTemp <= 0 {
		c.InitialTemp = d.InitialTemp
	}
	if c.FinalTemp <= 0 {
		c.FinalTemp = d.FinalTemp
	}
	if c.CoolingRate <= 0 || c.CoolingRate >= 1 {
		c.CoolingRate = d.CoolingRate
	}
	if c.SigmaTemperatureDivisor <= 0 {
		c.SigmaTemperatureDivisor = d.SigmaTemperatureDivisor
	}
	return c
}

// Perturbation shares (spec.md §4.E.2 "Composite perturbation").
const (
	gaussianShare    = 0.80
	swapShare        = 0.15
	placementMargin  = 5.0
)

// ChainResult is one chain's outcome.
type ChainResult struct {
	Best       *domain.Solution
	Accepted   int
	Rejected   int
	Iterations int
	Duration   time.Duration
}

// Explorer runs the SA stage against a fixed evaluator, building set and
// site.
type Explorer struct {
	Config     Config
	Evaluator  *fitness.Evaluator
	Buildings  []domain.Building
	Site       domain.Bounds
	Observer   observer.Observer
	MasterSeed int64

	// TotalIterations is set by Run to the summed iteration count across
	// every chain that contributed a finalist, for OptimizationResult.Stats.
	TotalIterations int
}

func (e *Explorer) obs() observer.Observer {
	if e.Observer != nil {
		return e.Observer
	}
	return observer.Noop{}
}

// Run executes e.Config.NumChains chains, each as an independent task on a
// worker pool sized to NumChains (spec.md §5 "Scheduling model"), honoring
// ctx cancellation at iteration boundaries. It returns the per-chain bests
// sorted by fitness descending (spec.md §4.E.2 "SA output").
func (e *Explorer) Run(ctx context.Context) ([]*domain.Solution, error) {
	cfg := e.Config.withDefaults()

	results := make([]*ChainResult, cfg.NumChains)
	chainErrs := make([]error, cfg.NumChains)

	// Plain (non-cancel-on-error) errgroup: chains are independent tasks
	// per spec.md §5, so one chain's failure must not cancel its siblings.
	// The pool is sized to NumChains via SetLimit, generalizing the
	// teacher's unbounded sync.WaitGroup fan-out into a cancellation-aware
	// worker pool (ctx cancellation is still observed inside each chain).
	var g errgroup.Group
	g.SetLimit(cfg.NumChains)
	for i := 0; i < cfg.NumChains; i++ {
		i := i
		g.Go(func() error {
			stream := rng.Child(e.MasterSeed, i)
			result, err := e.runChainSafely(ctx, cfg, i, stream)
			results[i] = result
			chainErrs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	var finalists []*domain.Solution
	for i, r := range results {
		if chainErrs[i] != nil || r == nil || r.Best == nil {
			// Sequential fallback re-run (spec.md §4.E.5).
			stream := rng.Child(e.MasterSeed, i)
			retry, retryErr := e.runChain(ctx, cfg, i, stream)
			if retryErr != nil {
				continue
			}
			r = retry
		}
		finalists = append(finalists, r.Best)
		e.TotalIterations += r.Iterations
		e.obs().OnChainComplete(observer.ChainStats{
			ChainIndex:  i,
			Iterations:  r.Iterations,
			Accepted:    r.Accepted,
			Rejected:    r.Rejected,
			BestFitness: r.Best.FitnessValue(),
			Duration:    r.Duration.Seconds(),
		})
	}

	if len(finalists) == 0 {
		return nil, errs.New(errs.OptimizerFault, "no SA chain succeeded")
	}

	sortByFitnessDescending(finalists)
	return finalists, nil
}

// runChainSafely recovers from a panic in a chain's evaluator the way a
// failed worker-pool task would, so the orchestrator's sequential-fallback
// path (spec.md §4.E.5) sees a plain error rather than a crashed goroutine.
func (e *Explorer) runChainSafely(ctx context.Context, cfg Config, i int, stream *rng.Stream) (result *ChainResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errs.New(errs.ChainFault, "chain panicked")
		}
	}()
	return e.runChain(ctx, cfg, i, stream)
}

func (e *Explorer) runChain(ctx context.Context, cfg Config, i int, stream *rng.Stream) (*ChainResult, error) {
	start := time.Now()
	current := randomSolution(e.Buildings, e.Site, stream)
	e.Evaluator.Evaluate(current)

	best := current.Clone()
	temp := cfg.InitialTemp
	accepted, rejected := 0, 0
	iter := 0

	for ; iter < cfg.IterationsPerChain; iter++ {
		select {
		case <-ctx.Done():
			return &ChainResult{Best: best, Accepted: accepted, Rejected: rejected, Iterations: iter, Duration: time.Since(start)}, nil
		default:
		}

		neighbor := current.Clone()
		perturb(neighbor, e.Buildings, e.Site, stream, temp, cfg.SigmaTemperatureDivisor)
		e.Evaluator.Evaluate(neighbor)

		delta := neighbor.FitnessValue() - current.FitnessValue()
		if delta > 0 || stream.Float64() < math.Exp(delta/temp) {
			current = neighbor
			accepted++
		} else {
			rejected++
		}

		if current.FitnessValue() > best.FitnessValue() {
			best = current.Clone()
		}

		temp *= cfg.CoolingRate
		if temp < cfg.FinalTemp {
			iter++
			break
		}
	}

	return &ChainResult{Best: best, Accepted: accepted, Rejected: rejected, Iterations: iter, Duration: time.Since(start)}, nil
}

// randomSolution samples each building's position uniformly within the
// site eroded by radius+margin (spec.md §4.E.2 step 2). No rejection for
// overlap: overlap is penalized by fitness, not forbidden here.
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

// perturb applies exactly one of the composite moves to s in place,
// invalidating its cached fitness (spec.md §4.E.2 "Composite perturbation").
func perturb(s *domain.Solution, buildings []domain.Building, site domain.Bounds, stream *rng.Stream, temp, sigmaDivisor float64) {
	if len(buildings) == 0 {
		return
	}
	roll := stream.Float64()
	switch {
	case roll < gaussianShare:
		gaussianMove(s, buildings, site, stream, temp, sigmaDivisor)
	case roll < gaussianShare+swapShare:
		swapMove(s, buildings, stream)
	default:
		resetMove(s, buildings, site, stream)
	}
}

func gaussianMove(s *domain.Solution, buildings []domain.Building, site domain.Bounds, stream *rng.Stream, temp, sigmaDivisor float64) {
	b := buildings[stream.Intn(len(buildings))]
	sigma := math.Max(temp/sigmaDivisor, 0.1)
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

// sortByFitnessDescending keeps this package free of a sort.Interface
// boilerplate type for the small (numChains-sized) slice it operates on.
func sortByFitnessDescending(sols []*domain.Solution) {
	for i := 1; i < len(sols); i++ {
		for j := i; j > 0 && sols[j].FitnessValue() > sols[j-1].FitnessValue(); j-- {
			sols[j], sols[j-1] = sols[j-1], sols[j]
		}
	}
}
