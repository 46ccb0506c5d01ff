// Package metrics exposes Prometheus instrumentation around the SA chain
// and GA generation boundaries described in spec.md §5. It is purely
// observational: nothing in sa/ga depends on metrics being wired up, and a
// nil *Recorder is always safe to call.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder owns the optimizer's Prometheus collectors. Register it with a
// prometheus.Registerer once per process. A *Recorder obtained via
// NewRecorder is ready to use, and a nil *Recorder records nothing.
type Recorder struct {
	Evaluations   prometheus.Counter
	ChainDuration prometheus.Histogram
	ChainAccepted prometheus.Counter
	ChainRejected prometheus.Counter
	Generation    prometheus.Gauge
	GenerationFit *prometheus.GaugeVec
}

// NewRecorder builds the optimizer's collector set under the given
// namespace (e.g. "hsaga").
func NewRecorder(namespace string) *Recorder {
	return &Recorder{
		Evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Total number of fitness evaluations performed.",
		}),
		ChainDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chain_duration_seconds",
			Help:      "Wall-clock duration of a completed SA chain.",
			Buckets:   prometheus.DefBuckets,
		}),
		ChainAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_accepted_total",
			Help:      "Total number of accepted SA Metropolis moves.",
		}),
		ChainRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_rejected_total",
			Help:      "Total number of rejected SA Metropolis moves.",
		}),
		Generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ga_generation",
			Help:      "Index of the GA generation currently in progress.",
		}),
		GenerationFit: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ga_generation_fitness",
			Help:      "Best/mean fitness of the current GA generation.",
		}, []string{"stat"}),
	}
}

// MustRegister registers every collector with reg, panicking on a
// registration error (mirroring prometheus.MustRegister's own contract).
func (r *Recorder) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(r.Evaluations, r.ChainDuration, r.ChainAccepted, r.ChainRejected, r.Generation, r.GenerationFit)
}

func (r *Recorder) observeEvaluation() {
	if r == nil {
		return
	}
	r.Evaluations.Inc()
}

func (r *Recorder) observeChain(durationSeconds float64, accepted, rejected int) {
	if r == nil {
		return
	}
	r.ChainDuration.Observe(durationSeconds)
	r.ChainAccepted.Add(float64(accepted))
	r.ChainRejected.Add(float64(rejected))
}

func (r *Recorder) observeGeneration(gen int, best, mean float64) {
	if r == nil {
		return
	}
	r.Generation.Set(float64(gen))
	r.GenerationFit.WithLabelValues("best").Set(best)
	r.GenerationFit.WithLabelValues("mean").Set(mean)
}

// ObserveEvaluation increments the evaluations counter. Safe on a nil
// *Recorder.
func (r *Recorder) ObserveEvaluation() { r.observeEvaluation() }

// ObserveChain records a completed SA chain's duration and move counts.
// Safe on a nil *Recorder.
func (r *Recorder) ObserveChain(durationSeconds float64, accepted, rejected int) {
	r.observeChain(durationSeconds, accepted, rejected)
}

// ObserveGeneration records a completed GA generation's best/mean fitness.
// Safe on a nil *Recorder.
func (r *Recorder) ObserveGeneration(gen int, best, mean float64) {
	r.observeGeneration(gen, best, mean)
}
