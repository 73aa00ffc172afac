package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for waterjug_solves_total.
const (
	outcomeSolved     = "solved"
	outcomeNoSolution = "no_solution"
	outcomeInvalid    = "invalid"
	outcomeError      = "error"
)

type metrics struct {
	solves   *prometheus.CounterVec
	duration prometheus.Histogram
	moves    prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "waterjug_solves_total",
				Help: "Total number of solve requests by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "waterjug_solve_duration_seconds",
				Help:    "Duration of solver runs",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		moves: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "waterjug_path_moves",
				Help:    "Number of actions in returned solutions",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
	reg.MustRegister(m.solves, m.duration, m.moves)
	for _, o := range []string{outcomeSolved, outcomeNoSolution, outcomeInvalid, outcomeError} {
		m.solves.WithLabelValues(o)
	}
	return m
}
