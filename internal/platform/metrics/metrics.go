// Package metrics holds the Prometheus collectors for the review store.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Store counts what a reviewing.Store does. Keep one per registry, a
// second registration of the same names on one registry panics.
type Store struct {
	Mutations      *prometheus.CounterVec
	Persists       *prometheus.CounterVec
	PersistSeconds prometheus.Histogram
	Coalesced      prometheus.Counter
	Reviews        prometheus.Gauge
}

// NewStore creates the collectors and registers them on reg.
// A nil reg leaves them unregistered, which is what the tests want.
func NewStore(reg prometheus.Registerer) *Store {
	m := &Store{
		// Labels: operation (add, update, delete), result (ok, not_found, precondition)
		Mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cropmd_review_mutations_total",
				Help: "Review mutations by operation and result",
			},
			[]string{"operation", "result"},
		),
		// Labels: result (ok, error)
		Persists: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cropmd_review_persists_total",
				Help: "Snapshot writes to the persistence backend",
			},
			[]string{"result"},
		),
		PersistSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cropmd_review_persist_duration_seconds",
				Help:    "Duration of a snapshot write including retries",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
		),
		Coalesced: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cropmd_review_snapshots_coalesced_total",
				Help: "Snapshots replaced by a newer one before they were written",
			},
		),
		Reviews: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cropmd_reviews",
				Help: "Number of reviews currently held by the store",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Mutations, m.Persists, m.PersistSeconds, m.Coalesced, m.Reviews)
	}

	return m
}
