// Package metrics instruments automaton build and search operations for
// Prometheus scraping. Unlike a package-level singleton exporter, every
// metric here is registered against a caller-supplied registry, so a library
// consumer embedding this module can fold its metrics into their own
// /metrics endpoint instead of owning an HTTP server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector groups the gauges/counters/histograms this module emits.
type Collector struct {
	BuildDuration   prometheus.Histogram
	BuildStateCount prometheus.Gauge
	SearchMatches   prometheus.Counter
}

// NewCollector creates and registers a Collector against reg. Panics if
// any metric name collides with an already-registered collector, matching
// prometheus.MustRegister's own behavior.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "corasick",
			Name:      "build_duration_seconds",
			Help:      "Time taken to build and prepare an automaton.",
			Buckets:   prometheus.DefBuckets,
		}),
		BuildStateCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "corasick",
			Name:      "automaton_state_count",
			Help:      "Number of states in the currently active automaton.",
		}),
		SearchMatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "corasick",
			Name:      "search_matches_total",
			Help:      "Total number of OutputResults produced across all CompleteSearch calls.",
		}),
	}

	reg.MustRegister(c.BuildDuration, c.BuildStateCount, c.SearchMatches)
	return c
}
