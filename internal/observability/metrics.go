package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the alert
// aggregation pipeline.
type Metrics struct {
	// Per-provider fetch metrics.
	ProviderRequests *prometheus.CounterVec   // labels: provider, outcome={success,error}
	ProviderDuration *prometheus.HistogramVec // labels: provider
	AlertsFetched    *prometheus.CounterVec   // labels: provider

	// Aggregation metrics.
	Aggregations        prometheus.Counter
	AggregationDuration prometheus.Histogram
	AlertsReturned      prometheus.Histogram
}

// NewMetrics creates and registers all aggregation metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_alerts",
			Name:      "provider_requests_total",
			Help:      "Feed requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "disaster_alerts",
			Name:      "provider_request_duration_seconds",
			Help:      "Feed request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		AlertsFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_alerts",
			Name:      "alerts_fetched_total",
			Help:      "Raw alerts fetched per provider before ranking.",
		}, []string{"provider"}),
		Aggregations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "disaster_alerts",
			Name:      "aggregations_total",
			Help:      "Total aggregation pipeline invocations.",
		}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "disaster_alerts",
			Name:      "aggregation_duration_seconds",
			Help:      "Duration of a complete fetch-merge-rank cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		AlertsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "disaster_alerts",
			Name:      "alerts_returned",
			Help:      "Ranked alerts returned to the caller per aggregation.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
	}

	prometheus.MustRegister(
		m.ProviderRequests,
		m.ProviderDuration,
		m.AlertsFetched,
		m.Aggregations,
		m.AggregationDuration,
		m.AlertsReturned,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ProviderRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "disaster_alerts", Name: "provider_requests_total"}, []string{"provider", "outcome"}),
		ProviderDuration:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "disaster_alerts", Name: "provider_request_duration_seconds"}, []string{"provider"}),
		AlertsFetched:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "disaster_alerts", Name: "alerts_fetched_total"}, []string{"provider"}),
		Aggregations:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "disaster_alerts", Name: "aggregations_total"}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "disaster_alerts", Name: "aggregation_duration_seconds"}),
		AlertsReturned:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "disaster_alerts", Name: "alerts_returned"}),
	}
}
