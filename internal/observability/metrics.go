package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// scoring service.
type Metrics struct {
	ScoresComputed prometheus.Counter
	ScoreErrors    prometheus.Counter
	ScoreDuration  prometheus.Histogram
	ScoresByBucket *prometheus.CounterVec // label: bucket={Smooth,Moderate,Turbulent,Avoid}

	// Wind sampling metrics.
	WindRequests    *prometheus.CounterVec // label: outcome={success,error}
	WindAPIDuration prometheus.Histogram
	WindEnabled     prometheus.Gauge

	// Score event publishing metrics.
	ScoresPublished prometheus.Counter
	PublishErrors   prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ScoresComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ride_comfort",
			Name:      "scores_computed_total",
			Help:      "Total TCI scores computed.",
		}),
		ScoreErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ride_comfort",
			Name:      "score_errors_total",
			Help:      "Total scoring failures (invalid input).",
		}),
		ScoreDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ride_comfort",
			Name:      "score_duration_seconds",
			Help:      "Duration of a complete score computation, including wind sampling.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}),
		ScoresByBucket: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ride_comfort",
			Name:      "scores_by_bucket_total",
			Help:      "Computed scores by operational bucket.",
		}, []string{"bucket"}),
		WindRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ride_comfort",
			Name:      "wind_requests_total",
			Help:      "Upper-air wind service requests by outcome.",
		}, []string{"outcome"}),
		WindAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ride_comfort",
			Name:      "wind_api_duration_seconds",
			Help:      "Wind service request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		WindEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ride_comfort",
			Name:      "wind_enabled",
			Help:      "1 when realtime wind enrichment is enabled, 0 otherwise.",
		}),
		ScoresPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ride_comfort",
			Name:      "scores_published_total",
			Help:      "Score events published to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ride_comfort",
			Name:      "publish_errors_total",
			Help:      "Score event publish failures.",
		}),
	}

	prometheus.MustRegister(
		m.ScoresComputed,
		m.ScoreErrors,
		m.ScoreDuration,
		m.ScoresByBucket,
		m.WindRequests,
		m.WindAPIDuration,
		m.WindEnabled,
		m.ScoresPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ScoresComputed:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "ride_comfort", Name: "scores_computed_total"}),
		ScoreErrors:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "ride_comfort", Name: "score_errors_total"}),
		ScoreDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "ride_comfort", Name: "score_duration_seconds"}),
		ScoresByBucket:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "ride_comfort", Name: "scores_by_bucket_total"}, []string{"bucket"}),
		WindRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "ride_comfort", Name: "wind_requests_total"}, []string{"outcome"}),
		WindAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "ride_comfort", Name: "wind_api_duration_seconds"}),
		WindEnabled:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "ride_comfort", Name: "wind_enabled"}),
		ScoresPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "ride_comfort", Name: "scores_published_total"}),
		PublishErrors:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "ride_comfort", Name: "publish_errors_total"}),
	}
}
