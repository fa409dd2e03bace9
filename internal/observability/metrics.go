package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the report pipeline.
type Metrics struct {
	PipelineRunning prometheus.Gauge
	RunsTotal       *prometheus.CounterVec // labels: outcome={success,error}
	RunDuration     prometheus.Histogram
	LastSuccess     prometheus.Gauge

	// Statistics API metrics.
	APIRequests *prometheus.CounterVec   // labels: endpoint={metadata,dataset}, outcome={success,error,unavailable}
	APIDuration *prometheus.HistogramVec // labels: endpoint={metadata,dataset}

	// Aggregation metrics.
	ObservationsTotal   prometheus.Counter
	MissingObservations prometheus.Counter
	YearsReported       prometheus.Counter

	ReportsPublished prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.PipelineRunning,
		m.RunsTotal,
		m.RunDuration,
		m.LastSuccess,
		m.APIRequests,
		m.APIDuration,
		m.ObservationsTotal,
		m.MissingObservations,
		m.YearsReported,
		m.ReportsPublished,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "scb_unemployment",
			Name:      "pipeline_running",
			Help:      "1 while a report run is in progress, 0 otherwise.",
		}),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scb_unemployment",
			Name:      "runs_total",
			Help:      "Report runs by outcome.",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "scb_unemployment",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete fetch-aggregate-publish run.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "scb_unemployment",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful report run.",
		}),
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scb_unemployment",
			Name:      "api_requests_total",
			Help:      "Statistics API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		APIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "scb_unemployment",
			Name:      "api_request_duration_seconds",
			Help:      "Statistics API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		ObservationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "scb_unemployment",
			Name:      "observations_total",
			Help:      "Observations received from the dataset endpoint.",
		}),
		MissingObservations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "scb_unemployment",
			Name:      "observations_missing_total",
			Help:      "Observations carrying the no-data sentinel.",
		}),
		YearsReported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "scb_unemployment",
			Name:      "years_reported_total",
			Help:      "Year reports produced.",
		}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "scb_unemployment",
			Name:      "reports_published_total",
			Help:      "Year reports written to the Kafka sink.",
		}),
	}
}
