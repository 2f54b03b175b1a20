package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RecordsFetched      prometheus.Counter
	RecordsSkipped      *prometheus.CounterVec
	DeparturesPublished prometheus.Gauge
	BoardRuns           *prometheus.CounterVec
	ProcessingTime      prometheus.Histogram
	ErrorsCount         *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates new prometheus metrics registered on their own registry
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		RecordsFetched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_records_fetched_total",
			Help:      "The total number of raw departure records fetched from the feed",
		}),
		RecordsSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_records_skipped_total",
			Help:      "The total number of malformed records skipped, by reason",
		}, []string{"reason"}),
		DeparturesPublished: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "board_departures",
			Help:      "Number of rows on the most recently published board",
		}),
		BoardRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "board_runs_total",
			Help:      "The total number of board runs, by outcome",
		}, []string{"outcome"}),
		ProcessingTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "board_run_duration_seconds",
			Help:      "Time taken to fetch, aggregate and publish a board",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
		registry: registry,
	}
}

// Registry exposes the registry for the /metrics handler
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Push sends the current values to a Pushgateway, for one-shot runs
func (m *Metrics) Push(url, job string) error {
	return push.New(url, job).Gatherer(m.registry).Push()
}
