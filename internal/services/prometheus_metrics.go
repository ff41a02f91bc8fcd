package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportQueries  *prometheus.CounterVec
	reportDuration *prometheus.HistogramVec
	mutations      *prometheus.CounterVec
	submittedIDs   *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		reportQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_queries_total",
				Help: "Total number of report aggregation queries",
			},
			[]string{"report", "status"},
		),
		reportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_query_duration_milliseconds",
				Help:    "Report aggregation query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"report"},
		),
		mutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_mutations_total",
				Help: "Total number of bulk record mutations",
			},
			[]string{"operation", "status"},
		),
		submittedIDs: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "record_mutation_submitted_ids",
				Help:    "Number of record ids submitted per bulk mutation",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) RecordReportQuery(report, status string) {
	m.reportQueries.WithLabelValues(report, status).Inc()
}

func (m *PrometheusMetrics) ObserveReportDuration(report string, milliseconds float64) {
	m.reportDuration.WithLabelValues(report).Observe(milliseconds)
}

func (m *PrometheusMetrics) RecordMutation(operation, status string, submittedIDs int) {
	m.mutations.WithLabelValues(operation, status).Inc()
	m.submittedIDs.WithLabelValues(operation).Observe(float64(submittedIDs))
}

// NoopMetrics discards all observations. Used in tests.
type NoopMetrics struct{}

func (NoopMetrics) RecordReportQuery(report, status string) {}
func (NoopMetrics) ObserveReportDuration(report string, milliseconds float64) {}
func (NoopMetrics) RecordMutation(operation, status string, submittedIDs int) {}
