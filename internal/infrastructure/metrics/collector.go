// Package metrics provides the Prometheus instrumentation of the service:
// HTTP request counters and latency histograms plus dataset import counters.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector bundles the Prometheus metrics of the service
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	rowsImported    *prometheus.CounterVec
	importsFailed   *prometheus.CounterVec
	importDurations *prometheus.HistogramVec
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	return &Collector{
		httpRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tonban_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tonban_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "path"},
		),
		rowsImported: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tonban_dataset_rows_imported_total",
				Help: "Total number of dataset rows imported",
			},
			[]string{"table"},
		),
		importsFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tonban_dataset_imports_failed_total",
				Help: "Total number of failed table imports",
			},
			[]string{"table"},
		),
		importDurations: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tonban_dataset_import_duration_seconds",
				Help:    "Table import duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
			},
			[]string{"table"},
		),
	}
}

// ObserveRequest records one handled HTTP request
func (c *Collector) ObserveRequest(method, path string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveImport records one completed table import
func (c *Collector) ObserveImport(table string, rows int, duration time.Duration) {
	c.rowsImported.WithLabelValues(table).Add(float64(rows))
	c.importDurations.WithLabelValues(table).Observe(duration.Seconds())
}

// ObserveImportFailure records one failed table import
func (c *Collector) ObserveImportFailure(table string) {
	c.importsFailed.WithLabelValues(table).Inc()
}
