// Package metrics defines Prometheus metrics for bookinglog.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookinglog_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookinglog_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RecordsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookinglog_audit_records_created_total",
			Help: "Audit records created, by action type",
		},
		[]string{"action"},
	)

	StoreLoadFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookinglog_store_load_failures_total",
			Help: "Record store loads that degraded to an empty collection",
		},
	)

	StoreSaveFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bookinglog_store_save_failures_total",
			Help: "Record store saves that were dropped after a write failure",
		},
	)

	WSConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bookinglog_websocket_connections",
			Help: "Active WebSocket connections",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal,
		RecordsCreated, StoreLoadFailures, StoreSaveFailures,
		WSConnections,
	)
}
