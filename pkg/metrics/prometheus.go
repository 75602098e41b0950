// Package metrics provides Prometheus metrics for the appello roster service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Roster metrics
	mutations        *prometheus.CounterVec
	entityCount      *prometheus.GaugeVec
	cascadeRemovals  prometheus.Counter
	attendanceUpsert prometheus.Counter

	// Storage metrics
	storageLoadFailures *prometheus.CounterVec
	storageSaveFailures *prometheus.CounterVec

	// Export metrics
	exportRows *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "appello",
		subsystem:        "roster",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.mutations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "mutations_total",
			Help:      "Total number of entity mutations by entity and operation",
		},
		[]string{"entity", "op"},
	)

	m.entityCount = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "entity_count",
			Help:      "Current number of stored entities per collection",
		},
		[]string{"entity"},
	)

	m.cascadeRemovals = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cascade_removals_total",
		Help:      "Total number of roster entries removed by athlete-delete cascades",
	})

	m.attendanceUpsert = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "attendance_upserts_total",
		Help:      "Total number of attendance record upserts",
	})

	m.storageLoadFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "storage_load_failures_total",
			Help:      "Snapshot loads that fell back to the empty default",
		},
		[]string{"key"},
	)

	m.storageSaveFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "storage_save_failures_total",
			Help:      "Snapshot saves that failed and left only the in-memory state updated",
		},
		[]string{"key"},
	)

	m.exportRows = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "export_rows_total",
			Help:      "Total number of CSV rows exported per document",
		},
		[]string{"document"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method and status",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordMutation increments the mutation counter for an entity/operation pair.
func RecordMutation(entity, op string) {
	globalManager.mutations.WithLabelValues(entity, op).Inc()
}

// UpdateEntityCount sets the current size of a collection.
func UpdateEntityCount(entity string, count int) {
	globalManager.entityCount.WithLabelValues(entity).Set(float64(count))
}

// RecordCascadeRemovals adds n roster entries removed by a cascade.
func RecordCascadeRemovals(n int) {
	globalManager.cascadeRemovals.Add(float64(n))
}

// RecordAttendanceUpsert increments the attendance upsert counter.
func RecordAttendanceUpsert() {
	globalManager.attendanceUpsert.Inc()
}

// RecordStorageLoadFailure increments the load-failure counter for key.
func RecordStorageLoadFailure(key string) {
	globalManager.storageLoadFailures.WithLabelValues(key).Inc()
}

// RecordStorageSaveFailure increments the save-failure counter for key.
func RecordStorageSaveFailure(key string) {
	globalManager.storageSaveFailures.WithLabelValues(key).Inc()
}

// RecordExportRows adds the number of data rows produced by a CSV export.
func RecordExportRows(document string, rows int) {
	globalManager.exportRows.WithLabelValues(document).Add(float64(rows))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom Prometheus registry used by the metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
