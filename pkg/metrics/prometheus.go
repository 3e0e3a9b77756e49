// Package metrics provides Prometheus metrics for the behavior log
// pipeline and its HTTP surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every metric of the process. A single global instance on
// a custom registry is created at init; the constructor stays exported
// so tests can build isolated managers.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Acquisition metrics.
	rowsFetched prometheus.Counter
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter

	// Pipeline metrics.
	eventsNormalized     prometheus.Counter
	retroUnresolved      prometheus.Counter
	retroUnclassified    prometheus.Counter
	missingDailyBuckets  prometheus.Counter
	incompleteSegments   prometheus.Counter
	pipelineRuns         prometheus.Counter
	pipelineBuildSeconds prometheus.Histogram
	dailyRows            prometheus.Gauge

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance on a custom registry, so the default
// Go collector noise stays out of /healthz.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

var globalManager *Manager //nolint:gochecknoglobals // singleton manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "ohbehave",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rowsFetched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_fetched_total",
		Help:      "Total number of raw sheet rows fetched or read from cache",
	})
	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_hits_total",
		Help:      "Total number of acquisitions served from the on-disk cache",
	})
	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_misses_total",
		Help:      "Total number of acquisitions that went to the live sheet",
	})

	m.eventsNormalized = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_normalized_total",
		Help:      "Total number of raw rows turned into resolved events",
	})
	m.retroUnresolved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "retro_unresolved_total",
		Help:      "Total number of retro events dropped as unresolvable",
	})
	m.retroUnclassified = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "retro_unclassified_total",
		Help:      "Hits on the retro decision-table branch assumed unreachable (defect signal)",
	})
	m.missingDailyBuckets = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "missing_daily_buckets_total",
		Help:      "Total number of events whose target date had no daily row",
	})
	m.incompleteSegments = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "incomplete_sleep_segments_total",
		Help:      "Total number of sleep segments or waking days skipped as incomplete",
	})
	m.pipelineRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Total number of completed pipeline runs",
	})
	m.pipelineBuildSeconds = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "build_duration_seconds",
		Help:      "Histogram of full table build durations in seconds",
		Buckets:   m.histogramBuckets,
	})
	m.dailyRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "daily_rows",
		Help:      "Number of rows in the last built daily table",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
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

// GetRegistry returns the registry backing the global manager, for
// serving via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers recording on the global manager.

func RecordRowsFetched(n int) { globalManager.rowsFetched.Add(float64(n)) }
func RecordCacheHit() { globalManager.cacheHits.Inc() }
func RecordCacheMiss() { globalManager.cacheMisses.Inc() }
func RecordEventNormalized() { globalManager.eventsNormalized.Inc() }
func RecordRetroUnresolved() { globalManager.retroUnresolved.Inc() }
func RecordRetroUnclassified() { globalManager.retroUnclassified.Inc() }
func RecordMissingDailyBucket() { globalManager.missingDailyBuckets.Inc() }
func RecordIncompleteSleepSegment() { globalManager.incompleteSegments.Inc() }
func RecordPipelineRun(seconds float64) {
	globalManager.pipelineRuns.Inc()
	globalManager.pipelineBuildSeconds.Observe(seconds)
}
func UpdateDailyRows(n int) { globalManager.dailyRows.Set(float64(n)) }

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records one served request's latency.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}
