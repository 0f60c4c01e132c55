package middleware

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/argroute/argroute/pkg/router"
)

// MetricsConfig configures the Prometheus resolver instrumentation.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "argroute").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for resolve duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus resolver instrumentation.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "argroute",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for argroute.
type metrics struct {
	resolutionsTotal *prometheus.CounterVec
	resolveDuration  prometheus.Histogram
	candidatesTried  prometheus.Histogram
	registeredRoutes prometheus.Gauge
}

// globalMetrics is the singleton metrics instance.
// Created on first call to Prometheus().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		resolutionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolutions_total",
			Help:        "Total number of argv resolutions by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		resolveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resolve_duration_seconds",
			Help:        "Resolution duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		candidatesTried: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "candidates_tried",
			Help:        "Endpoints tried per resolution before success or exhaustion",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 2, 5, 10, 25, 50, 100},
		}),

		registeredRoutes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "registered_routes",
			Help:        "Number of registered route endpoints",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Prometheus wraps a matcher so every resolution is recorded.
//
// Metrics collected:
//   - argroute_resolutions_total: Counter of resolutions by status
//     (matched, unmatched, error)
//   - argroute_resolve_duration_seconds: Histogram of resolution duration
//   - argroute_candidates_tried: Histogram of endpoints tried per resolution
//   - argroute_registered_routes: Gauge set via RecordRegisteredRoutes
//
// Example:
//
//	c := router.NewEndpointCollection()
//	// ... register routes ...
//	m := middleware.Prometheus(router.NewResolver(c),
//	    middleware.WithNamespace("myapp"),
//	)
//	middleware.RecordRegisteredRoutes(c.Len())
//
//	// Expose metrics however the application already does:
//	http.Handle("/metrics", promhttp.Handler())
func Prometheus(next router.Matcher, opts ...MetricsOption) router.Matcher {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Initialize metrics once
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return &metricsMatcher{next: next, metrics: m}
}

type metricsMatcher struct {
	next    router.Matcher
	metrics *metrics
}

// Resolve implements router.Matcher.
func (w *metricsMatcher) Resolve(argv []string) (*router.Result, error) {
	start := time.Now()
	result, err := w.next.Resolve(argv)
	w.metrics.resolveDuration.Observe(time.Since(start).Seconds())

	status := "unmatched"
	switch {
	case err != nil:
		status = "error"
	case result.Matched:
		status = "matched"
	}
	w.metrics.resolutionsTotal.WithLabelValues(status).Inc()

	if result != nil {
		w.metrics.candidatesTried.Observe(float64(result.Candidates))
	}

	return result, err
}

// RecordRegisteredRoutes records the current size of the endpoint collection.
// Call this after the registration phase (and again after any later
// registration, if the application allows one).
func RecordRegisteredRoutes(count int) {
	if globalMetrics != nil {
		globalMetrics.registeredRoutes.Set(float64(count))
	}
}
