package middleware

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/folio/pkg/router"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "folio").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
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

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "folio",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for the router.
type metrics struct {
	navigationsTotal  *prometheus.CounterVec
	routeChangesTotal *prometheus.CounterVec
	routeErrorsTotal  *prometheus.CounterVec
}

// registered holds one metrics set per registerer, created on first use.
var (
	registered   = make(map[prometheus.Registerer]*metrics)
	registeredMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		navigationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Navigations that passed every guard, by route pattern",
			ConstLabels: config.ConstLabels,
		}, []string{"pattern"}),

		routeChangesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "route_changes_total",
			Help:        "Successfully dispatched routes, by path",
			ConstLabels: config.ConstLabels,
		}, []string{"path"}),

		routeErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "route_errors_total",
			Help:        "Route errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// Prometheus creates middleware that counts navigations by route pattern.
// Metrics are registered once per registry; later calls with the same
// registry reuse them and ignore their other options.
//
//	r.AddMiddleware(middleware.Prometheus(middleware.WithRegistry(reg)))
func Prometheus(opts ...MetricsOption) router.Middleware {
	m := metricsFor(opts)

	return func(_ context.Context, rc *router.Context) error {
		pattern := rc.Pattern
		if pattern == "" {
			pattern = "/"
		}
		m.navigationsTotal.WithLabelValues(pattern).Inc()
		return nil
	}
}

func metricsFor(opts []MetricsOption) *metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}

	registeredMu.Lock()
	defer registeredMu.Unlock()
	m, ok := registered[config.Registry]
	if !ok {
		m = initMetrics(config)
		registered[config.Registry] = m
	}
	return m
}

// ObserveRouter counts every successful dispatch of r by query-stripped
// path in the registry selected by opts. It returns the unsubscribe func.
func ObserveRouter(r *router.Router, opts ...MetricsOption) (stop func()) {
	m := metricsFor(opts)
	return r.Subscribe(func(ev router.Event) {
		m.routeChangesTotal.WithLabelValues(ev.Path).Inc()
	})
}

// RecordRouteError counts a route error by type in the registry selected by
// opts. A nil error is ignored.
func RecordRouteError(err error, opts ...MetricsOption) {
	if err == nil {
		return
	}
	metricsFor(opts).routeErrorsTotal.WithLabelValues(categorizeError(err)).Inc()
}

// categorizeError maps an error to a low-cardinality label.
func categorizeError(err error) string {
	var (
		handlerErr *router.HandlerError
		panicErr   *router.PanicError
	)
	switch {
	case errors.Is(err, router.ErrRouteNotFound):
		return "not_found"
	case errors.As(err, &panicErr):
		return "panic"
	case errors.As(err, &handlerErr):
		return "handler"
	case strings.Contains(err.Error(), "history"):
		return "history"
	default:
		return "internal"
	}
}
