package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/carbon/pkg/action"
	"github.com/vango-dev/carbon/pkg/adapter"
	"github.com/vango-dev/carbon/pkg/diff"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "carbon").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: 100µs to ~1.6s, exponential.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
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
		Namespace: "carbon",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 15),
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for one set of adapters and
// dispatchers.
type Metrics struct {
	renders   *prometheus.CounterVec
	ops       *prometheus.CounterVec
	durations *prometheus.HistogramVec
	actions   *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors.
// Registering twice with the same registry panics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of renders by mode and status",
			ConstLabels: config.ConstLabels,
		}, []string{"mode", "status"}),

		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_ops_total",
			Help:        "Total number of edit operations applied to views",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds, diff included",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"mode"}),

		actions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "actions_total",
			Help:        "Total number of dispatched actions by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),
	}
}

// Render returns adapter middleware recording render metrics.
func (m *Metrics) Render() adapter.Middleware {
	return func(info *adapter.RenderInfo, next func() error) error {
		start := time.Now()
		err := next()
		mode := info.Mode.String()
		m.durations.WithLabelValues(mode).Observe(time.Since(start).Seconds())

		status := "success"
		if err != nil {
			status = "error"
		}
		m.renders.WithLabelValues(mode, status).Inc()

		// Reloads and skipped renders apply no edit operations
		if err == nil && (info.Mode == adapter.ModeBatch || info.Mode == adapter.ModeRefresh) {
			m.recordOps(info.Changes)
		}
		return err
	}
}

func (m *Metrics) recordOps(c diff.Changeset) {
	counts := map[diff.OpKind]int{
		diff.OpDeleteSection: len(c.SectionDeletes),
		diff.OpInsertSection: len(c.SectionInserts),
		diff.OpMoveSection:   len(c.SectionMoves),
		diff.OpUpdateSection: len(c.SectionUpdates),
		diff.OpDeleteItem:    len(c.ItemDeletes),
		diff.OpInsertItem:    len(c.ItemInserts),
		diff.OpMoveItem:      len(c.ItemMoves),
		diff.OpUpdateItem:    len(c.ItemUpdates),
	}
	for kind, n := range counts {
		if n > 0 {
			m.ops.WithLabelValues(kind.String()).Add(float64(n))
		}
	}
}

// Observer returns an action observer counting dispatched actions.
func (m *Metrics) Observer() action.Observer {
	return func(p *action.Payload) {
		m.actions.WithLabelValues(string(p.Kind)).Inc()
	}
}
