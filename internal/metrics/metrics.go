// Package metrics records Prometheus metrics for lineup runs and exports
// them in the node-exporter textfile format.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lineup/assign"
)

// ErrNoTextfile is returned by WriteTextfile when no path is given.
var ErrNoTextfile = errors.New("metrics: textfile path is empty")

// Outcome is the numeric summary of one run.
type Outcome struct {
	Performers      int
	Segments        int
	Relations       int
	Excluded        int
	Unassigned      int
	Ceiling         int64
	ForestWeight    int64
	AdjacentOverlap int64
	Components      int
}

// Manager owns the run metrics.
type Manager struct {
	namespace       string
	durationBuckets []float64
	registry        *prometheus.Registry

	assignments   *prometheus.CounterVec
	ratings       *prometheus.HistogramVec
	warnings      *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec

	performers      prometheus.Gauge
	segments        prometheus.Gauge
	relations       prometheus.Gauge
	excluded        prometheus.Gauge
	unassigned      prometheus.Gauge
	ceiling         prometheus.Gauge
	fillRatio       prometheus.Gauge
	forestWeight    prometheus.Gauge
	adjacentOverlap prometheus.Gauge
	components      prometheus.Gauge
}

// NewManager creates a metrics manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "lineup",
		durationBuckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.assignments = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "assignments_total",
		Help:      "Relations added, by assignment phase",
	}, []string{"phase"})

	m.ratings = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "assignment_rating",
		Help:      "Rating tier of each added relation, by phase",
		Buckets:   []float64{1, 2, 3, 4, 5},
	}, []string{"phase"})

	m.warnings = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "warnings_total",
		Help:      "Non-fatal warnings, by kind",
	}, []string{"kind"})

	m.stageDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "stage_duration_seconds",
		Help:      "Wall time of each pipeline stage",
		Buckets:   m.durationBuckets,
	}, []string{"stage"})

	gauge := func(name, help string) prometheus.Gauge {
		return auto.NewGauge(prometheus.GaugeOpts{Namespace: m.namespace, Name: name, Help: help})
	}
	m.performers = gauge("performers", "Registered performers")
	m.segments = gauge("segments", "Registered segments")
	m.relations = gauge("relations", "Relations in the settled assignment")
	m.excluded = gauge("excluded_performers", "Performers excluded for low ratings")
	m.unassigned = gauge("unassigned_performers", "Eligible performers left without a segment")
	m.ceiling = gauge("capacity_ceiling", "Max-flow upper bound on relations")
	m.fillRatio = gauge("fill_ratio", "Relations divided by the capacity ceiling")
	m.forestWeight = gauge("forest_weight", "Total weight of the spanning forest")
	m.adjacentOverlap = gauge("adjacent_overlap", "Shared performers between consecutive segments")
	m.components = gauge("order_components", "Connected components of the conflict graph")
}

// Assigned implements assign.Observer.
func (m *Manager) Assigned(phase assign.Phase, _, _ string, rating int) {
	m.assignments.WithLabelValues(phase.String()).Inc()
	m.ratings.WithLabelValues(phase.String()).Observe(float64(rating))
}

// ObserveStage records the duration of a pipeline stage.
func (m *Manager) ObserveStage(stage string, d time.Duration) {
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// Warned counts a warning of the given kind.
func (m *Manager) Warned(kind string) {
	m.warnings.WithLabelValues(kind).Inc()
}

// RecordOutcome sets the run gauges.
func (m *Manager) RecordOutcome(o Outcome) {
	m.performers.Set(float64(o.Performers))
	m.segments.Set(float64(o.Segments))
	m.relations.Set(float64(o.Relations))
	m.excluded.Set(float64(o.Excluded))
	m.unassigned.Set(float64(o.Unassigned))
	m.ceiling.Set(float64(o.Ceiling))
	if o.Ceiling > 0 {
		m.fillRatio.Set(float64(o.Relations) / float64(o.Ceiling))
	} else {
		m.fillRatio.Set(0)
	}
	m.forestWeight.Set(float64(o.ForestWeight))
	m.adjacentOverlap.Set(float64(o.AdjacentOverlap))
	m.components.Set(float64(o.Components))
}

// Registry exposes the underlying registry.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile atomically writes all metrics to path.
func (m *Manager) WriteTextfile(path string) error {
	if path == "" {
		return ErrNoTextfile
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
