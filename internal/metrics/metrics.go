// Package metrics counts operations and failures on a private prometheus
// registry. A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "blackipher"

// Operation names.
const (
	OpSeal = "seal"
	OpOpen = "open"
	OpSave = "save"
	OpLoad = "load"
)

// Error categories.
const (
	CategoryCrypto       = "crypto"
	CategoryStorage      = "storage"
	CategoryInput        = "input"
	CategoryVerification = "verification"
)

type Metrics struct {
	registry *prometheus.Registry
	ops      *prometheus.CounterVec
	opErrors *prometheus.CounterVec
	errors   *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// OperationStats is the per-operation view returned by Snapshot.
type OperationStats struct {
	Count  uint64
	Errors uint64
}

// Snapshot is a point-in-time copy of every counter.
type Snapshot struct {
	Operations map[string]OperationStats
	Errors     map[string]uint64
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Completed operations by name.",
		}, []string{"operation"}),
		opErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "Failed operations by name.",
		}, []string{"operation"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Errors by category.",
		}, []string{"category"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"operation"}),
	}
	m.registry.MustRegister(m.ops, m.opErrors, m.errors, m.latency)
	for _, cat := range []string{CategoryCrypto, CategoryStorage, CategoryInput, CategoryVerification} {
		m.errors.WithLabelValues(cat)
	}
	return m
}

// Registry exposes the underlying registry, e.g. for a /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordOp counts a completed operation and its latency since started.
func (m *Metrics) RecordOp(operation string, started time.Time) {
	if m == nil {
		return
	}
	m.ops.WithLabelValues(operation).Inc()
	m.latency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (m *Metrics) RecordOpError(operation string) {
	if m == nil {
		return
	}
	m.opErrors.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordError(category string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(category).Inc()
}

// Snapshot gathers the registry into plain maps.
func (m *Metrics) Snapshot() (Snapshot, error) {
	snap := Snapshot{
		Operations: map[string]OperationStats{},
		Errors:     map[string]uint64{},
	}
	if m == nil {
		return snap, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return snap, err
	}
	for _, mf := range families {
		switch mf.GetName() {
		case namespace + "_operations_total":
			eachCounter(mf, "operation", func(label string, v uint64) {
				s := snap.Operations[label]
				s.Count = v
				snap.Operations[label] = s
			})
		case namespace + "_operation_errors_total":
			eachCounter(mf, "operation", func(label string, v uint64) {
				s := snap.Operations[label]
				s.Errors = v
				snap.Operations[label] = s
			})
		case namespace + "_errors_total":
			eachCounter(mf, "category", func(label string, v uint64) {
				snap.Errors[label] = v
			})
		}
	}
	return snap, nil
}

func eachCounter(mf *dto.MetricFamily, labelName string, fn func(label string, v uint64)) {
	for _, metric := range mf.GetMetric() {
		var label string
		for _, lp := range metric.GetLabel() {
			if lp.GetName() == labelName {
				label = lp.GetValue()
			}
		}
		fn(label, uint64(metric.GetCounter().GetValue()))
	}
}
