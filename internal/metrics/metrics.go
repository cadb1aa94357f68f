// Package metrics records store-operation counters and latencies with the
// Prometheus client library.
package metrics

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// Result label values.
const (
	ResultOK        = "ok"
	ResultNotFound  = "not_found"
	ResultDuplicate = "duplicate"
	ResultError     = "error"
)

// StoreMetrics holds the collectors for store operations. A nil
// *StoreMetrics is valid and records nothing.
type StoreMetrics struct {
	registry *prometheus.Registry

	// Operations counts table operations by table, operation and result.
	Operations *prometheus.CounterVec

	// Duration records the round-trip time of table operations in seconds.
	Duration *prometheus.HistogramVec
}

// NewStoreMetrics creates the store collectors and registers them on a
// private registry.
func NewStoreMetrics() *StoreMetrics {
	m := &StoreMetrics{
		registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tradebook",
				Name:      "store_operations_total",
				Help:      "Total number of store operations",
			},
			[]string{"table", "op", "result"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tradebook",
				Name:      "store_operation_duration_seconds",
				Help:      "Duration of store operations in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"table", "op"},
		),
	}
	m.registry.MustRegister(m.Operations, m.Duration)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *StoreMetrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Observe records one operation.
func (m *StoreMetrics) Observe(table, op string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(table, op, resultOf(err)).Inc()
	m.Duration.WithLabelValues(table, op).Observe(elapsed.Seconds())
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, types.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, types.ErrDuplicateKey):
		return ResultDuplicate
	default:
		return ResultError
	}
}

// Sample is one counter value with its labels rendered as k=v pairs.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Counters flattens every counter in g into samples sorted by name and
// labels. Histograms are summarised by their sample count.
func Counters(g prometheus.Gatherer) ([]Sample, error) {
	if g == nil {
		return nil, nil
	}
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var pairs []string
			for _, lp := range metric.GetLabel() {
				pairs = append(pairs, lp.GetName()+"="+lp.GetValue())
			}
			s := Sample{Name: mf.GetName(), Labels: strings.Join(pairs, ",")}
			switch {
			case metric.GetCounter() != nil:
				s.Value = metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				s.Name += "_count"
				s.Value = float64(metric.GetHistogram().GetSampleCount())
			default:
				continue
			}
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}
