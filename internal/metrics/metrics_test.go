package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tradebook/pkg/types"
)

func TestObserve(t *testing.T) {
	m := NewStoreMetrics()

	m.Observe("partners", "create", time.Millisecond, nil)
	m.Observe("partners", "create", time.Millisecond, nil)
	m.Observe("partners", "get", time.Millisecond, fmt.Errorf("wrapped: %w", types.ErrNotFound))
	m.Observe("sales", "get", time.Millisecond, types.ErrDuplicateKey)
	m.Observe("sales", "get_all", time.Millisecond, errors.New("disk I/O error"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("partners", "create", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("partners", "get", ResultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("sales", "get", ResultDuplicate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("sales", "get_all", ResultError)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *StoreMetrics
	assert.NotPanics(t, func() {
		m.Observe("partners", "create", time.Millisecond, nil)
	})
	assert.Nil(t, m.Registry())
}

func TestCounters(t *testing.T) {
	m := NewStoreMetrics()
	m.Observe("sales", "delete", time.Millisecond, nil)
	m.Observe("partners", "create", time.Millisecond, nil)

	samples, err := Counters(m.Registry())
	require.NoError(t, err)

	var names []string
	for _, s := range samples {
		names = append(names, s.Name+"{"+s.Labels+"}")
	}
	assert.Equal(t, []string{
		"tradebook_store_operation_duration_seconds_count{op=create,table=partners}",
		"tradebook_store_operation_duration_seconds_count{op=delete,table=sales}",
		"tradebook_store_operations_total{op=create,result=ok,table=partners}",
		"tradebook_store_operations_total{op=delete,result=ok,table=sales}",
	}, names)
}
