package fractional

import (
	"testing"

	"github.com/amp-labs/amp-fraction/rational"
	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	const name = "metrics-test"

	s := New[string](WithName(name), WithLogger(slogt.New(t)))
	require.NoError(t, s.AppendAll("a", "b"))

	_, err := s.Insert("c", rational.New(3, 4))
	require.NoError(t, err)

	_, err = s.Insert("d", rational.New(2, 3))
	require.NoError(t, err)

	_, err = s.Insert("e", rational.One)
	require.NoError(t, err)

	assert.InDelta(t, 3, testutil.ToFloat64(appendsTotal.WithLabelValues(name)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(insertsTotal.WithLabelValues(name, outcomeCollision)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(insertsTotal.WithLabelValues(name, outcomeDirect)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(insertsTotal.WithLabelValues(name, outcomeAppend)), 0)

	s.RemoveAt(rational.New(1, 2))
	Remove(s, "c")

	assert.InDelta(t, 2, testutil.ToFloat64(removalsTotal.WithLabelValues(name)), 0)
}

func TestMetrics_KeySpaceExhausted(t *testing.T) {
	t.Parallel()

	const name = "metrics-exhausted"

	_, err := From(make([]int, 63), WithName(name), WithLogger(slogt.New(t)))
	require.ErrorIs(t, err, ErrKeySpaceExhausted)

	assert.InDelta(t, 62, testutil.ToFloat64(appendsTotal.WithLabelValues(name)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(keySpaceExhausted.WithLabelValues(name)), 0)
}

func TestMetrics_Disabled(t *testing.T) {
	t.Parallel()

	const name = "metrics-disabled"

	s := New[int](WithName(name), WithMetrics(false), WithLogger(slogt.New(t)))
	require.NoError(t, s.AppendAll(1, 2, 3))
	Remove(s, 2)

	assert.Zero(t, testutil.ToFloat64(appendsTotal.WithLabelValues(name)))
	assert.Zero(t, testutil.ToFloat64(removalsTotal.WithLabelValues(name)))
}
