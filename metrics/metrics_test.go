package metrics

import (
	"testing"

	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

func TestDisabledMetricsAreNil(t *testing.T) {
	defer func(old bool) { Enabled = old }(Enabled)
	Enabled = false

	assert.IsType(t, new(metrics.NilCounter), NewCounter("test/disabled/counter"))
	assert.IsType(t, new(metrics.NilMeter), NewMeter("test/disabled/meter"))
	assert.IsType(t, new(metrics.NilTimer), NewTimer("test/disabled/timer"))
	assert.NotContains(t, Snapshot(), "test/disabled/counter")
}

func TestEnabledMetricsRegister(t *testing.T) {
	defer func(old bool) { Enabled = old }(Enabled)
	Enabled = true
	defer metrics.DefaultRegistry.Unregister("test/enabled/counter")
	defer metrics.DefaultRegistry.Unregister("test/enabled/meter")

	c := NewCounter("test/enabled/counter")
	c.Inc(3)
	m := NewMeter("test/enabled/meter")
	m.Mark(10)

	snap := Snapshot()
	assert.Equal(t, int64(3), snap["test/enabled/counter"])
	assert.Equal(t, int64(10), snap["test/enabled/meter"])
	assert.Same(t, c, NewCounter("test/enabled/counter"))
}
