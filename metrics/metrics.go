// Package metrics wraps go-metrics so instrumented code pays nothing while
// collection is disabled.
package metrics

import (
	"os"
	"strings"

	"github.com/Aurorachain/go-sponge/log"
	"github.com/rcrowley/go-metrics"
)

// MetricsEnabledFlag is the command line flag that turns collection on.
const MetricsEnabledFlag = "metrics"

// Enabled is read when a metric is constructed. Metrics created while it is
// false stay no-ops for the life of the process.
var Enabled = false

func init() {
	for _, arg := range os.Args {
		if flag := strings.TrimLeft(arg, "-"); flag == MetricsEnabledFlag {
			log.Info("Enabling metrics collection")
			Enabled = true
		}
	}
}

func NewCounter(name string) metrics.Counter {
	if !Enabled {
		return new(metrics.NilCounter)
	}
	return metrics.GetOrRegisterCounter(name, metrics.DefaultRegistry)
}

func NewMeter(name string) metrics.Meter {
	if !Enabled {
		return new(metrics.NilMeter)
	}
	return metrics.GetOrRegisterMeter(name, metrics.DefaultRegistry)
}

func NewTimer(name string) metrics.Timer {
	if !Enabled {
		return new(metrics.NilTimer)
	}
	return metrics.GetOrRegisterTimer(name, metrics.DefaultRegistry)
}

// Snapshot returns the current values of every registered counter, keyed by
// name. Meters and timers report their event count.
func Snapshot() map[string]int64 {
	out := make(map[string]int64)
	metrics.DefaultRegistry.Each(func(name string, m interface{}) {
		switch v := m.(type) {
		case metrics.Counter:
			out[name] = v.Count()
		case metrics.Meter:
			out[name] = v.Count()
		case metrics.Timer:
			out[name] = v.Count()
		}
	})
	return out
}
