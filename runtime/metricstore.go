package runtime

import (
	log "github.com/sirupsen/logrus"

	"github.com/rohanpednekar/presto/engine"
	"github.com/rohanpednekar/presto/types"
)

// metricStore is the one place state persists across polls: operator
// runtime metrics arrive as deltas since the previous snapshot and must
// accumulate over the task's lifetime. Everything else in a snapshot is
// recomputed from scratch on every poll.
type metricStore map[string]engine.RuntimeMetric

func (s metricStore) merge(name string, metric engine.RuntimeMetric) {
	merged := s[name]
	if err := merged.Merge(metric); err != nil {
		// first unit wins; drop the conflicting sample
		log.Warnf("dropping runtime metric sample %s: %v", name, err)
		return
	}
	s[name] = merged
}

func (s metricStore) addValue(name string, value int64, unit engine.Unit) {
	s.merge(name, engine.NewRuntimeMetric(value, unit))
}

func (s metricStore) addValueIfNotZero(name string, value int64) {
	if value == 0 {
		return
	}
	s.addValue(name, value, engine.UnitNone)
}

func (s metricStore) exportInto(out map[string]types.RuntimeMetric) {
	for name, metric := range s {
		out[name] = toRuntimeMetric(name, metric)
	}
}

func toRuntimeUnit(unit engine.Unit) types.RuntimeUnit {
	switch unit {
	case engine.UnitNanos:
		return types.UnitNano
	case engine.UnitBytes:
		return types.UnitByte
	default:
		return types.UnitNone
	}
}

// toRuntimeMetric converts an engine metric to its external representation.
func toRuntimeMetric(name string, metric engine.RuntimeMetric) types.RuntimeMetric {
	return types.RuntimeMetric{
		Name:  name,
		Unit:  toRuntimeUnit(metric.Unit),
		Sum:   metric.Sum,
		Count: metric.Count,
		Max:   metric.Max,
		Min:   metric.Min,
	}
}

// newWireMetric builds a singleton external metric from a raw value.
func newWireMetric(name string, value int64, unit types.RuntimeUnit) types.RuntimeMetric {
	return types.RuntimeMetric{Name: name, Unit: unit, Sum: value, Count: 1, Max: value, Min: value}
}
