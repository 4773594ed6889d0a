package engine

import (
	"github.com/juju/errors"
)

// Unit is the unit of a runtime metric's samples.
type Unit int32

const (
	UnitNone Unit = iota
	UnitBytes
	UnitNanos
)

func (u Unit) String() string {
	switch u {
	case UnitBytes:
		return "Bytes"
	case UnitNanos:
		return "Nanos"
	default:
		return "None"
	}
}

// RuntimeMetric is a mergeable numeric summary: sum, count, min and max of
// the samples added so far. The zero value is an empty metric with UnitNone.
// Merge is commutative and associative for metrics of the same unit.
type RuntimeMetric struct {
	Unit  Unit
	Sum   int64
	Count int64
	Min   int64
	Max   int64
}

// NewRuntimeMetric builds a singleton metric from a raw value.
func NewRuntimeMetric(value int64, unit Unit) RuntimeMetric {
	return RuntimeMetric{Unit: unit, Sum: value, Count: 1, Min: value, Max: value}
}

// AddValue appends one sample.
func (m *RuntimeMetric) AddValue(value int64) {
	if m.Count == 0 {
		m.Min = value
		m.Max = value
	} else {
		if value < m.Min {
			m.Min = value
		}
		if value > m.Max {
			m.Max = value
		}
	}
	m.Sum += value
	m.Count++
}

// Merge folds other into m. Metrics with different units do not merge.
// An empty metric merges with anything and adopts the other's unit.
func (m *RuntimeMetric) Merge(other RuntimeMetric) error {
	if other.Count == 0 {
		return nil
	}
	if m.Count == 0 {
		*m = other
		return nil
	}
	if m.Unit != other.Unit {
		return errors.NotValidf("merging unit %v into %v", other.Unit, m.Unit)
	}
	m.Sum += other.Sum
	m.Count += other.Count
	if other.Min < m.Min {
		m.Min = other.Min
	}
	if other.Max > m.Max {
		m.Max = other.Max
	}
	return nil
}
