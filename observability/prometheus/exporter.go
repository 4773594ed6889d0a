// Package prometheus exposes the task manager's per-state task counts as
// Prometheus metrics.
package prometheus

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/rohanpednekar/presto/types"
)

// TaskCounter is the slice of the manager the exporter reads.
type TaskCounter interface {
	TaskNumbers() map[types.TaskState]int
	ReapedTotal() int64
}

// Exporter implements prometheus.Collector over a TaskCounter.
type Exporter struct {
	source TaskCounter

	tasksDesc  *prom.Desc
	reapedDesc *prom.Desc
}

var _ prom.Collector = (*Exporter)(nil)

// NewExporter builds an exporter and registers it with reg. A nil reg uses
// the default registerer.
func NewExporter(namespace string, reg prom.Registerer, source TaskCounter) (*Exporter, error) {
	if namespace == "" {
		namespace = "worker"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	e := &Exporter{
		source: source,
		tasksDesc: prom.NewDesc(
			prom.BuildFQName(namespace, "", "tasks"),
			"Number of tasks by lifecycle state.",
			[]string{"state"}, nil),
		reapedDesc: prom.NewDesc(
			prom.BuildFQName(namespace, "", "tasks_reaped_total"),
			"Total number of abandoned tasks reaped.",
			nil, nil),
	}
	if err := reg.Register(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Exporter) Describe(ch chan<- *prom.Desc) {
	ch <- e.tasksDesc
	ch <- e.reapedDesc
}

func (e *Exporter) Collect(ch chan<- prom.Metric) {
	numbers := e.source.TaskNumbers()
	for state := types.TaskPlanned; state <= types.TaskFailed; state++ {
		ch <- prom.MustNewConstMetric(
			e.tasksDesc, prom.GaugeValue, float64(numbers[state]), state.String())
	}
	ch <- prom.MustNewConstMetric(
		e.reapedDesc, prom.CounterValue, float64(e.source.ReapedTotal()))
}
