package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohanpednekar/presto/engine"
)

const testTaskID = "20260823_000000_00001_aaaaa.3.1.7.0"

type fakeTracker struct {
	current int64
	peak    int64
}

func (f *fakeTracker) CurrentBytes() int64 { return f.current }
func (f *fakeTracker) PeakBytes() int64    { return f.peak }

type fakeExecution struct {
	state     engine.TaskState
	stats     engine.TaskStats
	err       error
	pool      fakeTracker
	queryPool fakeTracker
}

func newFakeExecution() *fakeExecution {
	return &fakeExecution{state: engine.StateRunning}
}

func (f *fakeExecution) State() engine.TaskState         { return f.state }
func (f *fakeExecution) TaskStats() engine.TaskStats     { return f.stats }
func (f *fakeExecution) Error() error                    { return f.err }
func (f *fakeExecution) Pool() engine.MemoryTracker      { return &f.pool }
func (f *fakeExecution) QueryPool() engine.MemoryTracker { return &f.queryPool }

type fakeClock struct {
	ms int64
}

func (c *fakeClock) now() int64 {
	return c.ms
}

func (c *fakeClock) advance(ms int64) {
	c.ms += ms
}

func newTestTask(t *testing.T) (*Task, *fakeClock) {
	task, err := NewTask(testTaskID, "node-1")
	assert.Nil(t, err)

	clock := &fakeClock{ms: 1_000}
	task.nowMs = clock.now
	return task, clock
}

// scanOperator builds a populated table-scan operator; scenarios tweak the
// fields they care about.
func scanOperator() engine.OperatorStats {
	return engine.OperatorStats{
		OperatorID:        0,
		PlanNodeID:        "0",
		OperatorType:      "TableScan",
		NumDrivers:        2,
		RawInputPositions: 1000,
		RawInputBytes:     64_000,
		InputPositions:    1000,
		InputBytes:        64_000,
		OutputPositions:   900,
		OutputBytes:       60_000,
		AddInputTiming:    engine.CpuWallTiming{Count: 10, WallNanos: 500, CpuNanos: 400},
		GetOutputTiming:   engine.CpuWallTiming{Count: 12, WallNanos: 700, CpuNanos: 600},
		FinishTiming:      engine.CpuWallTiming{Count: 1, WallNanos: 100, CpuNanos: 80},
		BlockedWallNanos:  250,
		MemoryStats: engine.MemoryStats{
			UserMemoryReservation:      2048,
			PeakUserMemoryReservation:  4096,
			PeakTotalMemoryReservation: 4096,
		},
	}
}
