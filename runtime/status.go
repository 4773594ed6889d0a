package runtime

import (
	"github.com/rohanpednekar/presto/engine"
	"github.com/rohanpednekar/presto/types"
)

// toTaskState maps the engine's state enumeration onto the wire one. An
// unrecognized value means the engine is ahead of us; report ABORTED.
func toTaskState(state engine.TaskState) types.TaskState {
	switch state {
	case engine.StateRunning:
		return types.TaskRunning
	case engine.StateFinished:
		return types.TaskFinished
	case engine.StateCanceled:
		return types.TaskCanceled
	case engine.StateFailed:
		return types.TaskFailed
	default:
		return types.TaskAborted
	}
}

// updateStatusLocked derives the poll-frequent status from the task's
// lifecycle phase and the engine's live counters. Caller holds t.mu.
func (t *Task) updateStatusLocked() types.TaskStatus {
	// Terminal states never transition further; in particular an abort
	// must not be reverted by whatever the engine reports next.
	if t.info.TaskStatus.State.IsDone() {
		return t.info.TaskStatus
	}

	// Not started and no failure: the task is still PLANNED.
	if t.execution == nil && t.err == nil {
		status := t.info.TaskStatus
		status.State = types.TaskPlanned
		return status
	}

	// A failure may arrive before any execution object exists. Record it
	// and return without consulting the engine.
	if t.err != nil {
		if len(t.info.TaskStatus.Failures) == 0 {
			t.info.TaskStatus.Failures = append(t.info.TaskStatus.Failures, ToFailure(t.err))
		}
		t.info.TaskStatus.State = types.TaskFailed
		return t.info.TaskStatus
	}

	taskStats := t.execution.TaskStats()

	// A driver runs one split; queued/processed splits are what the
	// coordinator sees as partitioned drivers.
	t.info.TaskStatus.QueuedPartitionedDrivers = taskStats.NumQueuedSplits
	t.info.TaskStatus.RunningPartitionedDrivers = taskStats.NumRunningSplits

	for _, groupID := range taskStats.CompletedSplitGroups {
		if t.seenGroups[groupID] {
			continue
		}
		t.seenGroups[groupID] = true
		t.info.TaskStatus.CompletedDriverGroups = append(
			t.info.TaskStatus.CompletedDriverGroups,
			types.Lifespan{Grouped: true, GroupID: groupID})
	}

	t.info.TaskStatus.State = toTaskState(t.execution.State())

	t.info.TaskStatus.MemoryReservationBytes = t.execution.Pool().CurrentBytes()
	t.info.TaskStatus.SystemMemoryReservationBytes = 0
	t.info.TaskStatus.PeakNodeTotalMemoryReservationBytes = t.execution.QueryPool().PeakBytes()

	if err := t.execution.Error(); err != nil {
		if len(t.info.TaskStatus.Failures) == 0 {
			t.err = err
			t.info.TaskStatus.Failures = append(t.info.TaskStatus.Failures, ToFailure(err))
		}
		t.info.TaskStatus.State = types.TaskFailed
	}
	return t.info.TaskStatus
}
