package runtime

import (
	"sync"

	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/rohanpednekar/presto/engine"
	"github.com/rohanpednekar/presto/types"
	"github.com/rohanpednekar/presto/utils"
)

// Task is the worker-side record of one query task. A single mutex guards
// the lifecycle phase, the last-known status/stats, the first failure and
// the heartbeat timestamp; status and stats projection run under it.
//
// The execution handle is absent until the engine actually starts the task,
// and once set it is never replaced. The first recorded failure wins: later
// failures are observed but never surfaced as the primary cause.
type Task struct {
	mu sync.Mutex

	id   types.TaskID
	info types.TaskInfo

	execution engine.Task
	err       error

	lastHeartbeatMs int64
	// split groups already surfaced in CompletedDriverGroups
	seenGroups map[int32]bool
	// cross-poll accumulation of operator-reported delta metrics
	lifetimeMetrics metricStore

	nowMs func() int64
}

// NewTask builds the record for a task the worker has been asked to run.
// No execution handle exists yet; the task projects as PLANNED.
func NewTask(taskID, nodeID string) (*Task, error) {
	id, err := types.ParseTaskID(taskID)
	if err != nil {
		return nil, errors.Trace(err)
	}

	t := &Task{
		id:              id,
		seenGroups:      make(map[int32]bool),
		lifetimeMetrics: make(metricStore),
		nowMs:           utils.NowMs,
	}
	t.info.TaskID = taskID
	t.info.NodeID = nodeID
	t.info.Stats.RuntimeStats = make(map[string]types.RuntimeMetric)
	return t, nil
}

func (t *Task) ID() types.TaskID {
	return t.id
}

// SetExecution attaches the engine's execution handle. The handle, once
// set, is never replaced.
func (t *Task) SetExecution(execution engine.Task) error {
	if execution == nil {
		return errors.NotValidf("nil execution for task %s", t.id)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.execution != nil {
		return errors.AlreadyExistsf("execution for task %s", t.id)
	}
	if t.info.TaskStatus.State.IsDone() {
		return errors.Forbiddenf("task %s already %v", t.id, t.info.TaskStatus.State)
	}
	t.execution = execution
	return nil
}

// Fail records a failure observed outside the engine, e.g. when task
// creation itself fails before an execution handle exists.
func (t *Task) Fail(err error) {
	if err == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		log.Debugf("task %s: ignoring failure after %v: %v", t.id, t.err, err)
		return
	}
	t.err = err
}

// Abort marks the task ABORTED unless it already reached a terminal state.
// A task may be aborted before it ever starts running.
func (t *Task) Abort() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.info.TaskStatus.State.IsDone() {
		t.info.TaskStatus.State = types.TaskAborted
	}
}

// GetStatus produces the lightweight status snapshot. Each successful poll
// also records a heartbeat.
func (t *Task) GetStatus() types.TaskStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.updateHeartbeatLocked()
	return t.updateStatusLocked()
}

// GetInfo produces the full snapshot: identity, status and the statistics
// tree. Each successful poll also records a heartbeat.
func (t *Task) GetInfo() types.TaskInfo {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.updateHeartbeatLocked()
	info := t.updateInfoLocked()
	// hand out a copy so callers cannot alias the record's metric map
	info.Stats.RuntimeStats = utils.CloneMap(info.Stats.RuntimeStats)
	return info
}

// State returns the last-known lifecycle state without consulting the
// engine or touching the heartbeat.
func (t *Task) State() types.TaskState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.info.TaskStatus.State
}

// RecordHeartbeat notes that the coordinator is still watching this task.
func (t *Task) RecordHeartbeat() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.updateHeartbeatLocked()
}

// MillisecondsSinceHeartbeat returns 0 if no heartbeat was ever recorded,
// else the elapsed time since the last one.
func (t *Task) MillisecondsSinceHeartbeat() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lastHeartbeatMs == 0 {
		return 0
	}
	elapsed := t.nowMs() - t.lastHeartbeatMs
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed)
}

func (t *Task) updateHeartbeatLocked() {
	t.lastHeartbeatMs = t.nowMs()
	t.info.LastHeartbeat = utils.ToISOTimestamp(t.lastHeartbeatMs)
}
