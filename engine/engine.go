// Package engine declares the read-only view the execution engine presents
// to the status/statistics layer. The engine itself (operator scheduling,
// memory arbitration, split processing) lives elsewhere; everything here is
// a cheap, internally-synchronized snapshot read.
package engine

// TaskState is the engine's own lifecycle state for a started task.
type TaskState int32

const (
	StateRunning TaskState = iota
	StateFinished
	StateCanceled
	StateAborted
	StateFailed
)

var stateNames = map[TaskState]string{
	StateRunning:  "Running",
	StateFinished: "Finished",
	StateCanceled: "Canceled",
	StateAborted:  "Aborted",
	StateFailed:   "Failed",
}

func (s TaskState) String() string {
	if name, exists := stateNames[s]; exists {
		return name
	}
	return "Unknown"
}

// MemoryTracker reports the current and peak reservation of one memory pool.
type MemoryTracker interface {
	CurrentBytes() int64
	PeakBytes() int64
}

// Task is the execution handle owned by a task record once execution has
// started. Implementations must not block the caller on engine-internal
// locks held by worker threads.
type Task interface {
	// State returns the task's current lifecycle state.
	State() TaskState
	// TaskStats returns the engine's detailed statistics snapshot.
	// Operator RuntimeStats entries are deltas since the previous
	// snapshot was taken; the caller accumulates them.
	TaskStats() TaskStats
	// Error returns the failure that terminated the task, or nil.
	Error() error
	// Pool returns the task-scope memory tracker.
	Pool() MemoryTracker
	// QueryPool returns the memory tracker of the enclosing query.
	QueryPool() MemoryTracker
}
