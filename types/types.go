package types

// TaskState is the lifecycle state of a task as seen by the coordinator.
type TaskState int32

const (
	TaskPlanned TaskState = iota
	TaskRunning
	TaskFinished
	TaskCanceled
	TaskAborted
	TaskFailed
)

var taskStateNames = map[TaskState]string{
	TaskPlanned:  "PLANNED",
	TaskRunning:  "RUNNING",
	TaskFinished: "FINISHED",
	TaskCanceled: "CANCELED",
	TaskAborted:  "ABORTED",
	TaskFailed:   "FAILED",
}

func (s TaskState) String() string {
	if name, exists := taskStateNames[s]; exists {
		return name
	}
	return "UNKNOWN"
}

// IsDone reports whether the state is terminal. Terminal states never
// transition further.
func (s TaskState) IsDone() bool {
	switch s {
	case TaskFinished, TaskCanceled, TaskAborted, TaskFailed:
		return true
	default:
		return false
	}
}

// RuntimeUnit is the unit attached to a runtime metric on the wire.
type RuntimeUnit int32

const (
	UnitNone RuntimeUnit = iota
	UnitByte
	UnitNano
)

func (u RuntimeUnit) String() string {
	switch u {
	case UnitByte:
		return "BYTE"
	case UnitNano:
		return "NANO"
	default:
		return "NONE"
	}
}

// RuntimeMetric is the external form of a mergeable named counter.
type RuntimeMetric struct {
	Name  string      `json:"name"`
	Unit  RuntimeUnit `json:"unit"`
	Sum   int64       `json:"sum"`
	Count int64       `json:"count"`
	Max   int64       `json:"max"`
	Min   int64       `json:"min"`
}

// Lifespan marks a completed driver group.
type Lifespan struct {
	Grouped bool  `json:"grouped"`
	GroupID int32 `json:"groupId"`
}
