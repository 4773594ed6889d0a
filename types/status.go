package types

// TaskStatus is the lightweight task snapshot the coordinator polls
// frequently. It carries lifecycle state, split-queue depth and the memory
// reservation; the heavy statistics live in TaskStats.
type TaskStatus struct {
	State TaskState `json:"state"`

	QueuedPartitionedDrivers  int64 `json:"queuedPartitionedDrivers"`
	RunningPartitionedDrivers int64 `json:"runningPartitionedDrivers"`

	// CompletedDriverGroups is append-only; groups are never pruned here.
	CompletedDriverGroups []Lifespan `json:"completedDriverGroups"`

	MemoryReservationBytes              int64 `json:"memoryReservationInBytes"`
	SystemMemoryReservationBytes        int64 `json:"systemMemoryReservationInBytes"`
	PeakNodeTotalMemoryReservationBytes int64 `json:"peakNodeTotalMemoryReservationInBytes"`

	Failures []*ExecutionFailureInfo `json:"failures"`
}
