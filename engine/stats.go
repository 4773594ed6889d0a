package engine

// BlockingReason says why a driver is currently off the thread.
type BlockingReason int32

const (
	BlockedNotBlocked BlockingReason = iota
	BlockedWaitForConsumer
	BlockedWaitForSplit
	BlockedWaitForExchange
	BlockedWaitForJoinBuild
	BlockedWaitForMemory
	BlockedWaitForSpill
	BlockedYield
)

var blockingReasonNames = map[BlockingReason]string{
	BlockedNotBlocked:       "NotBlocked",
	BlockedWaitForConsumer:  "WaitForConsumer",
	BlockedWaitForSplit:     "WaitForSplit",
	BlockedWaitForExchange:  "WaitForExchange",
	BlockedWaitForJoinBuild: "WaitForJoinBuild",
	BlockedWaitForMemory:    "WaitForMemory",
	BlockedWaitForSpill:     "WaitForSpill",
	BlockedYield:            "Yield",
}

func (r BlockingReason) String() string {
	if name, exists := blockingReasonNames[r]; exists {
		return name
	}
	return "Unknown"
}

// CpuWallTiming counts invocations of one operator lifecycle call together
// with the wall and cpu time spent in it.
type CpuWallTiming struct {
	Count     int64
	WallNanos int64
	CpuNanos  int64
}

// MemoryStats is the memory footprint of one operator. Revocable and system
// reservations are reserved fields; the engine currently reports zero.
type MemoryStats struct {
	UserMemoryReservation       int64
	RevocableMemoryReservation  int64
	SystemMemoryReservation     int64
	PeakUserMemoryReservation   int64
	PeakSystemMemoryReservation int64
	PeakTotalMemoryReservation  int64
}

// OperatorStats is one operator's slice of the engine snapshot.
type OperatorStats struct {
	OperatorID   int32
	PipelineID   int32
	PlanNodeID   string
	OperatorType string

	NumDrivers int64
	NumSplits  int64

	AddInputTiming   CpuWallTiming
	GetOutputTiming  CpuWallTiming
	FinishTiming     CpuWallTiming
	BlockedWallNanos int64

	RawInputPositions int64
	RawInputBytes     int64
	InputPositions    int64
	InputBytes        int64
	OutputPositions   int64
	OutputBytes       int64

	SpilledBytes      int64
	SpilledRows       int64
	SpilledPartitions int64
	SpilledFiles      int64

	MemoryStats MemoryStats

	// RuntimeStats are deltas since the previous snapshot.
	RuntimeStats map[string]RuntimeMetric
}

// PipelineStats is one pipeline's slice of the engine snapshot. A pipeline
// may have zero operators if the task failed before any were created.
type PipelineStats struct {
	InputPipeline  bool
	OutputPipeline bool

	OperatorStats []OperatorStats
}

// TaskStats is the engine's detailed statistics snapshot for one task.
// Timestamps are milliseconds since epoch, zero meaning "not yet".
type TaskStats struct {
	ExecutionStartTimeMs  int64
	FirstSplitStartTimeMs int64
	LastSplitStartTimeMs  int64
	ExecutionEndTimeMs    int64
	// EndTimeMs is when the last output buffer was consumed, which may
	// trail ExecutionEndTimeMs.
	EndTimeMs int64

	NumTotalSplits    int64
	NumQueuedSplits   int64
	NumRunningSplits  int64
	NumFinishedSplits int64

	NumTotalDrivers      int64
	NumRunningDrivers    int64
	NumCompletedDrivers  int64
	NumTerminatedDrivers int64
	NumBlockedDrivers    map[BlockingReason]int64

	CompletedSplitGroups []int32

	PipelineStats []PipelineStats
}
