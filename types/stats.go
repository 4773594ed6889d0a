package types

// OperatorStats is the per-operator summary inside a pipeline. Revocable
// and system memory fields are reserved: the engine does not populate them
// yet and they default to zero.
type OperatorStats struct {
	StageID          int32  `json:"stageId"`
	StageExecutionID int32  `json:"stageExecutionId"`
	PipelineID       int32  `json:"pipelineId"`
	OperatorID       int32  `json:"operatorId"`
	PlanNodeID       string `json:"planNodeId"`
	OperatorType     string `json:"operatorType"`

	TotalDrivers int64 `json:"totalDrivers"`

	AddInputCalls      int64 `json:"addInputCalls"`
	AddInputWallNanos  int64 `json:"addInputWallNanos"`
	AddInputCpuNanos   int64 `json:"addInputCpuNanos"`
	GetOutputCalls     int64 `json:"getOutputCalls"`
	GetOutputWallNanos int64 `json:"getOutputWallNanos"`
	GetOutputCpuNanos  int64 `json:"getOutputCpuNanos"`
	FinishCalls        int64 `json:"finishCalls"`
	FinishWallNanos    int64 `json:"finishWallNanos"`
	FinishCpuNanos     int64 `json:"finishCpuNanos"`
	BlockedWallNanos   int64 `json:"blockedWallNanos"`

	RawInputPositions        int64   `json:"rawInputPositions"`
	RawInputDataSizeBytes    int64   `json:"rawInputDataSizeInBytes"`
	InputPositions           int64   `json:"inputPositions"`
	InputDataSizeBytes       int64   `json:"inputDataSizeInBytes"`
	SumSquaredInputPositions float64 `json:"sumSquaredInputPositions"`
	OutputPositions          int64   `json:"outputPositions"`
	OutputDataSizeBytes      int64   `json:"outputDataSizeInBytes"`

	UserMemoryReservationBytes       int64 `json:"userMemoryReservationInBytes"`
	RevocableMemoryReservationBytes  int64 `json:"revocableMemoryReservationInBytes"`
	SystemMemoryReservationBytes     int64 `json:"systemMemoryReservationInBytes"`
	PeakUserMemoryReservationBytes   int64 `json:"peakUserMemoryReservationInBytes"`
	PeakSystemMemoryReservationBytes int64 `json:"peakSystemMemoryReservationInBytes"`
	PeakTotalMemoryReservationBytes  int64 `json:"peakTotalMemoryReservationInBytes"`

	SpilledDataSizeBytes int64 `json:"spilledDataSizeInBytes"`

	RuntimeStats map[string]RuntimeMetric `json:"runtimeStats"`
}

// PipelineStats summarizes one pipeline. Its boundary figures come from the
// first and last operator; its totals are sums over all operators.
type PipelineStats struct {
	PipelineID     int32 `json:"pipelineId"`
	InputPipeline  bool  `json:"inputPipeline"`
	OutputPipeline bool  `json:"outputPipeline"`

	FirstStartTime string `json:"firstStartTime"`
	LastStartTime  string `json:"lastStartTime"`
	LastEndTime    string `json:"lastEndTime"`

	TotalDrivers int64 `json:"totalDrivers"`

	RawInputPositions           int64 `json:"rawInputPositions"`
	RawInputDataSizeBytes       int64 `json:"rawInputDataSizeInBytes"`
	ProcessedInputPositions     int64 `json:"processedInputPositions"`
	ProcessedInputDataSizeBytes int64 `json:"processedInputDataSizeInBytes"`
	OutputPositions             int64 `json:"outputPositions"`
	OutputDataSizeBytes         int64 `json:"outputDataSizeInBytes"`

	TotalScheduledTimeNanos int64 `json:"totalScheduledTimeInNanos"`
	TotalCpuTimeNanos       int64 `json:"totalCpuTimeInNanos"`
	TotalBlockedTimeNanos   int64 `json:"totalBlockedTimeInNanos"`

	UserMemoryReservationBytes      int64 `json:"userMemoryReservationInBytes"`
	RevocableMemoryReservationBytes int64 `json:"revocableMemoryReservationInBytes"`
	SystemMemoryReservationBytes    int64 `json:"systemMemoryReservationInBytes"`

	OperatorSummaries []OperatorStats `json:"operatorSummaries"`
}

// TaskStats is the heavyweight statistics tree: task totals owning an
// ordered list of pipelines, each owning an ordered list of operators.
type TaskStats struct {
	CreateTime     string `json:"createTime"`
	FirstStartTime string `json:"firstStartTime"`
	LastStartTime  string `json:"lastStartTime"`
	LastEndTime    string `json:"lastEndTime"`
	EndTime        string `json:"endTime"`

	ElapsedTimeNanos int64 `json:"elapsedTimeInNanos"`

	TotalScheduledTimeNanos int64 `json:"totalScheduledTimeInNanos"`
	TotalCpuTimeNanos       int64 `json:"totalCpuTimeInNanos"`
	TotalBlockedTimeNanos   int64 `json:"totalBlockedTimeInNanos"`

	TotalDrivers     int64 `json:"totalDrivers"`
	QueuedDrivers    int64 `json:"queuedDrivers"`
	RunningDrivers   int64 `json:"runningDrivers"`
	CompletedDrivers int64 `json:"completedDrivers"`

	CumulativeUserMemory            float64 `json:"cumulativeUserMemory"`
	UserMemoryReservationBytes      int64   `json:"userMemoryReservationInBytes"`
	RevocableMemoryReservationBytes int64   `json:"revocableMemoryReservationInBytes"`
	SystemMemoryReservationBytes    int64   `json:"systemMemoryReservationInBytes"`
	PeakUserMemoryBytes             int64   `json:"peakUserMemoryInBytes"`
	PeakTotalMemoryBytes            int64   `json:"peakTotalMemoryInBytes"`
	PeakNodeTotalMemoryBytes        int64   `json:"peakNodeTotalMemoryInBytes"`

	RawInputPositions           int64 `json:"rawInputPositions"`
	RawInputDataSizeBytes       int64 `json:"rawInputDataSizeInBytes"`
	ProcessedInputPositions     int64 `json:"processedInputPositions"`
	ProcessedInputDataSizeBytes int64 `json:"processedInputDataSizeInBytes"`
	OutputPositions             int64 `json:"outputPositions"`
	OutputDataSizeBytes         int64 `json:"outputDataSizeInBytes"`

	Pipelines []PipelineStats `json:"pipelines"`

	RuntimeStats map[string]RuntimeMetric `json:"runtimeStats"`
}

// TaskInfo supersets TaskStatus with the full statistics tree.
type TaskInfo struct {
	TaskID        string     `json:"taskId"`
	NodeID        string     `json:"nodeId"`
	TaskStatus    TaskStatus `json:"taskStatus"`
	LastHeartbeat string     `json:"lastHeartbeat"`
	Stats         TaskStats  `json:"stats"`
}
