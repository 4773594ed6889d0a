package runtime

import (
	"fmt"

	"github.com/rohanpednekar/presto/engine"
	"github.com/rohanpednekar/presto/types"
	"github.com/rohanpednekar/presto/utils"
)

// The coordinator keys some query-level logic on operator type strings, so
// a few engine types map to fixed external names. Everything else passes
// through unchanged.
var operatorTypeNames = map[string]string{
	"MergeExchange": "MergeOperator",
	"Exchange":      "ExchangeOperator",
	"TableScan":     "TableScanOperator",
}

func toOperatorType(operatorType string) string {
	if name, exists := operatorTypeNames[operatorType]; exists {
		return name
	}
	return operatorType
}

func setTiming(timing engine.CpuWallTiming, calls, wallNanos, cpuNanos *int64) {
	*calls = timing.Count
	*wallNanos = timing.WallNanos
	*cpuNanos = timing.CpuNanos
}

// updateInfoLocked derives the full statistics snapshot from the engine's
// stats tree. Except for the lifetime metric store, every field is
// recomputed from scratch: this is a projection of the current snapshot,
// not an incremental patch. Caller holds t.mu.
func (t *Task) updateInfoLocked() types.TaskInfo {
	t.updateStatusLocked()

	// Return limited info if execution never started; that is not a
	// failure condition.
	if t.execution == nil {
		return t.info
	}

	taskStats := t.execution.TaskStats()
	stats := &t.info.Stats

	stats.TotalScheduledTimeNanos = 0
	stats.TotalCpuTimeNanos = 0
	stats.TotalBlockedTimeNanos = 0
	stats.RuntimeStats = make(map[string]types.RuntimeMetric)

	stats.CreateTime = utils.ToISOTimestamp(taskStats.ExecutionStartTimeMs)
	stats.FirstStartTime = utils.ToISOTimestamp(taskStats.FirstSplitStartTimeMs)
	stats.LastStartTime = utils.ToISOTimestamp(taskStats.LastSplitStartTimeMs)
	stats.LastEndTime = utils.ToISOTimestamp(taskStats.ExecutionEndTimeMs)
	stats.EndTime = utils.ToISOTimestamp(taskStats.ExecutionEndTimeMs)
	stats.ElapsedTimeNanos = 0
	if taskStats.ExecutionEndTimeMs > taskStats.ExecutionStartTimeMs {
		stats.ElapsedTimeNanos =
			(taskStats.ExecutionEndTimeMs - taskStats.ExecutionStartTimeMs) * 1_000_000
	}

	// Task-level memory comes from the tracker, not from summing the
	// operators, to avoid double counting transient allocations.
	pool := t.execution.Pool()
	stats.UserMemoryReservationBytes = pool.CurrentBytes()
	stats.SystemMemoryReservationBytes = 0
	stats.PeakUserMemoryBytes = pool.PeakBytes()
	stats.PeakTotalMemoryBytes = pool.PeakBytes()
	stats.PeakNodeTotalMemoryBytes = t.execution.QueryPool().PeakBytes()

	// reserved fields, engine does not populate them yet
	stats.RevocableMemoryReservationBytes = 0
	stats.CumulativeUserMemory = 0

	stats.RawInputPositions = 0
	stats.RawInputDataSizeBytes = 0
	stats.ProcessedInputPositions = 0
	stats.ProcessedInputDataSizeBytes = 0
	stats.OutputPositions = 0
	stats.OutputDataSizeBytes = 0

	stats.TotalDrivers = taskStats.NumTotalSplits
	stats.QueuedDrivers = taskStats.NumQueuedSplits
	stats.RunningDrivers = taskStats.NumRunningSplits
	stats.CompletedDrivers = taskStats.NumFinishedSplits

	stats.Pipelines = make([]types.PipelineStats, len(taskStats.PipelineStats))

	// Absolute figures synthesized fresh on every poll. Operator-reported
	// metrics instead merge into the lifetime store below.
	synthesized := make(metricStore)

	if taskStats.EndTimeMs >= taskStats.ExecutionEndTimeMs {
		synthesized.addValue("outputConsumedDelayInNanos",
			(taskStats.EndTimeMs-taskStats.ExecutionEndTimeMs)*1_000_000, engine.UnitNanos)
		synthesized.addValue("createTime", taskStats.ExecutionStartTimeMs, engine.UnitNone)
		synthesized.addValue("endTime", taskStats.EndTimeMs, engine.UnitNone)
	}

	for i := range taskStats.PipelineStats {
		pipeline := &taskStats.PipelineStats[i]
		pipelineOut := &stats.Pipelines[i]

		// the engine assigns pipeline ids; fall back to the position for
		// pipelines that never created an operator
		pipelineOut.PipelineID = int32(i)
		if len(pipeline.OperatorStats) > 0 {
			pipelineOut.PipelineID = pipeline.OperatorStats[0].PipelineID
		}
		pipelineOut.InputPipeline = pipeline.InputPipeline
		pipelineOut.OutputPipeline = pipeline.OutputPipeline
		pipelineOut.FirstStartTime = stats.CreateTime
		pipelineOut.LastStartTime = stats.EndTime
		pipelineOut.LastEndTime = stats.EndTime

		pipelineOut.OperatorSummaries = make([]types.OperatorStats, len(pipeline.OperatorStats))
		pipelineOut.TotalScheduledTimeNanos = 0
		pipelineOut.TotalCpuTimeNanos = 0
		pipelineOut.TotalBlockedTimeNanos = 0
		pipelineOut.UserMemoryReservationBytes = 0
		pipelineOut.RevocableMemoryReservationBytes = 0
		pipelineOut.SystemMemoryReservationBytes = 0

		// tasks may fail before any operators are created; a pipeline's
		// boundary figures are defined by its first and last operator
		if len(pipeline.OperatorStats) > 0 {
			first := &pipeline.OperatorStats[0]
			last := &pipeline.OperatorStats[len(pipeline.OperatorStats)-1]

			pipelineOut.TotalDrivers = first.NumDrivers
			pipelineOut.RawInputPositions = first.RawInputPositions
			pipelineOut.RawInputDataSizeBytes = first.RawInputBytes
			pipelineOut.ProcessedInputPositions = first.InputPositions
			pipelineOut.ProcessedInputDataSizeBytes = first.InputBytes
			pipelineOut.OutputPositions = last.OutputPositions
			pipelineOut.OutputDataSizeBytes = last.OutputBytes
		}

		if pipelineOut.InputPipeline {
			stats.RawInputPositions += pipelineOut.RawInputPositions
			stats.RawInputDataSizeBytes += pipelineOut.RawInputDataSizeBytes
			stats.ProcessedInputPositions += pipelineOut.ProcessedInputPositions
			stats.ProcessedInputDataSizeBytes += pipelineOut.ProcessedInputDataSizeBytes
		}
		if pipelineOut.OutputPipeline {
			stats.OutputPositions += pipelineOut.OutputPositions
			stats.OutputDataSizeBytes += pipelineOut.OutputDataSizeBytes
		}

		for j := range pipeline.OperatorStats {
			op := &pipeline.OperatorStats[j]
			opOut := &pipelineOut.OperatorSummaries[j]

			opOut.StageID = t.id.StageID
			opOut.StageExecutionID = t.id.StageExecution
			opOut.PipelineID = int32(i)
			opOut.PlanNodeID = op.PlanNodeID
			opOut.OperatorID = op.OperatorID
			opOut.OperatorType = toOperatorType(op.OperatorType)

			opOut.TotalDrivers = op.NumDrivers
			opOut.InputPositions = op.InputPositions
			opOut.SumSquaredInputPositions = float64(op.InputPositions) * float64(op.InputPositions)
			opOut.InputDataSizeBytes = op.InputBytes
			opOut.RawInputPositions = op.RawInputPositions
			opOut.RawInputDataSizeBytes = op.RawInputBytes

			// Engines fuse scan and filter logically, so the scan's raw
			// input belongs on the projection node that follows it.
			if j == 1 && op.OperatorType == "FilterProject" &&
				pipeline.OperatorStats[0].OperatorType == "TableScan" {
				scanOp := &pipeline.OperatorStats[0]
				opOut.RawInputPositions = scanOp.RawInputPositions
				opOut.RawInputDataSizeBytes = scanOp.RawInputBytes
			}

			opOut.OutputPositions = op.OutputPositions
			opOut.OutputDataSizeBytes = op.OutputBytes

			setTiming(op.AddInputTiming,
				&opOut.AddInputCalls, &opOut.AddInputWallNanos, &opOut.AddInputCpuNanos)
			setTiming(op.GetOutputTiming,
				&opOut.GetOutputCalls, &opOut.GetOutputWallNanos, &opOut.GetOutputCpuNanos)
			setTiming(op.FinishTiming,
				&opOut.FinishCalls, &opOut.FinishWallNanos, &opOut.FinishCpuNanos)

			opOut.BlockedWallNanos = op.BlockedWallNanos

			opOut.UserMemoryReservationBytes = op.MemoryStats.UserMemoryReservation
			opOut.RevocableMemoryReservationBytes = op.MemoryStats.RevocableMemoryReservation
			opOut.SystemMemoryReservationBytes = op.MemoryStats.SystemMemoryReservation
			opOut.PeakUserMemoryReservationBytes = op.MemoryStats.PeakUserMemoryReservation
			opOut.PeakSystemMemoryReservationBytes = op.MemoryStats.PeakSystemMemoryReservation
			opOut.PeakTotalMemoryReservationBytes = op.MemoryStats.PeakTotalMemoryReservation

			opOut.SpilledDataSizeBytes = op.SpilledBytes

			opOut.RuntimeStats = make(map[string]types.RuntimeMetric, len(op.RuntimeStats))
			for name, metric := range op.RuntimeStats {
				statName := fmt.Sprintf("%s.%s.%s", op.OperatorType, op.PlanNodeID, name)
				opOut.RuntimeStats[statName] = toRuntimeMetric(statName, metric)
				t.lifetimeMetrics.merge(statName, metric)
			}
			if op.NumSplits != 0 {
				statName := fmt.Sprintf("%s.%s.numSplits", op.OperatorType, op.PlanNodeID)
				opOut.RuntimeStats[statName] = newWireMetric(statName, op.NumSplits, types.UnitNone)
			}
			if op.SpilledBytes > 0 {
				t.addSpillingOperatorMetrics(opOut, synthesized, op)
			}

			wallNanos := op.AddInputTiming.WallNanos +
				op.GetOutputTiming.WallNanos + op.FinishTiming.WallNanos
			cpuNanos := op.AddInputTiming.CpuNanos +
				op.GetOutputTiming.CpuNanos + op.FinishTiming.CpuNanos

			pipelineOut.TotalScheduledTimeNanos += wallNanos
			pipelineOut.TotalCpuTimeNanos += cpuNanos
			pipelineOut.TotalBlockedTimeNanos += op.BlockedWallNanos
			pipelineOut.UserMemoryReservationBytes += op.MemoryStats.UserMemoryReservation
			pipelineOut.RevocableMemoryReservationBytes += op.MemoryStats.RevocableMemoryReservation
			pipelineOut.SystemMemoryReservationBytes += op.MemoryStats.SystemMemoryReservation

			stats.TotalScheduledTimeNanos += wallNanos
			stats.TotalCpuTimeNanos += cpuNanos
			stats.TotalBlockedTimeNanos += op.BlockedWallNanos
		}
	}

	synthesized.addValueIfNotZero("drivers.total", taskStats.NumTotalDrivers)
	synthesized.addValueIfNotZero("drivers.running", taskStats.NumRunningDrivers)
	synthesized.addValueIfNotZero("drivers.completed", taskStats.NumCompletedDrivers)
	synthesized.addValueIfNotZero("drivers.terminated", taskStats.NumTerminatedDrivers)
	for reason, count := range taskStats.NumBlockedDrivers {
		synthesized.addValueIfNotZero(fmt.Sprintf("drivers.%s", reason), count)
	}

	t.lifetimeMetrics.exportInto(stats.RuntimeStats)
	synthesized.exportInto(stats.RuntimeStats)

	return t.info
}

// addSpillingOperatorMetrics surfaces the operator's spill counters as
// runtime metrics on both the operator and the task, under fully-qualified
// names.
func (t *Task) addSpillingOperatorMetrics(
	opOut *types.OperatorStats, taskMetrics metricStore, op *engine.OperatorStats) {
	statName := fmt.Sprintf("%s.%s.spilledBytes", op.OperatorType, op.PlanNodeID)
	opOut.RuntimeStats[statName] = newWireMetric(statName, op.SpilledBytes, types.UnitByte)
	taskMetrics.addValue(statName, op.SpilledBytes, engine.UnitBytes)

	statName = fmt.Sprintf("%s.%s.spilledRows", op.OperatorType, op.PlanNodeID)
	opOut.RuntimeStats[statName] = newWireMetric(statName, op.SpilledRows, types.UnitNone)
	taskMetrics.addValue(statName, op.SpilledRows, engine.UnitNone)

	statName = fmt.Sprintf("%s.%s.spilledPartitions", op.OperatorType, op.PlanNodeID)
	opOut.RuntimeStats[statName] = newWireMetric(statName, op.SpilledPartitions, types.UnitNone)
	taskMetrics.addValue(statName, op.SpilledPartitions, engine.UnitNone)

	statName = fmt.Sprintf("%s.%s.spilledFiles", op.OperatorType, op.PlanNodeID)
	opOut.RuntimeStats[statName] = newWireMetric(statName, op.SpilledFiles, types.UnitNone)
	taskMetrics.addValue(statName, op.SpilledFiles, engine.UnitNone)
}
