// Package presto provides the task status and statistics aggregation layer
// of a distributed SQL query-execution worker: the bridge between the
// execution engine's live task objects and the snapshots the coordinator
// polls.
package presto

import (
	"github.com/juju/errors"

	"github.com/rohanpednekar/presto/runtime"
	"github.com/rohanpednekar/presto/types"
)

// NewTaskManager creates a task manager with the given options.
func NewTaskManager(opts ...types.ManagerOption) (*runtime.Manager, error) {
	options := types.NewManagerOptions()
	for _, opt := range opts {
		opt(options)
	}

	if options.HeartbeatTimeoutMs <= 0 {
		return nil, errors.NotValidf("heartbeat timeout %dms", options.HeartbeatTimeoutMs)
	}
	if options.ReapConcurrency <= 0 {
		return nil, errors.NotValidf("reap concurrency %d", options.ReapConcurrency)
	}

	return runtime.NewManager(options), nil
}
