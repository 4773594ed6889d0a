package types

import (
	"context"
	"time"

	"github.com/mcuadros/go-defaults"
)

func NewManagerOptions() *ManagerOptions {
	opts := &ManagerOptions{Ctx: context.Background()}
	defaults.SetDefaults(opts)
	return opts
}

type ManagerOptions struct {
	Ctx context.Context

	// NodeID identifies the worker node in every TaskInfo it serves.
	NodeID string `default:"worker-0"`
	/**
	 * default: 10m
	 * a task whose heartbeat is older than this is considered abandoned
	 * by the coordinator and gets reaped.
	 */
	HeartbeatTimeoutMs int64 `default:"600000"`
	/**
	 * default: 1m
	 * how often the reaper scans for abandoned tasks.
	 */
	ReapIntervalMs int64 `default:"60000"`
	/**
	 * default: 4
	 * the reaper checks at most this many tasks concurrently.
	 */
	ReapConcurrency int `default:"4"`
	/**
	 * default: true, set it to false when the caller drives reaping
	 * itself via Manager.ReapAbandonedTasks().
	 */
	AutoReap bool `default:"true"`
}

func (o *ManagerOptions) HeartbeatTimeout() time.Duration {
	return time.Duration(o.HeartbeatTimeoutMs) * time.Millisecond
}

type ManagerOption func(*ManagerOptions)

func WithContext(ctx context.Context) ManagerOption {
	return func(opts *ManagerOptions) {
		opts.Ctx = ctx
	}
}

func WithNodeID(nodeID string) ManagerOption {
	return func(opts *ManagerOptions) {
		opts.NodeID = nodeID
	}
}

func WithHeartbeatTimeout(timeout time.Duration) ManagerOption {
	return func(opts *ManagerOptions) {
		opts.HeartbeatTimeoutMs = timeout.Milliseconds()
	}
}

func WithReapInterval(interval time.Duration) ManagerOption {
	return func(opts *ManagerOptions) {
		opts.ReapIntervalMs = interval.Milliseconds()
	}
}

func SetReapConcurrency(concurrency int) ManagerOption {
	return func(opts *ManagerOptions) {
		opts.ReapConcurrency = concurrency
	}
}

func DisableAutoReap() ManagerOption {
	return func(opts *ManagerOptions) {
		opts.AutoReap = false
	}
}
