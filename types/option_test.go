package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManagerOptionsDefaults(t *testing.T) {
	opts := NewManagerOptions()
	assert.NotNil(t, opts.Ctx)
	assert.Equal(t, "worker-0", opts.NodeID)
	assert.Equal(t, 10*time.Minute, opts.HeartbeatTimeout())
	assert.Equal(t, int64(60000), opts.ReapIntervalMs)
	assert.Equal(t, 4, opts.ReapConcurrency)
	assert.True(t, opts.AutoReap)
}

func TestManagerOptionSetters(t *testing.T) {
	opts := NewManagerOptions()
	for _, opt := range []ManagerOption{
		WithNodeID("node-7"),
		WithHeartbeatTimeout(30 * time.Second),
		WithReapInterval(5 * time.Second),
		SetReapConcurrency(2),
		DisableAutoReap(),
	} {
		opt(opts)
	}

	assert.Equal(t, "node-7", opts.NodeID)
	assert.Equal(t, int64(30000), opts.HeartbeatTimeoutMs)
	assert.Equal(t, int64(5000), opts.ReapIntervalMs)
	assert.Equal(t, 2, opts.ReapConcurrency)
	assert.False(t, opts.AutoReap)
}
