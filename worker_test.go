package presto

import (
	"context"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"

	"github.com/rohanpednekar/presto/types"
)

func TestNewTaskManager(t *testing.T) {
	m, err := NewTaskManager(
		types.WithNodeID("node-9"),
		types.WithHeartbeatTimeout(time.Minute),
		types.DisableAutoReap(),
	)
	assert.Nil(t, err)
	assert.NotNil(t, m)
	defer m.Close(context.Background())

	task, err := m.CreateOrGetTask("q.1.0.0.0")
	assert.Nil(t, err)
	assert.Equal(t, types.TaskPlanned, task.GetStatus().State)

	info, err := m.GetTaskInfo("q.1.0.0.0")
	assert.Nil(t, err)
	assert.Equal(t, "node-9", info.NodeID)
}

func TestNewTaskManagerInvalidOptions(t *testing.T) {
	_, err := NewTaskManager(types.WithHeartbeatTimeout(0))
	assert.True(t, errors.IsNotValid(err))

	_, err = NewTaskManager(types.SetReapConcurrency(0), types.DisableAutoReap())
	assert.True(t, errors.IsNotValid(err))
}
