package runtime

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"

	"github.com/rohanpednekar/presto/types"
)

// Manager owns the worker's task records and serves the transport layer's
// polls. Different tasks' locks are independent: polling one task never
// blocks polling another.
type Manager struct {
	opts *types.ManagerOptions

	ctx    context.Context
	cancel context.CancelFunc

	exitCh  chan struct{}
	running bool

	mu    sync.Mutex
	tasks map[string]*Task

	wp          *workerpool.WorkerPool
	reapWg      sync.WaitGroup
	reapedTotal int64
}

func NewManager(opts *types.ManagerOptions) *Manager {
	m := &Manager{
		opts:  opts,
		tasks: make(map[string]*Task),
		wp:    workerpool.New(opts.ReapConcurrency),
	}
	m.ctx, m.cancel = context.WithCancel(opts.Ctx)
	m.running = true

	if opts.AutoReap {
		m.asyncReap()
	}
	return m
}

func (m *Manager) asyncReap() {
	readyCh := make(chan struct{}, 1)

	go func() {
		m.exitCh = make(chan struct{})
		close(readyCh)

		ticker := time.NewTicker(time.Duration(m.opts.ReapIntervalMs) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-m.ctx.Done():
				close(m.exitCh)
				return
			case <-ticker.C:
				m.ReapAbandonedTasks()
			}
		}
	}()
	<-readyCh
}

// CreateOrGetTask returns the record for taskID, creating it on first use.
// Creation records an initial heartbeat.
func (m *Manager) CreateOrGetTask(taskID string) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, exists := m.tasks[taskID]; exists {
		return t, nil
	}
	if !m.running {
		return nil, errors.MethodNotAllowedf("not running")
	}

	t, err := NewTask(taskID, m.opts.NodeID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	t.RecordHeartbeat()
	m.tasks[taskID] = t
	return t, nil
}

func (m *Manager) GetTask(taskID string) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, exists := m.tasks[taskID]
	if !exists {
		return nil, errors.NotFoundf("task %s", taskID)
	}
	return t, nil
}

// GetTaskStatus serves the cheap poll path.
func (m *Manager) GetTaskStatus(taskID string) (types.TaskStatus, error) {
	t, err := m.GetTask(taskID)
	if err != nil {
		return types.TaskStatus{}, errors.Trace(err)
	}
	return t.GetStatus(), nil
}

// GetTaskInfo serves the expensive poll path.
func (m *Manager) GetTaskInfo(taskID string) (types.TaskInfo, error) {
	t, err := m.GetTask(taskID)
	if err != nil {
		return types.TaskInfo{}, errors.Trace(err)
	}
	return t.GetInfo(), nil
}

// FailTask records a pre-execution failure, e.g. when building the
// execution plan for the task fails.
func (m *Manager) FailTask(taskID string, taskErr error) error {
	t, err := m.GetTask(taskID)
	if err != nil {
		return errors.Trace(err)
	}
	t.Fail(taskErr)
	return nil
}

// RemoveTask retires the record after the coordinator acknowledged the
// terminal state, returning the final info snapshot.
func (m *Manager) RemoveTask(taskID string) (types.TaskInfo, error) {
	m.mu.Lock()
	t, exists := m.tasks[taskID]
	if exists {
		delete(m.tasks, taskID)
	}
	m.mu.Unlock()

	if !exists {
		return types.TaskInfo{}, errors.NotFoundf("task %s", taskID)
	}
	return t.GetInfo(), nil
}

// TaskNumbers tallies tasks by their last-known state.
func (m *Manager) TaskNumbers() map[types.TaskState]int {
	m.mu.Lock()
	tasks := make([]*Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		tasks = append(tasks, t)
	}
	m.mu.Unlock()

	numbers := make(map[types.TaskState]int)
	for _, t := range tasks {
		numbers[t.State()]++
	}
	return numbers
}

// ReapedTotal returns how many abandoned tasks were reaped so far.
func (m *Manager) ReapedTotal() int64 {
	return atomic.LoadInt64(&m.reapedTotal)
}

// ReapAbandonedTasks fails and removes every task whose heartbeat is older
// than the configured timeout. Staleness checks fan out over the worker
// pool; removal happens on the calling goroutine.
func (m *Manager) ReapAbandonedTasks() int {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return 0
	}
	m.reapWg.Add(1)
	defer m.reapWg.Done()

	candidates := make(map[string]*Task, len(m.tasks))
	for taskID, t := range m.tasks {
		candidates[taskID] = t
	}
	m.mu.Unlock()

	timeoutMs := uint64(m.opts.HeartbeatTimeoutMs)

	var staleMu sync.Mutex
	stale := make([]string, 0)

	var wg sync.WaitGroup
	for taskID, t := range candidates {
		taskID, t := taskID, t
		wg.Add(1)
		m.wp.Submit(func() {
			defer wg.Done()

			elapsed := t.MillisecondsSinceHeartbeat()
			if elapsed == 0 || elapsed <= timeoutMs {
				return
			}
			t.Fail(ErrAbandoned)
			// force the FAILED projection before the record goes away
			status := t.GetStatus()
			log.Warnf("reaping task %s: no heartbeat for %dms, state %v",
				taskID, elapsed, status.State)

			staleMu.Lock()
			stale = append(stale, taskID)
			staleMu.Unlock()
		})
	}
	wg.Wait()

	m.mu.Lock()
	for _, taskID := range stale {
		delete(m.tasks, taskID)
	}
	m.mu.Unlock()

	atomic.AddInt64(&m.reapedTotal, int64(len(stale)))
	return len(stale)
}

// Close stops the reaper and waits for in-flight checks to drain.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = false
	m.mu.Unlock()

	m.cancel()
	if m.exitCh != nil {
		select {
		case <-m.exitCh:
		case <-ctx.Done():
			return errors.Trace(ctx.Err())
		}
	}
	// in-flight caller-driven reaps must drain before the pool stops,
	// or their Submit calls would hit a stopped pool
	m.reapWg.Wait()
	m.wp.StopWait()

	if numbers := m.TaskNumbers(); len(numbers) > 0 {
		log.Debugf("closing with tasks %v", numbers)
	}
	return nil
}
