package executor

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// reentrantMutex is a mutex the owning goroutine may lock again.
type reentrantMutex struct {
	mu    sync.Mutex
	owner atomic.Int64
	depth int // guarded by mu
}

func (m *reentrantMutex) Lock() {
	id := goid.Get()
	if m.owner.Load() == id {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(id)
	m.depth = 1
}

func (m *reentrantMutex) Unlock() {
	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mu.Unlock()
	}
}

// Synchronous runs each task on the calling goroutine while holding a
// re-entrant lock. Concurrent callers are serialized; a task that logs
// through the same executor runs its nested task immediately instead
// of deadlocking.
type Synchronous struct {
	lock    reentrantMutex
	stats   Stats
	onPanic func(any)
}

// NewSynchronous creates a synchronous executor. Only cfg.OnPanic is
// used.
func NewSynchronous(cfg Config) *Synchronous {
	return &Synchronous{onPanic: cfg.OnPanic}
}

// Execute runs task before returning.
func (s *Synchronous) Execute(task func()) {
	s.stats.enqueued.Add(1)
	s.lock.Lock()
	defer s.lock.Unlock()
	s.stats.run(task, s.onPanic)
}

// Stats returns the executor counters.
func (s *Synchronous) Stats() *Stats {
	return &s.stats
}
