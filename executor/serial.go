package executor

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/petermattis/goid"
)

// Config holds executor configuration
type Config struct {
	// DrainTimeout bounds how long Close keeps running queued tasks.
	// Zero or negative runs the whole queue. Serial only.
	DrainTimeout time.Duration
	// OnPanic receives values recovered from panicking tasks
	OnPanic func(any)
}

type job struct {
	task   func()
	marker bool // flush barrier, not counted in Stats
}

// Serial runs tasks one at a time on a dedicated goroutine, in
// submission order. Its queue is unbounded, so Execute never blocks and
// a task may submit further tasks to the same Serial.
type Serial struct {
	mu       sync.Mutex // guards queue and isClosed
	queue    []job
	isClosed bool

	notify   chan struct{}
	closing  chan struct{}
	done     chan struct{}
	workerID atomic.Int64

	// lock serializes the worker with tasks run inline after Close
	lock         reentrantMutex
	stats        Stats
	dropped      atomic.Uint64
	drainTimeout time.Duration
	deadline     time.Time // set by Close before closing is closed; zero means none
	onPanic      func(any)
}

// NewSerial creates a serial executor and starts its worker.
func NewSerial(cfg Config) *Serial {
	s := &Serial{
		notify:       make(chan struct{}, 1),
		closing:      make(chan struct{}),
		done:         make(chan struct{}),
		drainTimeout: cfg.DrainTimeout,
		onPanic:      cfg.OnPanic,
	}
	started := make(chan struct{})
	go s.process(started)
	<-started
	return s
}

// Execute queues task and returns immediately. After Close, task runs
// on the calling goroutine under the serial lock.
func (s *Serial) Execute(task func()) {
	s.stats.enqueued.Add(1)
	s.submit(job{task: task})
}

func (s *Serial) submit(j job) {
	s.mu.Lock()
	if s.isClosed {
		s.mu.Unlock()
		s.runJob(j)
		return
	}
	s.queue = append(s.queue, j)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// Flush blocks until every task submitted before the call has run. It
// returns at once when called from a task on this executor.
func (s *Serial) Flush() {
	if s.onWorker() {
		return
	}
	barrier := make(chan struct{})
	s.submit(job{task: func() { close(barrier) }, marker: true})
	<-barrier
}

// Close runs the remaining queue and stops the worker. With a positive
// DrainTimeout, tasks still queued at the deadline are dropped and
// counted; otherwise every queued task runs.
func (s *Serial) Close() error {
	s.mu.Lock()
	if s.isClosed {
		s.mu.Unlock()
		return nil
	}
	s.isClosed = true
	if s.drainTimeout > 0 {
		s.deadline = time.Now().Add(s.drainTimeout)
	}
	s.mu.Unlock()

	close(s.closing)
	if !s.onWorker() {
		<-s.done
	}
	return nil
}

// Stats returns the executor counters.
func (s *Serial) Stats() *Stats {
	return &s.stats
}

// Dropped returns the number of tasks abandoned by Close.
func (s *Serial) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *Serial) onWorker() bool {
	return goid.Get() == s.workerID.Load()
}

func (s *Serial) take() []job {
	s.mu.Lock()
	batch := s.queue
	s.queue = nil
	s.mu.Unlock()
	return batch
}

func (s *Serial) runJob(j job) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if j.marker {
		j.task()
		return
	}
	s.stats.run(j.task, s.onPanic)
}

// process is the worker loop
func (s *Serial) process(started chan<- struct{}) {
	s.workerID.Store(goid.Get())
	close(started)
	defer close(s.done)

	for {
		select {
		case <-s.notify:
			s.runBatches()
		case <-s.closing:
			s.drain()
			return
		}
	}
}

// runBatches keeps taking batches while tasks arrive. It hands the
// rest of the queue back once Close has been called.
func (s *Serial) runBatches() {
	for batch := s.take(); len(batch) > 0; batch = s.take() {
		for i, j := range batch {
			select {
			case <-s.closing:
				s.requeue(batch[i:])
				return
			default:
			}
			s.runJob(j)
		}
	}
}

// drain runs what is left of the queue until the Close deadline.
func (s *Serial) drain() {
	for batch := s.take(); len(batch) > 0; batch = s.take() {
		for i, j := range batch {
			if !s.deadline.IsZero() && time.Now().After(s.deadline) {
				s.abandon(batch[i:])
				break
			}
			s.runJob(j)
		}
	}
}

func (s *Serial) requeue(jobs []job) {
	s.mu.Lock()
	s.queue = append(append([]job(nil), jobs...), s.queue...)
	s.mu.Unlock()
}

// abandon drops jobs left after the drain deadline. Flush barriers
// still fire so no caller blocks forever.
func (s *Serial) abandon(jobs []job) {
	for _, j := range jobs {
		if j.marker {
			j.task()
			continue
		}
		s.dropped.Add(1)
	}
}
