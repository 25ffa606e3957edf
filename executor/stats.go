package executor

import "sync/atomic"

// Stats tracks executor activity
type Stats struct {
	enqueued  atomic.Uint64
	processed atomic.Uint64
	panicked  atomic.Uint64
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Enqueued  uint64
	Processed uint64
	Panicked  uint64
}

// Pending returns the number of tasks submitted but not yet finished.
func (s Snapshot) Pending() uint64 {
	return s.Enqueued - s.Processed
}

// Snapshot returns the current counters
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Enqueued:  s.enqueued.Load(),
		Processed: s.processed.Load(),
		Panicked:  s.panicked.Load(),
	}
}

// Reset sets all counters to zero
func (s *Stats) Reset() {
	s.enqueued.Store(0)
	s.processed.Store(0)
	s.panicked.Store(0)
}

// run executes task, counting it and recovering a panic.
func (s *Stats) run(task func(), onPanic func(any)) {
	defer func() {
		s.processed.Add(1)
		if r := recover(); r != nil {
			s.panicked.Add(1)
			if onPanic != nil {
				onPanic(r)
			}
		}
	}()
	task()
}
