package logger

import "sync/atomic"

// Stats tracks logger activity
type Stats struct {
	// skipped counts calls rejected by the enabled flag or level gate
	skipped   atomic.Uint64
	scheduled atomic.Uint64
	filtered  atomic.Uint64
	aborted   atomic.Uint64
	written   atomic.Uint64
	failed    atomic.Uint64
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	// Skipped calls never evaluated their producer
	Skipped uint64
	// Scheduled calls were handed to the executor
	Scheduled uint64
	// Filtered calls were rejected by a filter
	Filtered uint64
	// Aborted calls panicked in a producer or filter
	Aborted uint64
	// Written counts successful writer invocations
	Written uint64
	// Failed counts writer invocations that errored or panicked
	Failed uint64
}

// Snapshot returns the current counters
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Skipped:   s.skipped.Load(),
		Scheduled: s.scheduled.Load(),
		Filtered:  s.filtered.Load(),
		Aborted:   s.aborted.Load(),
		Written:   s.written.Load(),
		Failed:    s.failed.Load(),
	}
}

// Reset sets all counters to zero
func (s *Stats) Reset() {
	s.skipped.Store(0)
	s.scheduled.Store(0)
	s.filtered.Store(0)
	s.aborted.Store(0)
	s.written.Store(0)
	s.failed.Store(0)
}
