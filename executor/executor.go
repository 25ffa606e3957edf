package executor

// Executor runs log tasks. Every task submitted to one Executor runs
// mutually exclusive with every other task submitted to it, in
// submission order per submitting goroutine.
type Executor interface {
	Execute(task func())
}

// Flusher is implemented by executors that can wait for queued tasks.
type Flusher interface {
	Flush()
}

// Closer is implemented by executors that own resources.
type Closer interface {
	Close() error
}
