// Package executor provides the execution contexts a Logger runs its
// work on.
//
// Synchronous runs every task on the calling goroutine under a
// re-entrant lock keyed by goroutine id, so concurrent callers are
// totally ordered and a task may log again without deadlocking.
//
// Serial runs tasks on one dedicated goroutine fed by an unbounded
// queue. Execute never blocks and never drops; Flush waits for the
// queue to catch up and Close drains it, bounded by Config.DrainTimeout when positive.
// Once closed, a Serial degrades to synchronous execution so late log
// calls are still written.
//
// Several loggers sharing one Executor share its ordering.
package executor
