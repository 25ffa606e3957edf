package logger

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/bitlog/core"
	"github.com/philipp01105/bitlog/executor"
	"github.com/philipp01105/bitlog/filter"
	"github.com/philipp01105/bitlog/modifier"
	"github.com/philipp01105/bitlog/writer"
)

// route binds a level mask to writers
type route struct {
	mask    core.Level
	writers []writer.Writer
}

// modifierRoute binds a level mask to a modifier chain
type modifierRoute struct {
	mask core.Level
	mods modifier.Chain
}

// Logger dispatches leveled, lazily produced messages to writers. Its
// routing and modifier tables are fixed at Build; the enabled flag and
// the filter chain may change at any time.
type Logger struct {
	*state
	attrs map[string]any // merged into every message, see With
}

// state is shared by a Logger and every child created with With
type state struct {
	enabled   atomic.Bool
	levels    core.Levels
	routes    []route
	routeMask core.Level // union of every route mask
	modifiers []modifierRoute
	filters   *filter.Chain

	exec     executor.Executor
	ownsExec bool
	clock    clock.Clock
	coarse   *core.CoarseClock
	context  core.ContextConfig
	diag     *zap.Logger

	includeSource bool
	callerSkip    int

	stats     Stats
	closeOnce sync.Once
	closeErr  error
}

// Producer lazily builds a message. It runs at most once per call.
type Producer func() core.Message

// Debug logs fn() at the debug level
func (l *Logger) Debug(fn func() string) {
	l.logAt(l.levels.Debug, textProducer(fn))
}

// Info logs fn() at the info level
func (l *Logger) Info(fn func() string) {
	l.logAt(l.levels.Info, textProducer(fn))
}

// Event logs fn() at the event level
func (l *Logger) Event(fn func() string) {
	l.logAt(l.levels.Event, textProducer(fn))
}

// Warn logs fn() at the warn level
func (l *Logger) Warn(fn func() string) {
	l.logAt(l.levels.Warn, textProducer(fn))
}

// Error logs fn() at the error level
func (l *Logger) Error(fn func() string) {
	l.logAt(l.levels.Error, textProducer(fn))
}

// Debugf logs a formatted debug message. Formatting is deferred until
// the message is dispatched.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logAt(l.levels.Debug, formatProducer(format, args))
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logAt(l.levels.Info, formatProducer(format, args))
}

// Eventf logs a formatted event message
func (l *Logger) Eventf(format string, args ...interface{}) {
	l.logAt(l.levels.Event, formatProducer(format, args))
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logAt(l.levels.Warn, formatProducer(format, args))
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logAt(l.levels.Error, formatProducer(format, args))
}

// DebugMessage logs a structured message at the debug level
func (l *Logger) DebugMessage(msg core.Message) {
	l.logAt(l.levels.Debug, valueProducer(msg))
}

// InfoMessage logs a structured message at the info level
func (l *Logger) InfoMessage(msg core.Message) {
	l.logAt(l.levels.Info, valueProducer(msg))
}

// EventMessage logs a structured message at the event level
func (l *Logger) EventMessage(msg core.Message) {
	l.logAt(l.levels.Event, valueProducer(msg))
}

// WarnMessage logs a structured message at the warn level
func (l *Logger) WarnMessage(msg core.Message) {
	l.logAt(l.levels.Warn, valueProducer(msg))
}

// ErrorMessage logs a structured message at the error level
func (l *Logger) ErrorMessage(msg core.Message) {
	l.logAt(l.levels.Error, valueProducer(msg))
}

// Log logs fn() at an arbitrary, possibly custom, level
func (l *Logger) Log(level core.Level, fn func() string) {
	l.logAt(level, textProducer(fn))
}

// Logf logs a formatted message at an arbitrary level
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	l.logAt(level, formatProducer(format, args))
}

// LogMessage logs a structured message at an arbitrary level
func (l *Logger) LogMessage(level core.Level, msg core.Message) {
	l.logAt(level, valueProducer(msg))
}

// LogMessageFunc logs the message built by fn at an arbitrary level
func (l *Logger) LogMessageFunc(level core.Level, fn Producer) {
	l.logAt(level, fn)
}

// With returns a child logger that adds attrs to every message it
// logs. Messages keep their own value for a key they already carry.
// The child shares routes, filters, executor, enabled flag, stats and
// lifecycle with l.
func (l *Logger) With(attrs ...Attr) *Logger {
	if len(attrs) == 0 {
		return l
	}
	merged := make(map[string]any, len(l.attrs)+len(attrs))
	for k, v := range l.attrs {
		merged[k] = v
	}
	for _, a := range attrs {
		merged[a.Key] = a.Value
	}
	return &Logger{state: l.state, attrs: merged}
}

// SetEnabled turns logging on or off. Calls already scheduled still run.
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled.Store(enabled)
}

// Enabled reports whether the logger accepts calls
func (l *Logger) Enabled() bool {
	return l.enabled.Load()
}

// IsLevelEnabled reports whether a call at level would be scheduled
func (l *Logger) IsLevelEnabled(level core.Level) bool {
	return l.enabled.Load() && level.Intersects(l.routeMask)
}

// Levels returns the bit assignment of the named levels
func (l *Logger) Levels() core.Levels {
	return l.levels
}

// AddFilter appends a filter to the chain
func (l *Logger) AddFilter(f filter.Filter) {
	l.filters.Add(f)
}

// RemoveFilter removes every filter called name
func (l *Logger) RemoveFilter(name string) {
	l.filters.Remove(name)
}

// RemoveFilters empties the filter chain
func (l *Logger) RemoveFilters() {
	l.filters.RemoveAll()
}

// Filters returns a copy of the filter chain
func (l *Logger) Filters() []filter.Filter {
	return l.filters.Filters()
}

// Stats returns the logger counters
func (l *Logger) Stats() *Stats {
	return &l.stats
}

// Flush waits until every scheduled call has been written, when the
// executor queues work.
func (l *Logger) Flush() {
	if f, ok := l.exec.(executor.Flusher); ok {
		f.Flush()
	}
}

// Close flushes pending calls, stops an executor the logger created and
// closes every writer implementing io.Closer once. Every queued call is
// written unless WithDrainTimeout set a bound.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		l.Flush()
		var err error
		if c, ok := l.exec.(executor.Closer); ok && l.ownsExec {
			err = multierr.Append(err, c.Close())
		}
		closed := make(map[writer.Writer]bool)
		for _, r := range l.routes {
			for _, w := range r.writers {
				c, ok := w.(io.Closer)
				if !ok || closed[w] {
					continue
				}
				closed[w] = true
				err = multierr.Append(err, c.Close())
			}
		}
		if l.coarse != nil {
			l.coarse.Stop()
		}
		l.closeErr = err
	})
	return l.closeErr
}

// logAt gates the call, captures the call site and schedules it.
func (l *Logger) logAt(level core.Level, produce Producer) {
	if !l.admit(level, produce) {
		return
	}
	var src core.Source
	if l.includeSource {
		src = core.Caller(l.callerSkip)
	}
	l.schedule(level, l.withAttrs(produce), src)
}

// withAttrs wraps produce so the message carries the logger attributes.
// A Text message becomes a structured one named after its text.
func (l *Logger) withAttrs(produce Producer) Producer {
	if len(l.attrs) == 0 {
		return produce
	}
	base := l.attrs
	return func() core.Message {
		msg := produce()
		if msg == nil {
			msg = core.Text("")
		}
		own := msg.Attributes()
		merged := make(map[string]any, len(base)+len(own))
		for k, v := range base {
			merged[k] = v
		}
		for k, v := range own {
			merged[k] = v
		}
		return core.NewMessage(msg.Name(), merged)
	}
}

// admit applies the enabled flag and the level gate. A rejected
// producer is never invoked.
func (l *Logger) admit(level core.Level, produce Producer) bool {
	if produce == nil {
		return false
	}
	if !l.enabled.Load() || !level.Intersects(l.routeMask) {
		l.stats.skipped.Add(1)
		return false
	}
	return true
}

func (l *Logger) schedule(level core.Level, produce Producer, src core.Source) {
	l.stats.scheduled.Add(1)
	l.exec.Execute(func() {
		l.dispatch(level, produce, src)
	})
}

// dispatch runs on the executor: produce, filter, modify, write.
func (l *Logger) dispatch(level core.Level, produce Producer, src core.Source) {
	defer func() {
		if r := recover(); r != nil {
			l.stats.aborted.Add(1)
			l.diag.Error("log call aborted",
				zap.String("level", l.levels.Name(level)),
				zap.String("panic", fmt.Sprint(r)))
		}
	}()

	msg := produce()
	if msg == nil {
		msg = core.Text("")
	}
	if !l.filters.ShouldInclude(msg, level) {
		l.stats.filtered.Add(1)
		return
	}

	ctx := core.NewContext(level, l.clock.Now(), src, l.context)
	attrs := msg.Attributes()
	mods := l.modifiersFor(level)

	for _, r := range l.routes {
		if !r.mask.Intersects(level) {
			continue
		}
		for _, w := range r.writers {
			l.write(w, level, msg, ctx, mods, attrs)
		}
	}
}

// write applies the modifier chains for one writer and hands it the
// record. Failures are reported and counted, never propagated.
func (l *Logger) write(w writer.Writer, level core.Level, msg core.Message, ctx *core.Context, mods modifier.Chain, attrs map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			l.stats.failed.Add(1)
			l.diag.Error("writer panicked",
				zap.String("writer", fmt.Sprintf("%T", w)),
				zap.String("level", l.levels.Name(level)),
				zap.String("panic", fmt.Sprint(r)))
		}
	}()

	text := mods.Apply(msg.Name(), level, ctx, attrs)
	if mw, ok := w.(writer.ModifierWriter); ok {
		text = mw.Modifiers().Apply(text, level, ctx, attrs)
	}

	err := w.WriteMessage(&core.Record{
		Level:   level,
		Text:    text,
		Message: msg,
		Context: ctx,
	})
	if err != nil {
		l.stats.failed.Add(1)
		l.diag.Warn("writer failed",
			zap.String("writer", fmt.Sprintf("%T", w)),
			zap.String("level", l.levels.Name(level)),
			zap.Error(err))
		return
	}
	l.stats.written.Add(1)
}

// modifiersFor concatenates, in table order, every chain whose mask
// intersects level.
func (l *Logger) modifiersFor(level core.Level) modifier.Chain {
	var out modifier.Chain
	matched := 0
	for _, r := range l.modifiers {
		if !r.mask.Intersects(level) {
			continue
		}
		if matched == 0 {
			out = r.mods
		} else {
			if matched == 1 {
				out = append(modifier.Chain(nil), out...)
			}
			out = append(out, r.mods...)
		}
		matched++
	}
	return out
}

func textProducer(fn func() string) Producer {
	if fn == nil {
		return nil
	}
	return func() core.Message { return core.Text(fn()) }
}

func formatProducer(format string, args []interface{}) Producer {
	return func() core.Message { return core.Text(fmt.Sprintf(format, args...)) }
}

func valueProducer(msg core.Message) Producer {
	return func() core.Message { return msg }
}
