package logger

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/philipp01105/bitlog/core"
	"github.com/philipp01105/bitlog/executor"
	"github.com/philipp01105/bitlog/filter"
	"github.com/philipp01105/bitlog/internal/diag"
	"github.com/philipp01105/bitlog/modifier"
	"github.com/philipp01105/bitlog/writer"
)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	routes           []route
	modifiers        []modifierRoute
	filters          []filter.Filter
	exec             executor.Executor
	async            bool
	drainTimeout     time.Duration
	enabled          bool
	levels           core.Levels
	clock            clock.Clock
	coarseResolution time.Duration
	context          core.ContextConfig
	diag             *zap.Logger
	includeSource    bool
	callerSkip       int
	attrs            []core.Attr
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		enabled:       true,
		levels:        core.DefaultLevels(),
		includeSource: true,
		callerSkip:    2, // Default skip for core.Caller
	}
}

// WithWriters routes every level intersecting mask to writers. Routes
// fire in the order they were added.
func (b *Builder) WithWriters(mask core.Level, writers ...writer.Writer) *Builder {
	b.routes = append(b.routes, route{mask: mask, writers: writers})
	return b
}

// WithModifiers applies mods to every level intersecting mask, before
// the writer-owned modifiers.
func (b *Builder) WithModifiers(mask core.Level, mods ...modifier.Modifier) *Builder {
	b.modifiers = append(b.modifiers, modifierRoute{mask: mask, mods: mods})
	return b
}

// WithFilters sets the initial filter chain
func (b *Builder) WithFilters(filters ...filter.Filter) *Builder {
	b.filters = append(b.filters, filters...)
	return b
}

// WithExecutor runs the logger on exec. Loggers sharing an executor
// share its ordering; the logger does not close it.
func (b *Builder) WithExecutor(exec executor.Executor) *Builder {
	b.exec = exec
	return b
}

// WithAsync selects a private serial executor instead of synchronous
// execution. Ignored when WithExecutor is used.
func (b *Builder) WithAsync(async bool) *Builder {
	b.async = async
	return b
}

// WithDrainTimeout bounds how long Close drains an async logger. Calls
// still queued at the deadline are dropped. Zero, the default, drains
// every queued call.
func (b *Builder) WithDrainTimeout(d time.Duration) *Builder {
	b.drainTimeout = d
	return b
}

// WithAttrs adds attributes to every message of the built logger
func (b *Builder) WithAttrs(attrs ...core.Attr) *Builder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// WithEnabled sets the initial enabled flag
func (b *Builder) WithEnabled(enabled bool) *Builder {
	b.enabled = enabled
	return b
}

// WithLevels remaps the named levels onto other bits
func (b *Builder) WithLevels(levels core.Levels) *Builder {
	b.levels = levels
	return b
}

// WithClock sets the clock used for context timestamps
func (b *Builder) WithClock(c clock.Clock) *Builder {
	b.clock = c
	return b
}

// WithCoarseClock serves timestamps from a cached clock refreshed every
// resolution (zero selects core.DefaultCoarseResolution).
func (b *Builder) WithCoarseClock(resolution time.Duration) *Builder {
	if resolution <= 0 {
		resolution = core.DefaultCoarseResolution
	}
	b.coarseResolution = resolution
	return b
}

// WithContext sets subsystem, category and the context vendors
func (b *Builder) WithContext(cfg core.ContextConfig) *Builder {
	b.context = cfg
	return b
}

// WithSubsystem sets the context subsystem
func (b *Builder) WithSubsystem(subsystem string) *Builder {
	b.context.Subsystem = subsystem
	return b
}

// WithCategory sets the context category
func (b *Builder) WithCategory(category string) *Builder {
	b.context.Category = category
	return b
}

// WithDiagnostics sets the zap logger receiving internal failures
func (b *Builder) WithDiagnostics(l *zap.Logger) *Builder {
	b.diag = l
	return b
}

// WithCaller enables call-site capture (default: true)
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeSource = enabled
	return b
}

// WithCallerSkip adds frames to skip when capturing the call site, for
// helpers that wrap the logger.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = 2 + skip
	return b
}

// WithTimestamps prefixes every named level with a timestamp. It uses
// the levels configured so far.
func (b *Builder) WithTimestamps() *Builder {
	return b.WithModifiers(b.levels.All(), modifier.NewTimestamp())
}

// WithColoredTimestamps prefixes every named level with a timestamp and
// colours it per level. It uses the levels configured so far.
func (b *Builder) WithColoredTimestamps() *Builder {
	ts := modifier.NewTimestamp()
	for _, p := range []struct {
		level core.Level
		color *modifier.Color
	}{
		{b.levels.Debug, modifier.MustColor(modifier.RGB(153, 63, 255), nil)},
		{b.levels.Info, modifier.MustColor(modifier.RGB(45, 145, 255), nil)},
		{b.levels.Event, modifier.MustColor(modifier.RGB(136, 207, 8), nil)},
		{b.levels.Warn, modifier.MustColor(modifier.RGB(233, 165, 47), nil)},
		{b.levels.Error, modifier.MustColor(modifier.RGB(230, 20, 20), nil)},
	} {
		b.WithModifiers(p.level, ts, p.color)
	}
	return b
}

// Build validates the configuration and creates the Logger. Without
// routes every named level goes to a console writer on stdout.
func (b *Builder) Build() (*Logger, error) {
	if err := b.levels.Validate(); err != nil {
		return nil, errors.Wrap(err, "bitlog: invalid levels")
	}
	routes := b.routes
	if len(routes) == 0 {
		routes = []route{{mask: b.levels.All(), writers: []writer.Writer{writer.NewConsole(writer.ConsoleConfig{Levels: b.levels})}}}
	}
	var routeMask core.Level
	for i, r := range routes {
		if r.mask.IsOff() {
			return nil, errors.Errorf("bitlog: route %d has an empty level mask", i)
		}
		for j, w := range r.writers {
			if w == nil {
				return nil, errors.Errorf("bitlog: route %d writer %d is nil", i, j)
			}
		}
		routeMask |= r.mask
	}
	for i, m := range b.modifiers {
		for j, mod := range m.mods {
			if mod == nil {
				return nil, errors.Errorf("bitlog: modifier entry %d modifier %d is nil", i, j)
			}
		}
	}

	l := &Logger{state: &state{
		levels:        b.levels,
		routes:        routes,
		routeMask:     routeMask,
		modifiers:     b.modifiers,
		filters:       filter.NewChain(b.filters...),
		context:       b.context,
		diag:          diag.OrDefault(b.diag),
		includeSource: b.includeSource,
		callerSkip:    b.callerSkip,
		clock:         b.clock,
	}}
	l.enabled.Store(b.enabled)
	if len(b.attrs) > 0 {
		l = l.With(b.attrs...)
	}
	l.context.Levels = b.levels

	if l.clock == nil {
		l.clock = clock.New()
	}
	if b.coarseResolution > 0 {
		l.coarse = core.NewCoarseClock(l.clock, b.coarseResolution)
		l.coarse.Start()
		l.clock = l.coarse
	}

	switch {
	case b.exec != nil:
		l.exec = b.exec
	case b.async:
		l.exec = executor.NewSerial(executor.Config{DrainTimeout: b.drainTimeout, OnPanic: l.reportPanic})
		l.ownsExec = true
	default:
		l.exec = executor.NewSynchronous(executor.Config{OnPanic: l.reportPanic})
		l.ownsExec = true
	}
	return l, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Logger {
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Logger) reportPanic(r any) {
	l.diag.Error("executor task panicked", zap.String("panic", fmt.Sprint(r)))
}
