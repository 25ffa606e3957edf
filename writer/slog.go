package writer

import (
	"context"
	"log/slog"

	"github.com/philipp01105/bitlog/core"
	"github.com/philipp01105/bitlog/modifier"
)

// LevelEvent is the slog level used for Event records, between
// slog.LevelInfo and slog.LevelWarn.
const LevelEvent = slog.Level(2)

// SlogConfig holds slog writer configuration
type SlogConfig struct {
	// Handler is the destination (default: slog.Default().Handler())
	Handler slog.Handler
	// Levels maps bits to slog levels (default: core.DefaultLevels())
	Levels core.Levels
	// Modifiers is the writer-owned modifier chain
	Modifiers modifier.Chain
}

// Slog forwards records to a slog.Handler
type Slog struct {
	handler slog.Handler
	levels  core.Levels
	mods    modifier.Chain
}

// NewSlog creates a slog writer
func NewSlog(cfg SlogConfig) *Slog {
	if cfg.Handler == nil {
		cfg.Handler = slog.Default().Handler()
	}
	return &Slog{
		handler: cfg.Handler,
		levels:  levelsOrDefault(cfg.Levels),
		mods:    cfg.Modifiers,
	}
}

// Modifiers implements ModifierWriter.
func (s *Slog) Modifiers() modifier.Chain {
	return s.mods
}

// WriteMessage implements Writer.
func (s *Slog) WriteMessage(rec *core.Record) error {
	lvl := slogLevel(Classify(s.levels, rec.Level))
	ctx := context.Background()
	if !s.handler.Enabled(ctx, lvl) {
		return nil
	}

	r := slog.NewRecord(timeOf(rec), lvl, rec.Text, 0)
	attrs := rec.Attributes()
	for _, k := range core.SortedKeys(attrs) {
		r.AddAttrs(slog.Any(k, attrs[k]))
	}
	if c := rec.Context; c != nil {
		r.AddAttrs(
			slog.String("file", c.File),
			slog.String("function", c.Function),
			slog.Uint64("line", uint64(c.Line)),
		)
		for _, key := range optionalContextKeys {
			if v, ok := c.Lookup(key); ok {
				r.AddAttrs(slog.String(key, v))
			}
		}
	}
	return s.handler.Handle(ctx, r)
}

func slogLevel(s Severity) slog.Level {
	switch s {
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityEvent:
		return LevelEvent
	case SeverityWarn:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
