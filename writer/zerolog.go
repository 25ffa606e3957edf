package writer

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/bitlog/core"
	"github.com/philipp01105/bitlog/modifier"
)

// ZerologConfig holds zerolog writer configuration
type ZerologConfig struct {
	// Logger is the destination
	Logger zerolog.Logger
	// Levels maps bits to zerolog levels (default: core.DefaultLevels())
	Levels core.Levels
	// Modifiers is the writer-owned modifier chain
	Modifiers modifier.Chain
}

// Zerolog forwards records to a zerolog.Logger
type Zerolog struct {
	log    zerolog.Logger
	levels core.Levels
	mods   modifier.Chain
}

// NewZerolog creates a zerolog writer
func NewZerolog(cfg ZerologConfig) *Zerolog {
	return &Zerolog{
		log:    cfg.Logger,
		levels: levelsOrDefault(cfg.Levels),
		mods:   cfg.Modifiers,
	}
}

// Modifiers implements ModifierWriter.
func (z *Zerolog) Modifiers() modifier.Chain {
	return z.mods
}

// WriteMessage implements Writer.
func (z *Zerolog) WriteMessage(rec *core.Record) error {
	ev := z.log.WithLevel(zerologLevel(Classify(z.levels, rec.Level)))
	if ev == nil {
		return nil
	}
	ev = ev.Str("level_name", z.levels.Name(rec.Level))
	if attrs := rec.Attributes(); len(attrs) > 0 {
		ev = ev.Fields(attrs)
	}
	if ctx := rec.Context; ctx != nil {
		ev = ev.Time("ts", ctx.Time()).
			Str("file", ctx.File).
			Str("function", ctx.Function).
			Uint("line", ctx.Line)
		for _, key := range optionalContextKeys {
			if v, ok := ctx.Lookup(key); ok {
				ev = ev.Str(key, v)
			}
		}
	}
	ev.Msg(rec.Text)
	return nil
}

func zerologLevel(s Severity) zerolog.Level {
	switch s {
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityWarn:
		return zerolog.WarnLevel
	case SeverityError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
