package writer

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/bitlog/core"
	"github.com/philipp01105/bitlog/modifier"
)

// ZapConfig holds zap writer configuration
type ZapConfig struct {
	// Logger is the destination (default: zap.NewNop())
	Logger *zap.Logger
	// Levels maps bits to zap levels (default: core.DefaultLevels())
	Levels core.Levels
	// Modifiers is the writer-owned modifier chain
	Modifiers modifier.Chain
}

// Zap forwards records to a zap.Logger. Event maps to info; the bitlog
// level name is kept in the "level_name" field.
type Zap struct {
	log    *zap.Logger
	levels core.Levels
	mods   modifier.Chain
}

// NewZap creates a zap writer
func NewZap(cfg ZapConfig) *Zap {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Zap{
		log:    cfg.Logger,
		levels: levelsOrDefault(cfg.Levels),
		mods:   cfg.Modifiers,
	}
}

// Modifiers implements ModifierWriter.
func (z *Zap) Modifiers() modifier.Chain {
	return z.mods
}

// WriteMessage implements Writer.
func (z *Zap) WriteMessage(rec *core.Record) error {
	ce := z.log.Check(zapLevel(Classify(z.levels, rec.Level)), rec.Text)
	if ce == nil {
		return nil
	}
	if rec.Context != nil {
		ce.Time = rec.Context.Time()
	}

	attrs := rec.Attributes()
	fields := make([]zap.Field, 0, len(attrs)+6)
	fields = append(fields, zap.String("level_name", z.levels.Name(rec.Level)))
	if rec.Message != nil && !core.IsText(rec.Message) {
		fields = append(fields, zap.String("event", rec.Message.Name()))
	}
	for _, k := range core.SortedKeys(attrs) {
		fields = append(fields, zap.Any(k, attrs[k]))
	}
	fields = append(fields, contextFields(rec.Context)...)
	ce.Write(fields...)
	return nil
}

// Sync flushes the underlying logger
func (z *Zap) Sync() error {
	return z.log.Sync()
}

func zapLevel(s Severity) zapcore.Level {
	switch s {
	case SeverityDebug:
		return zapcore.DebugLevel
	case SeverityWarn:
		return zapcore.WarnLevel
	case SeverityError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func contextFields(ctx *core.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	fields := []zap.Field{
		zap.String("file", ctx.File),
		zap.String("function", ctx.Function),
		zap.Uint("line", ctx.Line),
	}
	for _, key := range optionalContextKeys {
		if v, ok := ctx.Lookup(key); ok {
			fields = append(fields, zap.String(key, v))
		}
	}
	return fields
}

var optionalContextKeys = []string{"subsystem", "category", "device", "session", "user"}
