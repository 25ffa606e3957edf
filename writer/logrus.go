package writer

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/bitlog/core"
	"github.com/philipp01105/bitlog/modifier"
)

// LogrusConfig holds logrus writer configuration
type LogrusConfig struct {
	// Logger is the destination (default: logrus.StandardLogger())
	Logger *logrus.Logger
	// Levels maps bits to logrus levels (default: core.DefaultLevels())
	Levels core.Levels
	// Modifiers is the writer-owned modifier chain
	Modifiers modifier.Chain
}

// Logrus forwards records to a logrus.Logger
type Logrus struct {
	log    *logrus.Logger
	levels core.Levels
	mods   modifier.Chain
}

// NewLogrus creates a logrus writer
func NewLogrus(cfg LogrusConfig) *Logrus {
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return &Logrus{
		log:    cfg.Logger,
		levels: levelsOrDefault(cfg.Levels),
		mods:   cfg.Modifiers,
	}
}

// Modifiers implements ModifierWriter.
func (l *Logrus) Modifiers() modifier.Chain {
	return l.mods
}

// WriteMessage implements Writer.
func (l *Logrus) WriteMessage(rec *core.Record) error {
	lvl := logrusLevel(Classify(l.levels, rec.Level))
	if !l.log.IsLevelEnabled(lvl) {
		return nil
	}

	attrs := rec.Attributes()
	fields := make(logrus.Fields, len(attrs)+8)
	for k, v := range attrs {
		fields[k] = v
	}
	fields["level_name"] = l.levels.Name(rec.Level)

	entry := l.log.WithFields(fields)
	if ctx := rec.Context; ctx != nil {
		entry = entry.WithTime(ctx.Time()).WithFields(logrus.Fields{
			"file":     ctx.File,
			"function": ctx.Function,
			"line":     ctx.Line,
		})
		for _, key := range optionalContextKeys {
			if v, ok := ctx.Lookup(key); ok {
				entry = entry.WithField(key, v)
			}
		}
	}
	entry.Log(lvl, rec.Text)
	return nil
}

func logrusLevel(s Severity) logrus.Level {
	switch s {
	case SeverityDebug:
		return logrus.DebugLevel
	case SeverityWarn:
		return logrus.WarnLevel
	case SeverityError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
