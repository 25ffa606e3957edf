package logger

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/philipp01105/bitlog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger, so code written against log/slog can feed bitlog writers.
// Records with attributes become structured messages named after the
// record message.
type SlogHandler struct {
	logger *Logger
	attrs  map[string]any
	group  string
}

var _ slog.Handler = (*SlogHandler)(nil)

// SlogHandler returns a slog.Handler that logs through l
func (l *Logger) SlogHandler() *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the logger would schedule a record at level
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.IsLevelEnabled(s.levelFor(level))
}

// Handle schedules the record on the logger. The record's PC becomes
// the call site.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := s.levelFor(record.Level)
	attrs := make(map[string]any, len(s.attrs)+record.NumAttrs())
	for k, v := range s.attrs {
		attrs[k] = v
	}
	record.Attrs(func(a slog.Attr) bool {
		flatten(attrs, s.group, a)
		return true
	})

	name := record.Message
	produce := func() core.Message {
		if len(attrs) == 0 {
			return core.Text(name)
		}
		return core.NewMessage(name, attrs)
	}
	if !s.logger.admit(level, produce) {
		return nil
	}

	var src core.Source
	if s.logger.includeSource && record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		f, _ := frames.Next()
		src = core.Source{File: f.File, Function: f.Function, Line: uint(f.Line)}
	}
	s.logger.schedule(level, s.logger.withAttrs(produce), src)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make(map[string]any, len(s.attrs)+len(attrs))
	for k, v := range s.attrs {
		merged[k] = v
	}
	for _, a := range attrs {
		flatten(merged, s.group, a)
	}
	return &SlogHandler{logger: s.logger, attrs: merged, group: s.group}
}

// WithGroup returns a new SlogHandler that prefixes later keys with name
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	group := name
	if s.group != "" {
		group = s.group + "." + name
	}
	return &SlogHandler{logger: s.logger, attrs: s.attrs, group: group}
}

// levelFor maps a slog level onto the logger's named levels. The gap
// between info and warn carries the event level.
func (s *SlogHandler) levelFor(level slog.Level) core.Level {
	levels := s.logger.levels
	switch {
	case level >= slog.LevelError:
		return levels.Error
	case level >= slog.LevelWarn:
		return levels.Warn
	case level > slog.LevelInfo:
		return levels.Event
	case level >= slog.LevelInfo:
		return levels.Info
	default:
		return levels.Debug
	}
}

// flatten stores a under its dotted key, expanding groups recursively
func flatten(dst map[string]any, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			flatten(dst, key, ga)
		}
		return
	}
	dst[key] = a.Value.Any()
}
