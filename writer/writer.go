package writer

import (
	"time"

	"github.com/philipp01105/bitlog/core"
	"github.com/philipp01105/bitlog/modifier"
)

// Writer is an output sink. rec.Text already carries every modifier the
// Logger applied for this writer.
type Writer interface {
	WriteMessage(rec *core.Record) error
}

// ModifierWriter is a Writer that owns a modifier chain. The Logger
// applies the chain once, after the level modifiers, before calling
// WriteMessage.
type ModifierWriter interface {
	Writer
	Modifiers() modifier.Chain
}

// Func adapts a function to Writer.
type Func func(rec *core.Record) error

// WriteMessage calls f.
func (f Func) WriteMessage(rec *core.Record) error {
	return f(rec)
}

// WithModifiers attaches a modifier chain to w.
func WithModifiers(w Writer, mods ...modifier.Modifier) ModifierWriter {
	return &modifierWriter{Writer: w, mods: mods}
}

type modifierWriter struct {
	Writer
	mods modifier.Chain
}

func (w *modifierWriter) Modifiers() modifier.Chain {
	return w.mods
}

// Close closes the wrapped writer when it supports closing.
func (w *modifierWriter) Close() error {
	return closeWriter(w.Writer)
}

func timeOf(rec *core.Record) time.Time {
	if rec.Context != nil {
		return rec.Context.Time()
	}
	return time.Now()
}
