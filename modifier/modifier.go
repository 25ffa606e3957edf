package modifier

import (
	"bytes"
	"sync"

	"github.com/philipp01105/bitlog/core"
)

// Modifier transforms the text of a message before it reaches a writer.
type Modifier interface {
	Modify(message string, level core.Level, ctx *core.Context) string
}

// AttributeModifier is an optional interface for modifiers that need
// the attributes of a structured message. Chain.Apply prefers it.
type AttributeModifier interface {
	Modifier
	ModifyAttributes(message string, level core.Level, ctx *core.Context, attrs map[string]any) string
}

// Func adapts a function to Modifier.
type Func func(message string, level core.Level, ctx *core.Context) string

// Modify calls f.
func (f Func) Modify(message string, level core.Level, ctx *core.Context) string {
	return f(message, level, ctx)
}

// Chain is an ordered list of modifiers, each fed the previous output.
type Chain []Modifier

// Apply runs the chain over message.
func (c Chain) Apply(message string, level core.Level, ctx *core.Context, attrs map[string]any) string {
	for _, m := range c {
		message = Apply(m, message, level, ctx, attrs)
	}
	return message
}

// Apply runs a single modifier, passing attrs when it accepts them.
func Apply(m Modifier, message string, level core.Level, ctx *core.Context, attrs map[string]any) string {
	if am, ok := m.(AttributeModifier); ok {
		return am.ModifyAttributes(message, level, ctx, attrs)
	}
	return m.Modify(message, level, ctx)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(128)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
