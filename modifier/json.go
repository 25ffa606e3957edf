package modifier

import (
	"fmt"

	"github.com/valyala/fastjson"
	"go.uber.org/zap"

	"github.com/philipp01105/bitlog/core"
	"github.com/philipp01105/bitlog/internal/diag"
)

var arenaPool fastjson.ArenaPool

// JSON replaces the message with a JSON object holding the message
// name, its attributes rendered as strings (sorted by key) and, when a
// context is present, level, file, function, line, subsystem and
// category.
type JSON struct {
	// Diagnostics receives a warning for every skipped attribute
	Diagnostics *zap.Logger
}

// NewJSON creates a JSON modifier
func NewJSON() *JSON {
	return &JSON{}
}

// Modify renders message without attributes.
func (m *JSON) Modify(message string, level core.Level, ctx *core.Context) string {
	return m.ModifyAttributes(message, level, ctx, nil)
}

// ModifyAttributes implements AttributeModifier.
func (m *JSON) ModifyAttributes(message string, _ core.Level, ctx *core.Context, attrs map[string]any) string {
	a := arenaPool.Get()
	defer arenaPool.Put(a)

	obj := a.NewObject()
	obj.Set("name", a.NewString(message))

	if len(attrs) > 0 {
		attrObj := a.NewObject()
		n := 0
		for _, k := range core.SortedKeys(attrs) {
			s, ok := core.RenderAttribute(attrs[k])
			if !ok {
				diag.OrDefault(m.Diagnostics).Warn("skipping attribute without text form",
					zap.String("key", k),
					zap.String("type", fmt.Sprintf("%T", attrs[k])))
				continue
			}
			attrObj.Set(k, a.NewString(s))
			n++
		}
		if n > 0 {
			obj.Set("attributes", attrObj)
		}
	}

	if ctx != nil {
		level, _ := ctx.Lookup("level")
		obj.Set("level", a.NewString(level))
		obj.Set("file", a.NewString(ctx.File))
		obj.Set("function", a.NewString(ctx.Function))
		obj.Set("line", a.NewNumberInt(int(ctx.Line)))
		if ctx.Subsystem != nil {
			obj.Set("subsystem", a.NewString(*ctx.Subsystem))
		}
		if ctx.Category != nil {
			obj.Set("category", a.NewString(*ctx.Category))
		}
	}

	buf := getBuffer()
	defer putBuffer(buf)
	b := obj.MarshalTo(buf.AvailableBuffer())
	return string(b)
}
