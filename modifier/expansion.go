package modifier

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/philipp01105/bitlog/core"
	"github.com/philipp01105/bitlog/internal/diag"
)

// Missing replaces context placeholders that have no value.
const Missing = "missing"

var placeholder = regexp.MustCompile(`\{(attributes|context)\.([A-Za-z0-9_.\-]+)\}`)

// PropertyExpansion substitutes {attributes.<key>} and {context.<key>}
// placeholders. Context keys without a value become "missing";
// attribute placeholders that cannot be resolved are left untouched.
type PropertyExpansion struct {
	// Diagnostics receives a warning for every attribute that has no
	// text form (default: stderr)
	Diagnostics *zap.Logger
}

// NewPropertyExpansion creates a PropertyExpansion modifier.
func NewPropertyExpansion() *PropertyExpansion {
	return &PropertyExpansion{}
}

// Modify expands context placeholders only.
func (m *PropertyExpansion) Modify(message string, level core.Level, ctx *core.Context) string {
	return m.ModifyAttributes(message, level, ctx, nil)
}

// ModifyAttributes implements AttributeModifier.
func (m *PropertyExpansion) ModifyAttributes(message string, _ core.Level, ctx *core.Context, attrs map[string]any) string {
	return placeholder.ReplaceAllStringFunc(message, func(match string) string {
		sub := placeholder.FindStringSubmatch(match)
		scope, key := sub[1], sub[2]

		if scope == "context" {
			if v, ok := ctx.Lookup(key); ok {
				return v
			}
			return Missing
		}

		v, ok := attrs[key]
		if !ok {
			return match
		}
		rendered, ok := core.RenderAttribute(v)
		if !ok {
			diag.OrDefault(m.Diagnostics).Warn("skipping attribute without text form",
				zap.String("key", key),
				zap.String("type", fmt.Sprintf("%T", v)))
			return match
		}
		return rendered
	})
}
