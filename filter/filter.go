package filter

import (
	"strings"

	"github.com/google/uuid"

	"github.com/philipp01105/bitlog/core"
)

// Filter decides whether an evaluated message is dispatched.
type Filter interface {
	// Name identifies the filter for removal
	Name() string
	// ShouldInclude returns false to drop the message
	ShouldInclude(msg core.Message, level core.Level) bool
}

// Predicate is the signature of a filter function
type Predicate func(msg core.Message, level core.Level) bool

type funcFilter struct {
	name string
	fn   Predicate
}

func (f *funcFilter) Name() string { return f.name }

func (f *funcFilter) ShouldInclude(msg core.Message, level core.Level) bool {
	return f.fn(msg, level)
}

// Named wraps fn in a Filter called name.
func Named(name string, fn Predicate) Filter {
	return &funcFilter{name: name, fn: fn}
}

// Func wraps fn in a Filter with a random unique name.
func Func(fn Predicate) Filter {
	return Named(uuid.NewString(), fn)
}

// ExcludeSubstring drops messages whose text, or event name, contains
// substr.
func ExcludeSubstring(name, substr string) Filter {
	return Named(name, func(msg core.Message, _ core.Level) bool {
		return !strings.Contains(msg.Name(), substr)
	})
}

// ExcludeAttribute drops structured messages whose attribute key
// renders to one of values. Text messages always pass.
func ExcludeAttribute(name, key string, values ...string) Filter {
	return Named(name, func(msg core.Message, _ core.Level) bool {
		v, ok := msg.Attributes()[key]
		if !ok {
			return true
		}
		rendered, ok := core.RenderAttribute(v)
		if !ok {
			return true
		}
		for _, excluded := range values {
			if rendered == excluded {
				return false
			}
		}
		return true
	})
}

// Levels drops messages whose level does not intersect mask.
func Levels(name string, mask core.Level) Filter {
	return Named(name, func(_ core.Message, level core.Level) bool {
		return level.Intersects(mask)
	})
}
