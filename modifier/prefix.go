package modifier

import "github.com/philipp01105/bitlog/core"

// Prefix tags every message with a component name: "[name] => message".
type Prefix struct {
	Name string
}

// NewPrefix creates a Prefix modifier
func NewPrefix(name string) *Prefix {
	return &Prefix{Name: name}
}

// Modify implements Modifier.
func (m *Prefix) Modify(message string, _ core.Level, _ *core.Context) string {
	return "[" + m.Name + "] => " + message
}
