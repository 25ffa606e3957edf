package core

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Levels holds the bit backing each named severity. A Logger resolves
// its Levels once at construction; use it to remap the named levels
// onto other bits without touching process-wide state.
type Levels struct {
	Debug Level
	Info  Level
	Event Level
	Warn  Level
	Error Level
}

// DefaultLevels returns the predefined bit assignment.
func DefaultLevels() Levels {
	return Levels{
		Debug: DebugLevel,
		Info:  InfoLevel,
		Event: EventLevel,
		Warn:  WarnLevel,
		Error: ErrorLevel,
	}
}

// All returns the union of the configured severities.
func (ls Levels) All() Level {
	return ls.Debug | ls.Info | ls.Event | ls.Warn | ls.Error
}

// Name returns the severity name for l under this assignment.
func (ls Levels) Name(l Level) string {
	switch l {
	case OffLevel:
		return "Off"
	case ls.Debug:
		return "Debug"
	case ls.Info:
		return "Info"
	case ls.Event:
		return "Event"
	case ls.Warn:
		return "Warn"
	case ls.Error:
		return "Error"
	case ls.All():
		return "All"
	default:
		return "Unknown"
	}
}

// Validate checks that every severity occupies exactly one bit and no
// two severities share a bit.
func (ls Levels) Validate() error {
	named := []struct {
		name  string
		level Level
	}{
		{"debug", ls.Debug},
		{"info", ls.Info},
		{"event", ls.Event},
		{"warn", ls.Warn},
		{"error", ls.Error},
	}
	var seen Level
	for _, n := range named {
		if bits.OnesCount32(uint32(n.level)) != 1 {
			return errors.Errorf("bitlog: %s level %#x must be a single bit", n.name, uint32(n.level))
		}
		if seen.Intersects(n.level) {
			return errors.Errorf("bitlog: %s level %#x collides with another level", n.name, uint32(n.level))
		}
		seen |= n.level
	}
	return nil
}
