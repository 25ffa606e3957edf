package core

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Level is a bit set of severities. A single-bit value names one
// severity; a multi-bit value is a mask used by routes and tables.
type Level uint32

const (
	// OffLevel is the empty set
	OffLevel Level = 0
	// DebugLevel for detailed debugging information
	DebugLevel Level = 1 << 0
	// InfoLevel for general informational messages
	InfoLevel Level = 1 << 1
	// EventLevel for notable application events
	EventLevel Level = 1 << 2
	// WarnLevel for warning messages
	WarnLevel Level = 1 << 3
	// ErrorLevel for error messages
	ErrorLevel Level = 1 << 4
	// AllLevels is the union of the predefined severities
	AllLevels = DebugLevel | InfoLevel | EventLevel | WarnLevel | ErrorLevel
)

// Union returns l combined with every level in others.
func (l Level) Union(others ...Level) Level {
	for _, o := range others {
		l |= o
	}
	return l
}

// Intersect returns the bits present in both l and o.
func (l Level) Intersect(o Level) Level {
	return l & o
}

// Intersects reports whether l and o share at least one bit.
func (l Level) Intersects(o Level) bool {
	return l&o != 0
}

// Xor returns the symmetric difference of l and o.
func (l Level) Xor(o Level) Level {
	return l ^ o
}

// Contains reports whether every bit of o is set in l.
func (l Level) Contains(o Level) bool {
	return l&o == o
}

// IsOff reports whether no bit is set.
func (l Level) IsOff() bool {
	return l == OffLevel
}

// String returns the name of a predefined level, or "Unknown".
func (l Level) String() string {
	switch l {
	case OffLevel:
		return "Off"
	case DebugLevel:
		return "Debug"
	case InfoLevel:
		return "Info"
	case EventLevel:
		return "Event"
	case WarnLevel:
		return "Warn"
	case ErrorLevel:
		return "Error"
	case AllLevels:
		return "All"
	default:
		return "Unknown"
	}
}

// MarshalText renders the level so ParseLevel can read it back.
// Composite masks are written as "debug|warn", custom bits in hex.
func (l Level) MarshalText() ([]byte, error) {
	if name := l.String(); name != "Unknown" {
		return []byte(strings.ToLower(name)), nil
	}
	var parts []string
	rest := l
	for _, named := range []Level{DebugLevel, InfoLevel, EventLevel, WarnLevel, ErrorLevel} {
		if rest.Contains(named) {
			parts = append(parts, strings.ToLower(named.String()))
			rest &^= named
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return []byte(strings.Join(parts, "|")), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel converts text to a Level. It accepts level names in any
// case, "|"-joined composites and numeric values for custom bits.
func ParseLevel(s string) (Level, error) {
	var out Level
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		switch strings.ToLower(part) {
		case "off", "none":
		case "debug":
			out |= DebugLevel
		case "info":
			out |= InfoLevel
		case "event":
			out |= EventLevel
		case "warn", "warning":
			out |= WarnLevel
		case "error":
			out |= ErrorLevel
		case "all":
			out |= AllLevels
		default:
			n, err := strconv.ParseUint(part, 0, 32)
			if err != nil {
				return OffLevel, errors.Errorf("bitlog: unknown level %q", part)
			}
			out |= Level(n)
		}
	}
	return out, nil
}
