package writer

import "github.com/philipp01105/bitlog/core"

// Severity is the coarse rank a sink backend understands.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityEvent
	SeverityWarn
	SeverityError
)

// String returns the lower-case severity name
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityEvent:
		return "event"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Classify ranks level under levels. A mask takes its most severe bit;
// custom bits rank as info.
func Classify(levels core.Levels, level core.Level) Severity {
	switch {
	case level.Intersects(levels.Error):
		return SeverityError
	case level.Intersects(levels.Warn):
		return SeverityWarn
	case level.Intersects(levels.Event):
		return SeverityEvent
	case level.Intersects(levels.Info):
		return SeverityInfo
	case level.Intersects(levels.Debug):
		return SeverityDebug
	default:
		return SeverityInfo
	}
}

func levelsOrDefault(ls core.Levels) core.Levels {
	if ls == (core.Levels{}) {
		return core.DefaultLevels()
	}
	return ls
}
