package logger

import "github.com/philipp01105/bitlog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	OffLevel   = core.OffLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	EventLevel = core.EventLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	AllLevels  = core.AllLevels
)

// ParseLevel converts a string such as "info" or "warn|error" to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
