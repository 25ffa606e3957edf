package core

import (
	"math"
	"strconv"
	"time"
)

// Vendor supplies a value for an optional context field at the moment
// a context is built.
type Vendor func() string

// ContextConfig carries the optional context inputs a Logger stamps
// onto every message.
type ContextConfig struct {
	// Levels names the context level (default: DefaultLevels())
	Levels        Levels
	Subsystem     string
	Category      string
	DeviceVendor  Vendor
	SessionVendor Vendor
	UserVendor    Vendor
}

// Context is the per-message metadata handed to modifiers and writers.
// Optional fields are nil when not configured.
type Context struct {
	Level     Level
	LevelName string  // resolved under the Logger's Levels
	Timestamp float64 // seconds since the Unix epoch
	File      string
	Function  string
	Line      uint
	Subsystem *string
	Category  *string
	Device    *string
	Session   *string
	User      *string
}

// NewContext builds the context of a single log call. Each configured
// vendor is invoked exactly once.
func NewContext(level Level, now time.Time, src Source, cfg ContextConfig) *Context {
	return &Context{
		Level:     level,
		LevelName: levelsOrDefault(cfg.Levels).Name(level),
		Timestamp: float64(now.UnixNano()) / float64(time.Second),
		File:      src.File,
		Function:  src.Function,
		Line:      src.Line,
		Subsystem: optional(cfg.Subsystem),
		Category:  optional(cfg.Category),
		Device:    vend(cfg.DeviceVendor),
		Session:   vend(cfg.SessionVendor),
		User:      vend(cfg.UserVendor),
	}
}

// Time converts Timestamp back into a time.Time, rounded to the
// microsecond.
func (c *Context) Time() time.Time {
	sec, frac := math.Modf(c.Timestamp)
	us := math.Round(frac * 1e6)
	return time.Unix(int64(sec), int64(us)*int64(time.Microsecond))
}

// Lookup returns the display value of the named field. The boolean is
// false for unknown names and for optional fields that are absent.
func (c *Context) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	switch key {
	case "level", "logLevel":
		return c.levelName(), true
	case "timestamp":
		return strconv.FormatFloat(c.Timestamp, 'f', -1, 64), true
	case "file":
		return c.File, true
	case "function":
		return c.Function, true
	case "line":
		return strconv.FormatUint(uint64(c.Line), 10), true
	case "subsystem":
		return deref(c.Subsystem)
	case "category":
		return deref(c.Category)
	case "device":
		return deref(c.Device)
	case "session":
		return deref(c.Session)
	case "user":
		return deref(c.User)
	default:
		return "", false
	}
}

// levelName falls back to the predefined names for contexts built
// without NewContext.
func (c *Context) levelName() string {
	if c.LevelName != "" {
		return c.LevelName
	}
	return c.Level.String()
}

func levelsOrDefault(ls Levels) Levels {
	if ls == (Levels{}) {
		return DefaultLevels()
	}
	return ls
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func vend(v Vendor) *string {
	if v == nil {
		return nil
	}
	s := v()
	return &s
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
