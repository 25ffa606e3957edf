package logger

import (
	"time"

	"github.com/philipp01105/bitlog/core"
)

// Attr Re-export for building structured messages
type Attr = core.Attr

// Msg creates a structured message
func Msg(name string, attrs ...Attr) core.Message {
	return core.Msg(name, attrs...)
}

// String creates a string attribute
func String(key, val string) Attr { return core.String(key, val) }

// Int creates an int attribute
func Int(key string, val int) Attr { return core.Int(key, val) }

// Int64 creates an int64 attribute
func Int64(key string, val int64) Attr { return core.Int64(key, val) }

// Float64 creates a float64 attribute
func Float64(key string, val float64) Attr { return core.Float64(key, val) }

// Bool creates a bool attribute
func Bool(key string, val bool) Attr { return core.Bool(key, val) }

// Time creates a time attribute
func Time(key string, val time.Time) Attr { return core.Time(key, val) }

// Duration creates a duration attribute
func Duration(key string, val time.Duration) Attr { return core.Duration(key, val) }

// Err creates an error attribute
func Err(err error) Attr { return core.Err(err) }

// Any creates an attribute from any value
func Any(key string, val interface{}) Attr { return core.Any(key, val) }
