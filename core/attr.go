package core

import (
	"encoding"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Attr is a key-value pair attached to a structured message.
type Attr struct {
	Key   string
	Value any
}

// String constructs a string attribute
func String(key, val string) Attr { return Attr{Key: key, Value: val} }

// Int constructs an int attribute
func Int(key string, val int) Attr { return Attr{Key: key, Value: val} }

// Int64 constructs an int64 attribute
func Int64(key string, val int64) Attr { return Attr{Key: key, Value: val} }

// Float64 constructs a float64 attribute
func Float64(key string, val float64) Attr { return Attr{Key: key, Value: val} }

// Bool constructs a bool attribute
func Bool(key string, val bool) Attr { return Attr{Key: key, Value: val} }

// Time constructs a time attribute
func Time(key string, val time.Time) Attr { return Attr{Key: key, Value: val} }

// Duration constructs a duration attribute
func Duration(key string, val time.Duration) Attr { return Attr{Key: key, Value: val} }

// Err constructs an attribute under the "error" key
func Err(err error) Attr { return Attr{Key: "error", Value: err} }

// Any constructs an attribute holding an arbitrary value
func Any(key string, val any) Attr { return Attr{Key: key, Value: val} }

// RenderAttribute returns the display form of an attribute value. It
// reports false for values without a sensible text form, such as nil,
// functions, channels, maps and plain structs.
func RenderAttribute(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case []byte:
		return string(val), true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int8:
		return strconv.FormatInt(int64(val), 10), true
	case int16:
		return strconv.FormatInt(int64(val), 10), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint:
		return strconv.FormatUint(uint64(val), 10), true
	case uint8:
		return strconv.FormatUint(uint64(val), 10), true
	case uint16:
		return strconv.FormatUint(uint64(val), 10), true
	case uint32:
		return strconv.FormatUint(uint64(val), 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case time.Time:
		return val.Format(time.RFC3339), true
	case time.Duration:
		return val.String(), true
	case error:
		return val.Error(), true
	case fmt.Stringer:
		return val.String(), true
	case encoding.TextMarshaler:
		b, err := val.MarshalText()
		if err != nil {
			return "", false
		}
		return string(b), true
	default:
		return "", false
	}
}

// SortedKeys returns the keys of attrs in lexical order.
func SortedKeys(attrs map[string]any) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
