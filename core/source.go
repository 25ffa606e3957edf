package core

import (
	"runtime"
	"strconv"
)

// Source identifies the call site of a log statement.
type Source struct {
	File     string
	Function string
	Line     uint
	Column   uint
}

// String renders the source as "file:line.column function".
func (s Source) String() string {
	return s.File + ":" + strconv.FormatUint(uint64(s.Line), 10) + "." +
		strconv.FormatUint(uint64(s.Column), 10) + " " + s.Function
}

// IsZero reports whether no call site was recorded.
func (s Source) IsZero() bool {
	return s == Source{}
}

// Caller captures the call site skip frames above the caller of
// Caller. The runtime does not expose columns, so Column is zero.
func Caller(skip int) Source {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Source{}
	}

	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}

	return Source{
		File:     file,
		Function: funcName,
		Line:     uint(line),
	}
}
