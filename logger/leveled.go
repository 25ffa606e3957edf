package logger

import "github.com/philipp01105/bitlog/core"

// Leveled is the calling surface of a Logger. Accept it where a
// component may run without logging and pass Nop().
type Leveled interface {
	Debug(fn func() string)
	Info(fn func() string)
	Event(fn func() string)
	Warn(fn func() string)
	Error(fn func() string)
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Eventf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	DebugMessage(msg core.Message)
	InfoMessage(msg core.Message)
	EventMessage(msg core.Message)
	WarnMessage(msg core.Message)
	ErrorMessage(msg core.Message)
	Log(level core.Level, fn func() string)
	LogMessage(level core.Level, msg core.Message)
}

var _ Leveled = (*Logger)(nil)
var _ Leveled = nopLogger{}

// Nop returns a Leveled that discards everything without evaluating
// any producer.
func Nop() Leveled {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(func() string)                 {}
func (nopLogger) Info(func() string)                  {}
func (nopLogger) Event(func() string)                 {}
func (nopLogger) Warn(func() string)                  {}
func (nopLogger) Error(func() string)                 {}
func (nopLogger) Debugf(string, ...interface{})       {}
func (nopLogger) Infof(string, ...interface{})        {}
func (nopLogger) Eventf(string, ...interface{})       {}
func (nopLogger) Warnf(string, ...interface{})        {}
func (nopLogger) Errorf(string, ...interface{})       {}
func (nopLogger) DebugMessage(core.Message)           {}
func (nopLogger) InfoMessage(core.Message)            {}
func (nopLogger) EventMessage(core.Message)           {}
func (nopLogger) WarnMessage(core.Message)            {}
func (nopLogger) ErrorMessage(core.Message)           {}
func (nopLogger) Log(core.Level, func() string)       {}
func (nopLogger) LogMessage(core.Level, core.Message) {}
