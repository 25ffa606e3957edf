package logger

import (
	"sync"

	"github.com/philipp01105/bitlog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Synchronous, every named level to stdout
	defaultLogger = NewBuilder().MustBuild()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger. Each
// calls logAt directly so the captured call site is the caller's.

// Debug logs fn() at the debug level using the default logger
func Debug(fn func() string) {
	d := Default()
	d.logAt(d.levels.Debug, textProducer(fn))
}

// Info logs fn() at the info level using the default logger
func Info(fn func() string) {
	d := Default()
	d.logAt(d.levels.Info, textProducer(fn))
}

// Event logs fn() at the event level using the default logger
func Event(fn func() string) {
	d := Default()
	d.logAt(d.levels.Event, textProducer(fn))
}

// Warn logs fn() at the warn level using the default logger
func Warn(fn func() string) {
	d := Default()
	d.logAt(d.levels.Warn, textProducer(fn))
}

// Error logs fn() at the error level using the default logger
func Error(fn func() string) {
	d := Default()
	d.logAt(d.levels.Error, textProducer(fn))
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	d := Default()
	d.logAt(d.levels.Debug, formatProducer(format, args))
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	d := Default()
	d.logAt(d.levels.Info, formatProducer(format, args))
}

// Eventf logs a formatted event message using the default logger
func Eventf(format string, args ...interface{}) {
	d := Default()
	d.logAt(d.levels.Event, formatProducer(format, args))
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	d := Default()
	d.logAt(d.levels.Warn, formatProducer(format, args))
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	d := Default()
	d.logAt(d.levels.Error, formatProducer(format, args))
}

// LogMessage logs a structured message using the default logger
func LogMessage(level core.Level, msg core.Message) {
	d := Default()
	d.logAt(level, valueProducer(msg))
}
