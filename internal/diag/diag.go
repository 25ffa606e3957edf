// Package diag builds the zap logger bitlog uses to report its own
// failures: panicking writers, unrenderable attributes, aborted calls.
package diag

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	defaultOnce sync.Once
	defaultLog  *zap.Logger
)

// New returns a console-encoded logger writing warnings and errors to w.
func New(w zapcore.WriteSyncer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "ts"
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), w, zap.WarnLevel)
	return zap.New(core).Named("bitlog")
}

// Default returns the shared diagnostics logger on stderr.
func Default() *zap.Logger {
	defaultOnce.Do(func() {
		defaultLog = New(zapcore.Lock(os.Stderr))
	})
	return defaultLog
}

// OrDefault returns l, or Default when l is nil.
func OrDefault(l *zap.Logger) *zap.Logger {
	if l == nil {
		return Default()
	}
	return l
}
