package logger

import (
	"sync/atomic"

	"github.com/phrazzld/lodge/internal/config"
)

var defaultLogger atomic.Pointer[Logger]

// Default returns the process default logger. Until SetDefault is called it
// is a thread-safe logger writing to standard output at info level.
func Default() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l, err := New(config.LoggerConfig{ThreadSafe: true})
	if err != nil {
		// Unreachable: a stdout logger opens no files.
		panic(err)
	}
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	return defaultLogger.Load()
}

// SetDefault makes l the process default logger. It does not tear down the
// previous default.
func SetDefault(l *Logger) {
	if l == nil {
		panic("logger: SetDefault called with nil logger")
	}
	defaultLogger.Store(l)
}

// Debugf logs at LevelDebug on the default logger.
func Debugf(format string, args ...any) { Default().Debugf(format, args...) }

// Infof logs at LevelInfo on the default logger.
func Infof(format string, args ...any) { Default().Infof(format, args...) }

// Warningf logs at LevelWarning on the default logger.
func Warningf(format string, args ...any) { Default().Warningf(format, args...) }

// Errorf logs at LevelError on the default logger.
func Errorf(format string, args ...any) { Default().Errorf(format, args...) }

// Fatalf logs at LevelFatal on the default logger, then tears it down and
// exits with status 1.
func Fatalf(format string, args ...any) { Default().Fatalf(format, args...) }
