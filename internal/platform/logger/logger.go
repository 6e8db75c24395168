package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/afero"

	"github.com/phrazzld/lodge/internal/config"
)

// TimestampLayout is the layout of the optional line prefix, in local time.
const TimestampLayout = "2006-01-02 15:04:05"

// Logger writes leveled lines to a single sink.
//
// A Logger is created by New or Initialize and released by Teardown.
// SetLevel and ToggleTimestamp may be called at any time; emissions in
// flight observe either the old or the new value.
type Logger struct {
	level     atomicLevel
	timestamp atomic.Bool
	closed    atomic.Bool

	// guard serializes emission and teardown. It is a no-op unless the
	// logger was built with thread safety.
	guard sync.Locker
	sink  sink
	path  string

	stderr io.Writer
	exit   func(int)
	now    func() time.Time
}

type options struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	exit   func(int)
	now    func() time.Time
}

// Option customizes the environment a Logger runs in.
type Option func(*options)

// WithFs sets the filesystem used to open the log file.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithStdout sets the writer used when no log file is configured.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithStderr sets the writer that receives the logger's own diagnostics.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// WithExit replaces os.Exit for fatal paths.
func WithExit(fn func(int)) Option {
	return func(o *options) { o.exit = fn }
}

// WithClock sets the time source for timestamps.
func WithClock(fn func() time.Time) Option {
	return func(o *options) { o.now = fn }
}

func newOptions(opts []Option) *options {
	o := &options{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New creates a Logger from cfg. If cfg.Path is set the file is opened for
// appending, and created if it does not exist; otherwise lines go to
// standard output.
func New(cfg config.LoggerConfig, opts ...Option) (*Logger, error) {
	return newLogger(cfg, newOptions(opts))
}

// Initialize is like New but treats any failure as fatal: the error is
// reported on stderr and the process exits with status 1.
func Initialize(cfg config.LoggerConfig, opts ...Option) *Logger {
	o := newOptions(opts)
	l, err := newLogger(cfg, o)
	if err != nil {
		fmt.Fprintf(o.stderr, "lodge: failed to initialize logger: %v\n", err)
		o.exit(1)
		return nil
	}
	return l
}

func newLogger(cfg config.LoggerConfig, o *options) (*Logger, error) {
	level := LevelInfo
	if cfg.Level != "" {
		var err error
		if level, err = ParseLevel(cfg.Level); err != nil {
			return nil, err
		}
	}

	l := &Logger{
		guard:  noopLocker{},
		path:   cfg.Path,
		stderr: o.stderr,
		exit:   o.exit,
		now:    o.now,
	}
	if cfg.ThreadSafe {
		l.guard = &sync.Mutex{}
	}
	l.level.set(level)
	l.timestamp.Store(!cfg.DisableTimestamp)

	if cfg.Path == "" {
		l.sink = consoleSink{w: o.stdout}
		return l, nil
	}

	fsink, err := openFileSink(o.fs, cfg.Path)
	if err != nil {
		return nil, err
	}
	l.sink = fsink
	return l, nil
}

// SetLevel sets the minimum level a message needs to be written.
// An undefined level is a fatal configuration error.
func (l *Logger) SetLevel(level Level) {
	if !level.Valid() {
		l.die("invalid minimum level %v", level)
		return
	}
	l.level.set(level)
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	return l.level.get()
}

// ToggleTimestamp flips whether lines carry a timestamp prefix.
func (l *Logger) ToggleTimestamp() {
	for {
		old := l.timestamp.Load()
		if l.timestamp.CompareAndSwap(old, !old) {
			return
		}
	}
}

// TimestampEnabled reports whether lines currently carry a timestamp prefix.
func (l *Logger) TimestampEnabled() bool {
	return l.timestamp.Load()
}

// Path returns the log file path, or "" when logging to standard output.
func (l *Logger) Path() string {
	return l.path
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level.get()
}

// Log formats a message with fmt.Sprintf semantics and writes it at level.
// Messages below the minimum level return without taking the guard.
func (l *Logger) Log(level Level, format string, args ...any) {
	if !level.Valid() {
		l.die("invalid message level %v", level)
		return
	}
	if !l.Enabled(level) {
		return
	}
	l.write(level, fmt.Sprintf(format, args...))
}

// Debugf logs at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) {
	l.Log(LevelDebug, format, args...)
}

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...any) {
	l.Log(LevelInfo, format, args...)
}

// Warningf logs at LevelWarning.
func (l *Logger) Warningf(format string, args ...any) {
	l.Log(LevelWarning, format, args...)
}

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, args ...any) {
	l.Log(LevelError, format, args...)
}

// Fatalf logs at LevelFatal, tears the logger down and exits with status 1.
//
// Teardown holds the guard, so in thread-safe mode other goroutines either
// finish their line first or find the logger closed and drop theirs.
func (l *Logger) Fatalf(format string, args ...any) {
	l.Log(LevelFatal, format, args...)
	l.fatalExit()
}

func (l *Logger) fatalExit() {
	if err := l.Teardown(); err != nil {
		fmt.Fprintf(l.stderr, "lodge: teardown: %v\n", err)
	}
	l.exit(1)
}

// Teardown flushes and closes the log file, if any, and marks the logger
// closed. Lines emitted afterwards are dropped. Calling Teardown more than
// once is a no-op.
func (l *Logger) Teardown() error {
	l.guard.Lock()
	defer l.guard.Unlock()

	if l.closed.Swap(true) {
		return nil
	}
	return l.sink.close()
}

func (l *Logger) write(level Level, msg string) {
	l.guard.Lock()
	defer l.guard.Unlock()

	if l.closed.Load() {
		return
	}

	buf := make([]byte, 0, len(TimestampLayout)+len(msg)+16)
	if l.timestamp.Load() {
		buf = l.now().Local().AppendFormat(buf, TimestampLayout)
		buf = append(buf, ' ')
	}
	buf = append(buf, '[')
	buf = append(buf, level.String()...)
	buf = append(buf, "]: "...)
	buf = append(buf, msg...)
	buf = append(buf, '\n')

	if _, err := l.sink.Write(buf); err != nil {
		fmt.Fprintf(l.stderr, "lodge: write log line: %v\n", err)
		return
	}
	if err := l.sink.flush(); err != nil {
		fmt.Fprintf(l.stderr, "lodge: flush log line: %v\n", err)
	}
}

func (l *Logger) die(format string, args ...any) {
	fmt.Fprintf(l.stderr, "lodge: "+format+"\n", args...)
	l.exit(1)
}

type noopLocker struct{}

func (noopLocker) Lock() {}

func (noopLocker) Unlock() {}
