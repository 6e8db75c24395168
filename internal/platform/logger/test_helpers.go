package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/lodge/internal/config"
)

// TestLogBuffer is a thread-safe buffer for capturing log output in tests.
type TestLogBuffer struct {
	mu  sync.Mutex
	out bytes.Buffer
}

func (b *TestLogBuffer) locked(fn func(*bytes.Buffer)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(&b.out)
}

// Write implements io.Writer.
func (b *TestLogBuffer) Write(p []byte) (n int, err error) {
	b.locked(func(out *bytes.Buffer) { n, err = out.Write(p) })
	return n, err
}

// String returns everything written so far.
func (b *TestLogBuffer) String() (s string) {
	b.locked(func(out *bytes.Buffer) { s = out.String() })
	return s
}

// Reset discards the captured output.
func (b *TestLogBuffer) Reset() {
	b.locked(func(out *bytes.Buffer) { out.Reset() })
}

// Len returns the number of bytes written so far.
func (b *TestLogBuffer) Len() (n int) {
	b.locked(func(out *bytes.Buffer) { n = out.Len() })
	return n
}

// Lines returns the buffered output split into lines, without the
// trailing newline of each.
func (b *TestLogBuffer) Lines() []string {
	s := b.String()
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// ExitRecorder stands in for os.Exit in tests.
type ExitRecorder struct {
	mu    sync.Mutex
	codes []int
}

// Exit records code instead of terminating the process.
func (r *ExitRecorder) Exit(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = append(r.codes, code)
}

// Codes returns the exit codes recorded so far.
func (r *ExitRecorder) Codes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.codes...)
}

// TestLogger bundles a Logger with the buffers and exit recorder it writes to.
type TestLogger struct {
	*Logger
	Stdout *TestLogBuffer
	Stderr *TestLogBuffer
	Exits  *ExitRecorder
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SetupTestLogger creates a logger that writes to in-memory buffers and
// records exits instead of terminating. A non-empty cfg.Path is opened on
// the filesystem given by WithFs, or the OS filesystem without it. The
// logger is torn down when the test ends.
func SetupTestLogger(t *testing.T, cfg config.LoggerConfig, opts ...Option) *TestLogger {
	t.Helper()

	tl := &TestLogger{
		Stdout: &TestLogBuffer{},
		Stderr: &TestLogBuffer{},
		Exits:  &ExitRecorder{},
	}

	all := append([]Option{
		WithStdout(tl.Stdout),
		WithStderr(tl.Stderr),
		WithExit(tl.Exits.Exit),
	}, opts...)

	l, err := New(cfg, all...)
	if err != nil {
		t.Fatalf("Failed to create test logger: %v", err)
	}
	tl.Logger = l

	t.Cleanup(func() {
		if err := l.Teardown(); err != nil {
			t.Logf("Failed to tear down test logger: %v", err)
		}
	})

	return tl
}

// AssertLogContains checks if the log buffer contains specific content.
// If the content is not found, it fails the test with a useful message.
func AssertLogContains(t *testing.T, logBuf *TestLogBuffer, content string) {
	t.Helper()

	logs := logBuf.String()
	if !strings.Contains(logs, content) {
		t.Errorf("Expected log to contain %q, but it doesn't.\nLogs:\n%s", content, logs)
	}
}
