package logger

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// SlogLevelFatal is the slog level that maps onto LevelFatal.
const SlogLevelFatal = slog.LevelError + 4

// Handler is a slog.Handler that writes records through a Logger, so code
// using log/slog shares the logger's sink, level and line format.
//
// Attributes are appended to the message text as key=value pairs. Records
// at SlogLevelFatal or above terminate the process the same way Fatalf does.
type Handler struct {
	logger *Logger
	// Attributes added with WithAttrs, already rendered.
	preformatted []byte
	// Dotted prefix of open groups, e.g. "req.headers.".
	groupPrefix string
}

// NewHandler creates a Handler writing to l.
func NewHandler(l *Logger) *Handler {
	return &Handler{logger: l}
}

// Enabled implements the slog.Handler interface.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(levelFromSlog(level))
}

// WithAttrs implements the slog.Handler interface.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.preformatted = append([]byte(nil), h.preformatted...)
	for _, a := range attrs {
		h2.preformatted = appendAttr(h2.preformatted, h.groupPrefix, a)
	}
	return &h2
}

// WithGroup implements the slog.Handler interface.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groupPrefix = h.groupPrefix + name + "."
	return &h2
}

// Handle implements the slog.Handler interface.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	level := levelFromSlog(record.Level)

	buf := make([]byte, 0, len(record.Message)+len(h.preformatted)+32)
	buf = append(buf, record.Message...)
	buf = append(buf, h.preformatted...)
	record.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.groupPrefix, a)
		return true
	})

	h.logger.Log(level, "%s", buf)
	if level == LevelFatal {
		h.logger.fatalExit()
	}
	return nil
}

func levelFromSlog(level slog.Level) Level {
	switch {
	case level < slog.LevelInfo:
		return LevelDebug
	case level < slog.LevelWarn:
		return LevelInfo
	case level < slog.LevelError:
		return LevelWarning
	case level < SlogLevelFatal:
		return LevelError
	default:
		return LevelFatal
	}
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, groupPrefix, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	return appendValue(buf, a.Value.String())
}

func appendValue(buf []byte, s string) []byte {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}
