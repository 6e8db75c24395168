package logger

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

// ErrInvalidLevel is returned when a level name does not match any defined Level.
var ErrInvalidLevel = errors.New("invalid log level")

// Level is the severity of a log message.
// Levels are ordered: LevelDebug < LevelInfo < LevelWarning < LevelError < LevelFatal.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

var levelNames = [...]string{
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarning: "WARNING",
	LevelError:   "ERROR",
	LevelFatal:   "FATAL",
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= LevelDebug && l <= LevelFatal
}

// String implements the fmt.Stringer interface.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int32(l))
	}
	return levelNames[l]
}

// ParseLevel parses a level name, case-insensitively.
// Accepted names are debug, info, warning, error and fatal.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// atomicLevel holds a Level that may be read and written concurrently.
type atomicLevel struct {
	v atomic.Int32
}

func (a *atomicLevel) get() Level {
	return Level(a.v.Load())
}

func (a *atomicLevel) set(l Level) {
	a.v.Store(int32(l))
}
