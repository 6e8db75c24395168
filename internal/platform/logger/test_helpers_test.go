package logger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/lodge/internal/platform/logger"
)

func TestTestLogBuffer(t *testing.T) {
	buffer := &logger.TestLogBuffer{}

	data := []byte("first\nsecond\n")
	n, err := buffer.Write(data)
	assert.NoError(t, err)
	assert.Equal(t, len(data), n)

	assert.Equal(t, "first\nsecond\n", buffer.String())
	assert.Equal(t, len(data), buffer.Len())
	assert.Equal(t, []string{"first", "second"}, buffer.Lines())

	buffer.Reset()
	assert.Equal(t, "", buffer.String())
	assert.Nil(t, buffer.Lines())
}

func TestExitRecorder(t *testing.T) {
	rec := &logger.ExitRecorder{}
	assert.Empty(t, rec.Codes())

	rec.Exit(1)
	rec.Exit(2)

	assert.Equal(t, []int{1, 2}, rec.Codes())
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2020, time.January, 2, 3, 4, 5, 0, time.UTC)
	clock := logger.FixedClock(at)

	assert.Equal(t, at, clock())
	assert.Equal(t, at, clock())
}
