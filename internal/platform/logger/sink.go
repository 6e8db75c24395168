package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// sink is the destination a formatted line is written to.
type sink interface {
	io.Writer
	// flush makes previously written lines visible to readers of the destination.
	flush() error
	close() error
}

// consoleSink writes to standard output. It is never force-flushed and
// closing it leaves the underlying stream open.
type consoleSink struct {
	w io.Writer
}

func (s consoleSink) Write(p []byte) (int, error) { return s.w.Write(p) }

func (consoleSink) flush() error { return nil }

func (consoleSink) close() error { return nil }

// fileSink appends to a file. Every line is flushed as soon as it is written.
type fileSink struct {
	f   afero.File
	buf *bufio.Writer
}

func openFileSink(fs afero.Fs, path string) (*fileSink, error) {
	f, err := fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", path, err)
	}
	return &fileSink{f: f, buf: bufio.NewWriter(f)}, nil
}

func (s *fileSink) Write(p []byte) (int, error) { return s.buf.Write(p) }

func (s *fileSink) flush() error { return s.buf.Flush() }

func (s *fileSink) close() error {
	var result *multierror.Error
	if err := s.buf.Flush(); err != nil {
		result = multierror.Append(result, fmt.Errorf("flush log file: %w", err))
	}
	if err := s.f.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("close log file: %w", err))
	}
	return result.ErrorOrNil()
}
