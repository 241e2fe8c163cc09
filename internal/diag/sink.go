package diag

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives rendered report lines.
type Sink interface {
	Emit(line string)
}

// WriterSink writes each line to W followed by a newline. Write errors are
// kept and reported by Err.
type WriterSink struct {
	W   io.Writer
	err error
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{W: w}
}

func (s *WriterSink) Emit(line string) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.W, line)
}

func (s *WriterSink) Err() error {
	return s.err
}

// Lines collects emitted lines in memory. It is safe for concurrent use.
type Lines struct {
	mu    sync.Mutex
	lines []string
}

func (l *Lines) Emit(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

// All returns a copy of the lines emitted so far.
func (l *Lines) All() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Discard drops every line.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(string) {}
