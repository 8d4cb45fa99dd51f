package logging

import (
	"io"
	"os"
	"sync"
)

// swapWriter forwards to a writer that can be replaced while loggers hold
// a reference to the swapWriter itself.
type swapWriter struct {
	mu  sync.RWMutex
	dst io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	dst := s.dst
	s.mu.RUnlock()
	return dst.Write(p)
}

func (s *swapWriter) swap(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.dst
	s.dst = w
	return prev
}

func (s *swapWriter) current() io.Writer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dst
}

var stderrSink = &swapWriter{dst: os.Stderr}

// SetGlobalOutput redirects the stderr sink of every logger and returns the
// previous target. The dashboard sets it to io.Discard while it owns the
// terminal. Passing the sink itself is a no-op.
func SetGlobalOutput(w io.Writer) io.Writer {
	if w == nil {
		w = io.Discard
	}
	if sw, ok := w.(*swapWriter); ok && sw == stderrSink {
		return stderrSink.current()
	}
	return stderrSink.swap(w)
}

// GetGlobalOutput returns the writer loggers use for their stderr sink.
// Writes through it always reach the current target.
func GetGlobalOutput() io.Writer {
	return stderrSink
}
