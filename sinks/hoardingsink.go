package sinks

import (
	"bytes"

	"github.com/monopole/scriptrunner"
)

// HoardingSink keeps everything sent into Write.
// Handy for tests, debugging etc.
type HoardingSink struct {
	data  bytes.Buffer
	count int
	KondoSink
}

var _ scriptrunner.LineSink = &HoardingSink{}

// Write accepts a line to store in a buffer.
func (s *HoardingSink) Write(b []byte) (int, error) {
	n, err := s.data.Write(b)
	if err != nil {
		return n, err
	}
	s.count++
	// Restore the LineFeed that was stripped by the runner.
	return n, s.data.WriteByte('\n')
}

// Reset clears the internal buffer.
func (s *HoardingSink) Reset() {
	s.data.Reset()
	s.count = 0
}

// Result returns the buffer contents as a string.
func (s *HoardingSink) Result() string { return s.data.String() }

// Count returns the number of lines seen.
func (s *HoardingSink) Count() int { return s.count }
