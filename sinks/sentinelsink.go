package sinks

import (
	"bytes"

	"github.com/monopole/scriptrunner"
)

var _ scriptrunner.LineSink = &SentinelSink{}

// SentinelSink asserts Success if it sees Value anywhere in the output,
// e.g. the header a CLI prints before a tree dump.
type SentinelSink struct {
	Value   string // the sentinel value to look for, e.g. "Tree:".
	success bool   // internal state
	// match stores the entire winning line that contains Value.
	// Handy for debugging.
	match string
	// lineNum is the zero-based index of the winning line.
	lineNum int
	seen    int
}

// Write looks for Value anywhere in the line (so it had better be unambiguous).
// Only the first match is kept.
func (s *SentinelSink) Write(b []byte) (int, error) {
	if !s.success && bytes.Contains(b, []byte(s.Value)) {
		s.match = string(b)
		s.lineNum = s.seen
		s.success = true
	}
	s.seen++
	return len(b), nil
}

// Reset resets everything.
func (s *SentinelSink) Reset() {
	s.match = ""
	s.success = false
	s.lineNum = 0
	s.seen = 0
}

// Success returns true if Value found.
func (s *SentinelSink) Success() bool { return s.success }

// Match returns the winning line.
func (s *SentinelSink) Match() string { return s.match }

// LineNum returns the index of the winning line, meaningful only if
// Success is true.
func (s *SentinelSink) LineNum() int { return s.lineNum }
