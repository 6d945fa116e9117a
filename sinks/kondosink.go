package sinks

import "github.com/monopole/scriptrunner"

var _ scriptrunner.LineSink = &KondoSink{}

// KondoSink quietly discards everything sent to Write
// and always reports Success true.
type KondoSink struct{}

// Write accepts input to discard.
// Great place to debugging output.
func (s *KondoSink) Write(b []byte) (int, error) {
	// For debugging: fmt.Printf("Kondo saw: %q\n", string(b))
	return len(b), nil
}

// Success always returns true.
func (s *KondoSink) Success() bool { return true }

// Reset does nothing.
func (s *KondoSink) Reset() {}
