package sinks

import (
	"fmt"
	"io"

	"github.com/monopole/scriptrunner"
)

var _ scriptrunner.LineSink = &PrintingSink{}

// PrintingSink echos everything to a writer, optionally with a prefix.
// Useful for watching a long script as it runs.
type PrintingSink struct {
	out    io.Writer
	prefix string
	KondoSink
}

// NewPrintingSink returns a new instance of PrintingSink.
func NewPrintingSink(o io.Writer, prefix string) *PrintingSink {
	return &PrintingSink{out: o, prefix: prefix}
}

// Write accepts input to print.
func (s *PrintingSink) Write(b []byte) (int, error) {
	if _, err := fmt.Fprintf(s.out, "%s%s\n", s.prefix, b); err != nil {
		return 0, err
	}
	return len(b), nil
}
