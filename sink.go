package scriptrunner

import (
	"io"
)

// LineSink watches a CLI output stream while it's being drained.
//
// Every line the subprocess emits is captured in the Result regardless;
// a LineSink is for callers that want to see lines as they arrive, e.g.
// to print progress or to notice a particular line.
type LineSink interface {
	// Writer accepts one line of output, with the linefeed removed.
	//
	// A sink should return an error from Write only on some sort of
	// catastrophe.  The runner stops feeding a sink that errors, reports
	// ErrDrain from the run, and keeps draining the stream regardless;
	// a stalled reader would block the subprocess.
	io.Writer

	// Success returns true if the sink decided it saw what it wanted.
	// What that means is up to the implementation.
	Success() bool

	// Reset clears internal state.  Run calls it before each run.
	Reset()
}
