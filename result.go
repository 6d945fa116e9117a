package scriptrunner

import (
	"time"

	"github.com/pkg/errors"

	"github.com/monopole/scriptrunner/internal/lines"
)

// Result holds everything observed from one run of a Script.
type Result struct {
	RunID    string        // unique identifier for this run
	Lines    []string      // stdOut, split into lines
	Raw      []byte        // stdOut, exactly as received
	ErrLines []string      // stdErr, split into lines
	ExitCode int           // -1 if killed by a signal or never reaped
	State    string        // e.g. "exit status 1", "signal: killed"
	Duration time.Duration // spawn to reap
}

// Success is true if the subprocess exited with code zero.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// ExitErr returns an ErrUnexpectedExit error if the subprocess didn't
// exit cleanly, else nil.  Run doesn't treat a bad exit as failure
// unless told to; whether it matters is up to the caller.
func (r *Result) ExitErr() error {
	if r == nil || r.ExitCode == 0 {
		return nil
	}
	if r.State == "" {
		return newRunError(
			ErrUnexpectedExit, r.RunID, errors.Errorf("exit code %d", r.ExitCode))
	}
	return newRunError(ErrUnexpectedExit, r.RunID, errors.New(r.State))
}

// Output returns stdOut as a single string, each line terminated.
func (r *Result) Output() string {
	return lines.Join(r.Lines)
}
