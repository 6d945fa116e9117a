package scriptrunner

import (
	"github.com/pkg/errors"
)

// Failure kinds reported by ScriptRunner.Run.  Match them with errors.Is;
// the error returned by Run also unwraps to the underlying OS error.
var (
	// ErrSpawn means the CLI subprocess could not be started at all.
	ErrSpawn = errors.New("subprocess could not be started")
	// ErrWrite means stdIn broke before every command was sent,
	// usually because the subprocess exited early.
	ErrWrite = errors.New("subprocess input closed before script was sent")
	// ErrDrain means stdOut or stdErr could not be read to the end,
	// or a sink refused a line.
	ErrDrain = errors.New("subprocess output could not be drained")
	// ErrFailedToTerminate means the subprocess was still running, or
	// still holding its output open, when the run's time expired.
	ErrFailedToTerminate = errors.New("subprocess failed to terminate")
	// ErrUnexpectedExit means the subprocess exited non-zero or by signal.
	ErrUnexpectedExit = errors.New("subprocess exited unexpectedly")
)

// RunError says which phase of a run failed, and why.
type RunError struct {
	Kind  error  // one of the Err* values above
	RunID string // identifies the run, see Result.RunID
	Err   error  // the cause
}

func (e *RunError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

// Unwrap returns the cause.
func (e *RunError) Unwrap() error { return e.Err }

// Is reports whether target is this error's Kind.
func (e *RunError) Is(target error) bool { return target == e.Kind }

func newRunError(kind error, runID string, cause error) *RunError {
	return &RunError{Kind: kind, RunID: runID, Err: cause}
}
