package scriptrunner

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultTimeout bounds a run when Parameters.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Parameters is a bag of parameters for ScriptRunner.
type Parameters struct {
	// WorkingDir is the working directory of the CLI process.
	WorkingDir string

	// Path is the absolute or WorkingDir-relative path to the CLI's executable.
	// A bare name is looked up on the PATH.
	Path string

	// Args has the arguments, flags and flag arguments for the CLI invocation,
	// e.g. the path to a database file.  Passed through unexamined.
	Args []string

	// Env is the CLI's environment.  If nil, the CLI inherits ours.
	Env []string

	// Timeout bounds an entire run, from spawning the CLI to reaping it.
	// A CLI still running (or still holding stdOut open) at the deadline
	// is killed, and the run reports ErrFailedToTerminate.
	// Zero means DefaultTimeout.
	Timeout time.Duration

	// CommandTerminator, if not 0, is appended to the end of every command.
	// This is merely a convenience for CLI's like mysql that want such things.
	//
	// Example: ';'
	CommandTerminator byte

	// OutSink, if not nil, sees lines from stdOut as they arrive.
	OutSink LineSink

	// ErrSink, if not nil, sees lines from stdErr as they arrive.
	ErrSink LineSink

	// RequireCleanExit makes Run return ErrUnexpectedExit when the CLI
	// exits non-zero.  Otherwise the exit status is only reported in the
	// Result, and interpreting it is up to the caller.
	RequireCleanExit bool

	// Logger receives lifecycle events.  Defaults to slog.Default().
	Logger *slog.Logger
}

// Validate looks for trouble and sets defaults.
func (p *Parameters) Validate() error {
	if p.Path == "" {
		return fmt.Errorf("must specify a Path")
	}
	if p.Timeout < 0 {
		return fmt.Errorf("timeout %s is negative", p.Timeout)
	}
	if p.Timeout == 0 {
		p.Timeout = DefaultTimeout
	}
	if p.Logger == nil {
		p.Logger = slog.Default().WithGroup("scriptrunner")
	}
	return nil
}
