package scriptrunner

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/monopole/scriptrunner/internal/lines"
)

// killGrace is how long a killed subprocess gets to finish flushing its
// output pipes before we close them out from under the drains.
const killGrace = time.Second

// ScriptRunner feeds a script of commands to a command line interpreter (CLI)
// subprocess and captures everything it says back.
//
// Each call to Run starts a fresh subprocess, writes every command to its
// stdIn, closes stdIn, reads stdOut and stdErr until the subprocess closes
// them, and reaps the subprocess.  Writing and reading happen at the same
// time, so a CLI that answers each command as it arrives can't deadlock the
// run by filling its output pipe while we're still writing.
//
// ScriptRunner knows nothing about the commands it sends.  The script is
// opaque, and so is the output.  It's the caller's job to make a script that
// ends the CLI session (e.g. with an ".exit" or "quit" command), or to rely
// on the CLI exiting when it sees EOF on stdIn.
//
// A CLI that doesn't exit within Parameters.Timeout is killed.
type ScriptRunner struct {
	params *Parameters
}

// NewScriptRunner returns a new ScriptRunner, or an error on bad parameters.
func NewScriptRunner(params *Parameters) (*ScriptRunner, error) {
	if params == nil {
		return nil, errors.New("must specify Parameters")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &ScriptRunner{params: params}, nil
}

// RunScript runs the commands against a single use ScriptRunner made from
// the given path and args, with default parameters otherwise.
func RunScript(
	ctx context.Context, path string, args []string, commands []string,
) (*Result, error) {
	sr, err := NewScriptRunner(&Parameters{Path: path, Args: args})
	if err != nil {
		return nil, err
	}
	return sr.Run(ctx, commands)
}

// Run sends the commands to a new CLI subprocess and returns its output.
//
// Run blocks until the subprocess has exited and its output has been read to
// the end, or until the timeout passes, or until ctx is done.
//
// If the subprocess cannot be started, Run returns a nil Result and an error
// matching ErrSpawn.  Otherwise Run always returns a Result, holding whatever
// output was captured, and possibly an error matching ErrFailedToTerminate,
// ErrWrite or ErrDrain.  A non-zero exit is not an error unless
// Parameters.RequireCleanExit is set; see Result.ExitErr.
func (sr *ScriptRunner) Run(
	ctx context.Context, commands []string) (*Result, error) {
	r := &run{
		id:     uuid.New().String(),
		params: sr.params,
	}
	r.logger = sr.params.Logger.With(slog.String("run_id", r.id))
	for _, s := range []LineSink{sr.params.OutSink, sr.params.ErrSink} {
		if s != nil {
			s.Reset()
		}
	}
	return r.do(ctx, commands)
}

// run holds the state of one call to Run.  Nothing in it outlives the call.
type run struct {
	id       string
	params   *Parameters
	logger   *slog.Logger
	cmd      *exec.Cmd      // the CLI subprocess
	stdIn    io.WriteCloser // the CLI's input stream
	stdOut   io.ReadCloser  // the CLI's standard output
	stdErr   io.ReadCloser  // the CLI's error output
	out      bytes.Buffer   // everything from stdOut
	errOut   bytes.Buffer   // everything from stdErr
	sinkLock sync.Mutex     // the same sink might watch both streams
	errs     errorTracker   // multiple goroutines can generate errors
	start    time.Time
}

func (r *run) do(ctx context.Context, commands []string) (*Result, error) {
	if err := r.startSubprocess(); err != nil {
		r.logger.Error("subprocess failed to start",
			slog.String("path", r.params.Path), slog.String("error", err.Error()))
		return nil, err
	}
	deadline := time.NewTimer(r.params.Timeout)
	defer deadline.Stop()

	// Write and drain concurrently.  The writer closes stdIn when done.
	// The drains finish when the CLI closes stdOut and stdErr, which
	// normally happens when it exits.
	var ioWg sync.WaitGroup
	ioWg.Add(3)
	go r.writeScript(&ioWg, commands)
	go r.drain(&ioWg, "Out", r.stdOut, &r.out, r.params.OutSink)
	go r.drain(&ioWg, "Err", r.stdErr, &r.errOut, r.params.ErrSink)
	ioDone := make(chan struct{})
	go func() {
		ioWg.Wait()
		close(ioDone)
	}()

	select {
	case <-ioDone:
	case <-deadline.C:
		return r.abandon(ioDone, errors.Errorf(
			"stdOut still open %s after start", r.params.Timeout))
	case <-ctx.Done():
		return r.abandon(ioDone, errors.WithStack(ctx.Err()))
	}

	// The output streams are closed, so the CLI should be gone or going.
	// It's only now safe to call Wait, as Wait closes the pipes.
	waitErr := make(chan error, 1)
	go func() { waitErr <- r.cmd.Wait() }()
	select {
	case err := <-waitErr:
		r.noteWaitError(err)
	case <-deadline.C:
		r.kill()
		r.noteWaitError(<-waitErr)
		r.errs.log(newRunError(ErrFailedToTerminate, r.id, errors.Errorf(
			"closed stdOut but still running %s after start", r.params.Timeout)))
	case <-ctx.Done():
		r.kill()
		r.noteWaitError(<-waitErr)
		r.errs.log(newRunError(
			ErrFailedToTerminate, r.id, errors.WithStack(ctx.Err())))
	}
	return r.finish()
}

// startSubprocess starts the CLI subprocess, returning an error on any trouble.
func (r *run) startSubprocess() (err error) {
	r.cmd = exec.Command(r.params.Path, r.params.Args...)
	r.cmd.Dir = r.params.WorkingDir
	r.cmd.Env = r.params.Env
	if err = r.setUpPipes(); err != nil {
		return newRunError(ErrSpawn, r.id, err)
	}
	r.start = time.Now()
	// On failure, Start closes the pipes made above.
	if err = r.cmd.Start(); err != nil {
		return newRunError(
			ErrSpawn, r.id, errors.Wrapf(err, "trying to start %s", r.params.Path))
	}
	r.logger.Info("started subprocess",
		slog.String("path", r.params.Path),
		slog.Any("args", r.params.Args),
		slog.Int("pid", r.cmd.Process.Pid))
	return nil
}

// setUpPipes establishes the necessary pipes.
func (r *run) setUpPipes() (err error) {
	defer func() {
		if err != nil {
			r.closePipes()
		}
	}()
	r.stdIn, err = r.cmd.StdinPipe()
	if err != nil {
		return errors.Wrapf(err, "getting stdIn for %q", r.params.Path)
	}
	r.stdOut, err = r.cmd.StdoutPipe()
	if err != nil {
		return errors.Wrapf(err, "getting stdOut for %q", r.params.Path)
	}
	r.stdErr, err = r.cmd.StderrPipe()
	if err != nil {
		return errors.Wrapf(err, "getting stdErr for %q", r.params.Path)
	}
	return nil
}

// closePipes is only needed if Start was never reached.
func (r *run) closePipes() {
	for _, c := range []io.Closer{r.stdIn, r.stdOut, r.stdErr} {
		if c != nil {
			_ = c.Close()
		}
	}
}

// writeScript sends each command to stdIn, then closes stdIn.
func (r *run) writeScript(wg *sync.WaitGroup, commands []string) {
	defer wg.Done()
	// Closing stdIn is the EOF that tells the CLI the script is over.
	// Many CLIs won't flush or exit without it.
	defer func() {
		if err := r.stdIn.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			r.errs.log(newRunError(
				ErrWrite, r.id, errors.Wrap(err, "closing stdIn")))
		}
	}()
	for i, c := range commands {
		fullCmd := lines.AssureCmdLineTermination(
			[]byte(c), r.params.CommandTerminator)
		n, err := io.WriteString(r.stdIn, fullCmd)
		if err != nil {
			r.errs.log(newRunError(ErrWrite, r.id, errors.Wrapf(err,
				"wrote %d of %d bytes of command %q; sent %d of %d commands",
				n, len(fullCmd), c, i, len(commands))))
			return
		}
		r.logger.Debug("wrote command",
			slog.Int("index", i), slog.String("command", c))
	}
}

// drain reads a CLI output stream to EOF, keeping everything in buff and
// showing each line to the sink, if any.  Lines have no length limit.
func (r *run) drain(
	wg *sync.WaitGroup, title string,
	pipe io.Reader, buff *bytes.Buffer, sink LineSink) {
	defer wg.Done()
	rdr := bufio.NewReader(pipe)
	for {
		line, err := rdr.ReadBytes(lines.LineFeed)
		if len(line) > 0 {
			buff.Write(line)
			if sink != nil && !r.feed(sink, title, lines.TrimLineFeed(line)) {
				sink = nil
			}
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			r.errs.log(newRunError(
				ErrDrain, r.id, errors.Wrapf(err, "reading std%s", title)))
			return
		}
	}
}

// feed passes one line to a sink, returning false if the sink broke.
func (r *run) feed(sink LineSink, title string, line []byte) bool {
	r.sinkLock.Lock()
	defer r.sinkLock.Unlock()
	if _, err := sink.Write(line); err != nil {
		r.errs.log(newRunError(
			ErrDrain, r.id, errors.Wrapf(err, "std%s sink refused %q", title, line)))
		return false
	}
	return true
}

// abandon kills the subprocess and collects what it can.
func (r *run) abandon(ioDone <-chan struct{}, cause error) (*Result, error) {
	r.errs.log(newRunError(ErrFailedToTerminate, r.id, cause))
	r.kill()
	// Give the drains a chance to read whatever the CLI flushed before dying.
	// A CLI that passed its pipes to children of its own might never let
	// them close, so don't wait forever.
	select {
	case <-ioDone:
	case <-time.After(killGrace):
	}
	// Wait reaps the process and closes our ends of the pipes, which
	// unblocks any drain or write still in progress.
	r.noteWaitError(r.cmd.Wait())
	<-ioDone
	return r.finish()
}

func (r *run) kill() {
	r.logger.Warn("killing subprocess",
		slog.String("path", r.params.Path),
		slog.Int("pid", r.cmd.Process.Pid))
	if err := r.cmd.Process.Kill(); err != nil &&
		!errors.Is(err, os.ErrProcessDone) {
		r.logger.Warn("kill failed", slog.String("error", err.Error()))
	}
}

// noteWaitError logs anything from Wait other than a bad exit status;
// the exit status itself is reported in the Result.
func (r *run) noteWaitError(err error) {
	if err == nil {
		return
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	r.logger.Warn("wait failed", slog.String("error", err.Error()))
}

func (r *run) finish() (*Result, error) {
	res := &Result{
		RunID:    r.id,
		Lines:    lines.Split(r.out.Bytes()),
		Raw:      r.out.Bytes(),
		ErrLines: lines.Split(r.errOut.Bytes()),
		ExitCode: -1,
		Duration: time.Since(r.start),
	}
	if ps := r.cmd.ProcessState; ps != nil {
		res.ExitCode = ps.ExitCode()
		res.State = ps.String()
	}
	r.logger.Info("subprocess finished",
		slog.String("state", res.State),
		slog.Int("exit_code", res.ExitCode),
		slog.Int("lines", len(res.Lines)),
		slog.Int("errors", r.errs.count()),
		slog.Duration("duration", res.Duration))
	err := r.errs.worst(ErrFailedToTerminate, ErrWrite, ErrDrain)
	if err == nil && r.params.RequireCleanExit {
		err = res.ExitErr()
	}
	return res, err
}
