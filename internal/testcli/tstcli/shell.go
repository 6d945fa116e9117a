package tstcli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Shell reads commands from stdIn, pretending to be a database frontend CLI.
type Shell struct {
	db            *SillyDb
	disablePrompt bool
	exitOnError   bool
	stdIn         *bufio.Reader
	stdOut        io.Writer
	stdErr        io.Writer
}

// NewShell returns a new instance.
func NewShell(
	db *SillyDb, disablePrompt, exitOnError bool,
	stdIn io.Reader, stdOut, stdErr io.Writer) *Shell {
	return &Shell{
		db:            db,
		disablePrompt: disablePrompt,
		exitOnError:   exitOnError,
		stdIn:         bufio.NewReader(stdIn),
		stdOut:        stdOut,
		stdErr:        stdErr,
	}
}

// Run processes commands until .exit, returning the exit code.
// Like the real thing, running out of input before .exit is an error.
func (sh *Shell) Run() int {
	for {
		if !sh.disablePrompt {
			fmt.Fprint(sh.stdOut, Prompt)
		}
		line, err := sh.stdIn.ReadString('\n')
		if err != nil {
			fmt.Fprintln(sh.stdErr, MsgReadFailure)
			return 1
		}
		line = strings.TrimSpace(line)
		if line == CmdExit {
			if err = sh.db.Close(); err != nil {
				fmt.Fprintln(sh.stdErr, err)
				return 1
			}
			fmt.Fprintln(sh.stdOut, MsgGoodbye)
			return 0
		}
		if err = sh.execute(line); err != nil {
			fmt.Fprintln(sh.stdErr, err)
			if sh.exitOnError {
				return 1
			}
		}
	}
}

func (sh *Shell) execute(line string) error {
	if strings.HasPrefix(line, ".") {
		switch line {
		case CmdPrintTree:
			sh.db.PrintTree(sh.stdOut)
		case CmdVersion:
			fmt.Fprintln(sh.stdOut, MsgVersion)
		default:
			return fmt.Errorf(commandErrFmt, line)
		}
		return nil
	}
	keyword := strings.SplitN(line, " ", 2)[0]
	switch keyword {
	case CmdInsert:
		msg, err := sh.db.DoInsert(line)
		if err != nil {
			return err
		}
		fmt.Fprintln(sh.stdOut, msg)
	case CmdSelect:
		sh.db.DoSelect(sh.stdOut)
	default:
		return fmt.Errorf(keywordErrFmt, line)
	}
	return nil
}

// Echo prints every input line back until CmdEchoExit or EOF.
func Echo(stdIn io.Reader, stdOut io.Writer) int {
	sc := bufio.NewScanner(stdIn)
	for sc.Scan() {
		if sc.Text() == CmdEchoExit {
			return 0
		}
		fmt.Fprintln(stdOut, sc.Text())
	}
	return 0
}

// Flood writes at least n bytes of FloodLine to w.
func Flood(w io.Writer, n int) error {
	for written := 0; written < n; written += len(FloodLine) {
		if _, err := io.WriteString(w, FloodLine); err != nil {
			return err
		}
	}
	return nil
}

// Hang reads stdIn to EOF, then never returns.
func Hang(stdIn io.Reader) {
	_, _ = io.Copy(io.Discard, stdIn)
	for {
		// Don't use an empty select; the runtime kills a program whose
		// goroutines are all blocked.
		time.Sleep(time.Hour)
	}
}
