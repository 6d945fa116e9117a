package tstcli

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
)

//go:embed README.md
var readMeMd string

type argSack struct {
	disablePrompt bool
	exitOnError   bool
	failOnStartup bool
	echo          bool
	hang          bool
	flood         int
}

// Main runs the testcli with the given arguments (not including the
// program name) and returns its exit code.  In hang mode, it never returns.
func Main(argv []string, stdIn io.Reader, stdOut, stdErr io.Writer) int {
	var args argSack
	fs := flag.NewFlagSet("testcli", flag.ContinueOnError)
	fs.SetOutput(stdErr)
	fs.BoolVar(
		&args.disablePrompt,
		FlagDisablePrompt, false,
		"Disable the prompt.")
	fs.BoolVar(
		&args.exitOnError,
		FlagExitOnErr, false,
		"Exit on error, else continue accepting commands.")
	fs.BoolVar(
		&args.failOnStartup,
		FlagFailOnStartup, false,
		"Exit with error on startup, before processing any commands.")
	fs.BoolVar(
		&args.echo,
		FlagEcho, false,
		"Echo each input line until \""+CmdEchoExit+"\", instead of being a db.")
	fs.BoolVar(
		&args.hang,
		FlagHang, false,
		"Read input to EOF, then never exit.")
	fs.IntVar(
		&args.flood,
		FlagFlood, 0,
		"Write this many bytes to stdout before reading any input.")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if fs.NArg() > 1 || (fs.NArg() == 1 && fs.Arg(0) == CmdHelp) {
		if fs.Arg(0) != CmdHelp {
			fmt.Fprintln(stdErr, "unrecognized args: ", fs.Args())
		}
		fmt.Fprintln(stdErr)
		fmt.Fprint(stdErr, readMeMd)
		fmt.Fprintln(stdErr)
		fmt.Fprintf(stdErr, "Usage: testcli [flags] [dbFile]\n")
		fmt.Fprintf(stdErr, "Commands: %v\n", AllCommands)
		fmt.Fprintf(stdErr, "Flags:\n")
		fs.PrintDefaults()
		return 1
	}
	if args.failOnStartup {
		fmt.Fprintln(stdErr, "Ordered to fail on startup.")
		return 1
	}
	if args.flood > 0 {
		if err := Flood(stdOut, args.flood); err != nil {
			fmt.Fprintln(stdErr, err)
			return 1
		}
	}
	if args.hang {
		Hang(stdIn)
	}
	if args.echo {
		return Echo(stdIn, stdOut)
	}
	db, err := NewSillyDb(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stdErr, err)
		return 1
	}
	return NewShell(
		db, args.disablePrompt, args.exitOnError, stdIn, stdOut, stdErr).Run()
}
