package tstcli

// Constants needed by both the fake shell and its db.
const (
	// EnvRunAsTestCli, set to "1", makes a test binary act as the testcli.
	EnvRunAsTestCli = "SCRIPTRUNNER_RUN_AS_TESTCLI"

	FlagDisablePrompt = "disable-prompt"
	FlagExitOnErr     = "exit-on-error"
	FlagFailOnStartup = "fail-on-startup"
	FlagEcho          = "echo"
	FlagFlood         = "flood"
	FlagHang          = "hang"
)

// Commands understood by the fake db.
const (
	CmdInsert    = "insert"
	CmdSelect    = "select"
	CmdPrintTree = ".print_tree"
	CmdVersion   = ".version"
	CmdExit      = ".exit"
	CmdHelp      = "help"

	// CmdEchoExit ends a session in echo mode.
	CmdEchoExit = "exit"
)

// AllCommands lists the db commands, for help output.
var AllCommands = []string{
	CmdInsert, CmdSelect, CmdPrintTree, CmdVersion, CmdExit,
}

// Output of the fake db.
const (
	Prompt          = "touchstone> "
	MsgDone         = "Done"
	MsgGoodbye      = "Goodbye"
	MsgVersion      = "Touchstone v0.1"
	TreeHeader      = "Tree:"
	MsgReadFailure  = "Error reading input"
	MsgDuplicateKey = "Error: Duplicate key"
	syntaxErrFmt    = "Error: Syntax error: '%s'"
	boundsErrFmt    = "Error: Argument out of bounds: '%s'"
	keywordErrFmt   = "Error: Unrecognized keyword '%s'"
	commandErrFmt   = "Unrecognized command '%s'."

	// FloodLine is repeated to make flood output, linefeed included.
	FloodLine = "floodfloodfloodfloodfloodfloodfloodfloodfloodfloodfloodfloodfloodfloodfloodfloodfloodfloodfloo\n"
)

// Limits of the fake db.
const (
	maxNameLen  = 32
	maxEmailLen = 255
	// leafMaxCells and leafSplitCount shape the tree dump.
	leafMaxCells   = 13
	leafSplitCount = (leafMaxCells + 1) / 2
)
