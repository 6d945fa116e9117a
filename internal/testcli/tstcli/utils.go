package tstcli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/monopole/scriptrunner"
	"github.com/monopole/scriptrunner/sinks"
)

// testingTimeout is generous; a healthy run takes milliseconds.
const testingTimeout = 10 * time.Second

// RunIfRequested turns the current process into the testcli if
// EnvRunAsTestCli says so.  Call it first thing in TestMain, so that a test
// binary can run itself as the subprocess under test.
func RunIfRequested() {
	if os.Getenv(EnvRunAsTestCli) != "1" {
		return
	}
	os.Exit(Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// TestCliPath returns the path of the running binary, which acts as the
// testcli when EnvRunAsTestCli is set.
func TestCliPath() string {
	if p, err := os.Executable(); err == nil {
		return p
	}
	return os.Args[0]
}

// TestCliEnv returns our environment plus the setting that turns a test
// binary into the testcli.
func TestCliEnv() []string {
	return append(os.Environ(), EnvRunAsTestCli+"=1")
}

// MakeParameters returns Parameters for running the testcli with the
// given arguments.
func MakeParameters(args ...string) *scriptrunner.Parameters {
	return &scriptrunner.Parameters{
		Path:    TestCliPath(),
		Args:    args,
		Env:     TestCliEnv(),
		Timeout: testingTimeout,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// MakeTreeSentinel returns a sink that notices the start of a tree dump.
func MakeTreeSentinel() *sinks.SentinelSink {
	return &sinks.SentinelSink{Value: TreeHeader}
}
