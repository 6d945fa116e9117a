package scriptrunner_test

import (
	"context"
	"fmt"
	"os"

	. "github.com/monopole/scriptrunner"
	"github.com/monopole/scriptrunner/internal/testcli/tstcli"
	"github.com/monopole/scriptrunner/script"
	"github.com/monopole/scriptrunner/sinks"
)

func ExampleScriptRunner_Run() {
	runner, err := NewScriptRunner(tstcli.MakeParameters("--" + tstcli.FlagEcho))
	assertNoErr(err)
	result, err := runner.Run(context.Background(), []string{"a", "b", "c", "exit"})
	assertNoErr(err)
	for _, line := range result.Lines {
		fmt.Println(line)
	}
	fmt.Println(result.State)

	// Output:
	// a
	// b
	// c
	// exit status 0
}

func ExampleScriptRunner_Run_populate() {
	params := tstcli.MakeParameters("--" + tstcli.FlagDisablePrompt)
	// Watch the output as it arrives.
	params.OutSink = sinks.NewPrintingSink(os.Stdout, "db| ")
	runner, err := NewScriptRunner(params)
	assertNoErr(err)
	result, err := runner.Run(context.Background(), script.Populate(2, 600))
	assertNoErr(err)
	fmt.Println(len(result.Lines), result.ExitCode)

	// Output:
	// db| Done
	// db| Done
	// db| Tree:
	// db| - leaf (size 2)
	// db|   - 1
	// db|   - 2
	// db| Goodbye
	// 7 0
}
