// Command testcli pretends to be a database frontend CLI.
// Tests run it by re-executing themselves; build it to poke at it by hand.
package main

import (
	"os"

	"github.com/monopole/scriptrunner/internal/testcli/tstcli"
)

func main() {
	os.Exit(tstcli.Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
