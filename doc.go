// Package scriptrunner runs a script of commands through a shell-style CLI,
// the way a test harness would: spawn the CLI, type the whole script into
// it, hang up, and collect everything it said.
//
// Use one instance of ScriptRunner per CLI (a database frontend, mysql,
// etc.), and call Run once per script.  Package script builds scripts;
// package sinks has optional watchers for output as it arrives.
//
// See example_test.go for an example, and ScriptRunner and Result for detailed
// documentation.
package scriptrunner
