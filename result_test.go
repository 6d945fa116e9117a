package scriptrunner_test

import (
	"errors"
	"os/exec"
	"testing"

	. "github.com/monopole/scriptrunner"
	"github.com/stretchr/testify/assert"
)

func TestResult_ExitErr(t *testing.T) {
	var nilResult *Result
	assert.NoError(t, nilResult.ExitErr())
	assert.False(t, nilResult.Success())

	r := &Result{RunID: "abc", ExitCode: 0, State: "exit status 0"}
	assert.NoError(t, r.ExitErr())
	assert.True(t, r.Success())

	r = &Result{RunID: "abc", ExitCode: 1, State: "exit status 1"}
	err := r.ExitErr()
	assert.True(t, errors.Is(err, ErrUnexpectedExit))
	assert.False(t, errors.Is(err, ErrSpawn))
	assert.Equal(t,
		"subprocess exited unexpectedly: exit status 1", err.Error())
	var re *RunError
	if assert.True(t, errors.As(err, &re)) {
		assert.Equal(t, "abc", re.RunID)
	}

	r = &Result{ExitCode: -1}
	assert.Contains(t, r.ExitErr().Error(), "exit code -1")
}

func TestResult_Output(t *testing.T) {
	assert.Equal(t, "", (&Result{}).Output())
	assert.Equal(t, "a\n\nb\n", (&Result{Lines: []string{"a", "", "b"}}).Output())
}

func TestRunError(t *testing.T) {
	err := &RunError{Kind: ErrSpawn, RunID: "x", Err: exec.ErrNotFound}
	assert.True(t, errors.Is(err, ErrSpawn))
	assert.True(t, errors.Is(err, exec.ErrNotFound))
	assert.False(t, errors.Is(err, ErrWrite))
	assert.Equal(t,
		"subprocess could not be started: "+exec.ErrNotFound.Error(), err.Error())

	err = &RunError{Kind: ErrDrain}
	assert.Equal(t, ErrDrain.Error(), err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
