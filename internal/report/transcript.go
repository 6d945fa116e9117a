// Package report persists transcripts of script runs, so a failing run
// can be examined (or diffed against another) after the fact.
package report

import (
	"time"

	"github.com/pkg/errors"

	"github.com/monopole/scriptrunner"
)

// Store persists and retrieves transcripts.
type Store interface {
	Save(t *Transcript) error
	Load(runID string) (*Transcript, error)
}

// Transcript holds everything about one run of a script.
type Transcript struct {
	ID        string        `json:"id"`
	Path      string        `json:"path"`
	Args      []string      `json:"args,omitempty"`
	Seed      int64         `json:"seed"`
	Script    []string      `json:"script"`
	Lines     []string      `json:"lines"`
	ErrLines  []string      `json:"err_lines,omitempty"`
	ExitCode  int           `json:"exit_code"`
	State     string        `json:"state,omitempty"`
	Error     string        `json:"error,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// NewTranscript assembles a Transcript from a run's inputs and outcome.
// res may be nil if the run never started.
func NewTranscript(
	p *scriptrunner.Parameters, seed int64, commands []string,
	startedAt time.Time, res *scriptrunner.Result, runErr error,
) *Transcript {
	t := &Transcript{
		Path:      p.Path,
		Args:      p.Args,
		Seed:      seed,
		Script:    commands,
		ExitCode:  -1,
		StartedAt: startedAt,
	}
	if res != nil {
		t.ID = res.RunID
		t.Lines = res.Lines
		t.ErrLines = res.ErrLines
		t.ExitCode = res.ExitCode
		t.State = res.State
		t.Duration = res.Duration
	}
	if runErr != nil {
		t.Error = runErr.Error()
		var re *scriptrunner.RunError
		if t.ID == "" && errors.As(runErr, &re) {
			t.ID = re.RunID
		}
	}
	return t
}
