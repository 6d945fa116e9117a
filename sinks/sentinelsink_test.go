package sinks_test

import (
	"strings"
	"testing"

	. "github.com/monopole/scriptrunner/sinks"
	"github.com/stretchr/testify/assert"
)

//goland:noinspection ALL
func TestSentinelSink(t *testing.T) {
	var testCases = map[string]struct {
		input           []string
		expectedMatch   string
		expectedLineNum int
		expectedSuccess bool
	}{
		"empty": {
			expectedMatch: "",
		},
		"beginningOfLine": {
			input: strings.Split(`
touchstone> Done
touchstone> Done
Tree:
- leaf (size 2)
  - 1
  - 2
`[1:], "\n"),
			expectedMatch:   `Tree:`,
			expectedLineNum: 2,
			expectedSuccess: true,
		},
		"midLine": {
			input: strings.Split(`
touchstone> Done
touchstone> Tree:
- leaf (size 1)
  - 1
touchstone> Tree:
`[1:], "\n"),
			expectedMatch:   `touchstone> Tree:`,
			expectedLineNum: 1,
			expectedSuccess: true,
		},
		"nope": {
			input: strings.Split(`
touchstone> Done
touchstone> Done
touchstone> Goodbye
`[1:], "\n"),
			expectedMatch:   ``,
			expectedSuccess: false,
		},
	}
	for n, tc := range testCases {
		t.Run(n, func(t *testing.T) {
			s := &SentinelSink{Value: `Tree:`}
			assert.False(t, s.Success())
			for i := range tc.input {
				assert.NoError(t, WriteString(s, tc.input[i]))
			}
			if tc.expectedSuccess {
				assert.True(t, s.Success())
				assert.Equal(t, tc.expectedMatch, s.Match())
				assert.Equal(t, tc.expectedLineNum, s.LineNum())
			} else {
				assert.False(t, s.Success())
			}
			s.Reset()
			assert.False(t, s.Success())
			assert.Equal(t, "", s.Match())
		})
	}
}
