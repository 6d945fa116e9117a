package sinks_test

import (
	"testing"

	. "github.com/monopole/scriptrunner/sinks"
	"github.com/stretchr/testify/assert"
)

func TestKondoSink(t *testing.T) {
	var testCases = map[string]struct {
		input []string
	}{
		"t1": {
			input: []string{"hello", "there"},
		},
		"noInput": {},
	}
	for n, tc := range testCases {
		t.Run(n, func(t *testing.T) {
			s := &KondoSink{}
			assert.True(t, s.Success())
			for i := range tc.input {
				assert.NoError(t, WriteString(s, tc.input[i]))
			}
			assert.True(t, s.Success())
			s.Reset()
			assert.True(t, s.Success())
		})
	}
}
