package sinks_test

import (
	"bytes"
	"testing"

	. "github.com/monopole/scriptrunner/sinks"
	"github.com/stretchr/testify/assert"
)

func TestPrintingSink(t *testing.T) {
	var out bytes.Buffer
	s := NewPrintingSink(&out, "db| ")
	assert.NoError(t, WriteString(s, "Done"))
	assert.NoError(t, WriteString(s, ""))
	assert.NoError(t, WriteString(s, "Goodbye"))
	assert.Equal(t, `
db| Done
db| 
db| Goodbye
`[1:], out.String())
	assert.True(t, s.Success())
}
