package testing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertLines returns true if the lines, each terminated by a linefeed,
// spell out the expected text.  Handy with here-doc style expectations.
func AssertLines(t *testing.T, expected string, lines []string) bool {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return assert.Equal(t, expected, b.String())
}
