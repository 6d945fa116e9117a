// Package lines converts between command lines, raw process output and
// the ordered line slices handed back to callers.
package lines

import (
	"bytes"
	"strings"
)

// LineFeed makes it easier to find places where a linefeed is used.
const LineFeed = '\n'

// AssureCmdLineTermination assures that the last characters of a command line
// are correct.  A command that already ends with a linefeed keeps exactly
// one; an empty command becomes a bare linefeed.
func AssureCmdLineTermination(c []byte, terminator byte) string {
	if len(c) > 0 && c[len(c)-1] == LineFeed {
		// Slice it off avoid confusion, replace momentarily.  Cap() unchanged.
		c = c[:len(c)-1]
	}
	if terminator > 0 && (len(c) == 0 || c[len(c)-1] != terminator) {
		c = append(c, terminator)
	}
	return string(append(c, LineFeed))
}

// Split breaks raw output into lines.  Exactly one trailing linefeed is
// dropped, so output that ends mid-line still yields its last line, and
// blank lines in the middle of the output are kept.
func Split(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	raw = bytes.TrimSuffix(raw, []byte{LineFeed})
	return strings.Split(string(raw), string(LineFeed))
}

// Join terminates every line with a linefeed and concatenates them.
// Split(Join(x)) == x for any x that Split could have produced.
func Join(x []string) string {
	var b strings.Builder
	for i := range x {
		b.WriteString(x[i])
		b.WriteByte(LineFeed)
	}
	return b.String()
}

// TrimLineFeed returns a line without its trailing linefeed, if any.
func TrimLineFeed(line []byte) []byte {
	return bytes.TrimSuffix(line, []byte{LineFeed})
}
