// Package script builds the command transcripts sent to a database CLI.
//
// A Script is nothing more than an ordered slice of command lines.  The
// generator here produces the classic "populate" transcript: a shuffled
// run of inserts, a tree dump, and an exit.
package script

import (
	"fmt"
	"math/rand"
	"time"
)

// Reference vocabulary of the target database.
const (
	InsertFormat    = "insert %d user%d user%d@example.com"
	TreeDumpCommand = ".print_tree"
	ExitCommand     = ".exit"
)

// Script is an ordered list of commands.  It's assignable to []string.
type Script []string

// Generator knows the command templates used to build a Script.
type Generator struct {
	// InsertFormat is a fmt format taking the id three times.
	InsertFormat string
	// TrailingCommands follow the inserts, in order.
	TrailingCommands []string
}

// DefaultGenerator returns a Generator for the reference vocabulary.
func DefaultGenerator() *Generator {
	return &Generator{
		InsertFormat:     InsertFormat,
		TrailingCommands: []string{TreeDumpCommand, ExitCommand},
	}
}

// NewRand returns a random source with the given seed.
// Use the same seed to get the same Script.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TimeSeed returns a seed derived from the wall clock, for callers that
// don't care about reproducing a run.  Log it if you might.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// Permutation returns the ids 1..n in a uniformly random order.
func Permutation(n int, rnd *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	rnd.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	return ids
}

// Make returns n insert commands with shuffled ids, followed by the
// trailing commands.
func (g *Generator) Make(n int, rnd *rand.Rand) Script {
	ids := Permutation(n, rnd)
	s := make(Script, 0, len(ids)+len(g.TrailingCommands))
	for _, id := range ids {
		s = append(s, g.Insert(id))
	}
	return append(s, g.TrailingCommands...)
}

// Insert returns the insert command for one id.
func (g *Generator) Insert(id int) string {
	return fmt.Sprintf(g.InsertFormat, id, id, id)
}

// Populate is shorthand for DefaultGenerator().Make(n, NewRand(seed)).
func Populate(n int, seed int64) Script {
	return DefaultGenerator().Make(n, NewRand(seed))
}
