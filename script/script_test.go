package script_test

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	. "github.com/monopole/scriptrunner/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutation_IsABijection(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 30, 257} {
		t.Run(fmt.Sprintf("n%d", n), func(t *testing.T) {
			ids := Permutation(n, NewRand(int64(n)))
			require.Len(t, ids, n)
			sorted := append([]int(nil), ids...)
			sort.Ints(sorted)
			for i := range sorted {
				assert.Equal(t, i+1, sorted[i])
			}
		})
	}
}

func TestPermutation_Empty(t *testing.T) {
	assert.Empty(t, Permutation(0, NewRand(1)))
	assert.Empty(t, Permutation(-3, NewRand(1)))
}

func TestPermutation_Shuffles(t *testing.T) {
	// With 30 ids the chance of a seed producing the identity is nil.
	ids := Permutation(30, NewRand(600))
	identity := true
	for i := range ids {
		if ids[i] != i+1 {
			identity = false
			break
		}
	}
	assert.False(t, identity, "expected a shuffled order, got %v", ids)
}

func TestMake_Reproducible(t *testing.T) {
	s1 := Populate(30, 42)
	s2 := Populate(30, 42)
	assert.Equal(t, strings.Join(s1, "\n"), strings.Join(s2, "\n"))
	assert.NotEqual(t, s1, Populate(30, 43))
}

func TestMake_Shape(t *testing.T) {
	testCases := map[string]struct {
		n int
	}{
		"zero": {n: 0},
		"one":  {n: 1},
		"some": {n: 5},
		"many": {n: 300},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			s := Populate(tc.n, 7)
			require.Len(t, s, tc.n+2)
			assert.Equal(t, TreeDumpCommand, s[len(s)-2])
			assert.Equal(t, ExitCommand, s[len(s)-1])
			seen := make(map[int]bool)
			for _, c := range s[:tc.n] {
				var id, id2, id3 int
				_, err := fmt.Sscanf(
					c, "insert %d user%d user%d@example.com", &id, &id2, &id3)
				require.NoError(t, err, c)
				assert.Equal(t, id, id2)
				assert.Equal(t, id, id3)
				assert.False(t, seen[id], "duplicate id %d", id)
				seen[id] = true
			}
			for i := 1; i <= tc.n; i++ {
				assert.True(t, seen[i], "missing id %d", i)
			}
		})
	}
}

func TestGenerator_CustomVocabulary(t *testing.T) {
	g := &Generator{
		InsertFormat:     "put %d k%d v%d",
		TrailingCommands: []string{"dump", "quit"},
	}
	s := g.Make(2, NewRand(1))
	assert.ElementsMatch(t, []string{"put 1 k1 v1", "put 2 k2 v2"}, s[:2])
	assert.Equal(t, []string{"dump", "quit"}, []string(s[2:]))
	assert.Equal(t, "put 9 k9 v9", g.Insert(9))
}

func ExamplePopulate() {
	s := Populate(3, 1)
	fmt.Println(s[len(s)-2])
	fmt.Println(s[len(s)-1])
	// Output:
	// .print_tree
	// .exit
}
