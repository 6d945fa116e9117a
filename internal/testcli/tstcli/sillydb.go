package tstcli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// row is one record in the SillyDb.
type row struct {
	id    int
	name  string
	email string
}

// SillyDb keeps rows in memory, keyed by id, and can pretend they're
// stored in a b-tree when asked to print one.
type SillyDb struct {
	rows map[int]row
	file string
}

// NewSillyDb returns a new instance.  If file is not empty, rows are loaded
// from it if it exists, and saved to it on Close.
func NewSillyDb(file string) (*SillyDb, error) {
	db := &SillyDb{rows: make(map[int]row), file: file}
	if file == "" {
		return db, nil
	}
	f, err := os.Open(file)
	if err != nil {
		if os.IsNotExist(err) {
			return db, nil
		}
		return nil, errors.Wrap(err, "Unable to open DB file")
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		r, err := parseRow(strings.Fields(sc.Text()))
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt db file %s", file)
		}
		db.rows[r.id] = r
	}
	return db, errors.Wrapf(sc.Err(), "reading %s", file)
}

// NumRows returns the row count.
func (db *SillyDb) NumRows() int {
	return len(db.rows)
}

// DoInsert parses the fields of an insert statement and stores the row.
// The message returned is for the user, and is an error iff err != nil.
func (db *SillyDb) DoInsert(statement string) (string, error) {
	fields := strings.Fields(statement)
	if len(fields) != 4 {
		return "", fmt.Errorf(syntaxErrFmt, statement)
	}
	r, err := parseRow(fields[1:])
	if err != nil {
		return "", fmt.Errorf(syntaxErrFmt, statement)
	}
	if len(r.name) > maxNameLen || len(r.email) > maxEmailLen {
		return "", fmt.Errorf(boundsErrFmt, statement)
	}
	if _, ok := db.rows[r.id]; ok {
		return "", errors.New(MsgDuplicateKey)
	}
	db.rows[r.id] = r
	return MsgDone, nil
}

// DoSelect prints every row in key order.
func (db *SillyDb) DoSelect(w io.Writer) {
	for _, id := range db.sortedKeys() {
		r := db.rows[id]
		fmt.Fprintf(w, "(%d, %s, %s)\n", r.id, r.name, r.email)
	}
	fmt.Fprintln(w, MsgDone)
}

// PrintTree prints the keys as if they were in a b-tree whose leaves hold
// leafMaxCells keys.  When the keys overflow one leaf, they're spread over
// half-full leaves below a single internal node.
func (db *SillyDb) PrintTree(w io.Writer) {
	fmt.Fprintln(w, TreeHeader)
	keys := db.sortedKeys()
	if len(keys) <= leafMaxCells {
		printLeaf(w, keys, 0)
		return
	}
	var leaves [][]int
	for len(keys) > 0 {
		n := leafSplitCount
		if n > len(keys) {
			n = len(keys)
		}
		leaves = append(leaves, keys[:n])
		keys = keys[n:]
	}
	fmt.Fprintf(w, "- internal (size %d)\n", len(leaves)-1)
	for i, leaf := range leaves {
		printLeaf(w, leaf, 1)
		if i < len(leaves)-1 {
			fmt.Fprintf(w, "%s- key %d\n", indent(1), leaf[len(leaf)-1])
		}
	}
}

// Close saves the rows to the db file, if there is one.
func (db *SillyDb) Close() error {
	if db.file == "" {
		return nil
	}
	var b strings.Builder
	for _, id := range db.sortedKeys() {
		r := db.rows[id]
		fmt.Fprintf(&b, "%d %s %s\n", r.id, r.name, r.email)
	}
	return errors.Wrapf(
		os.WriteFile(db.file, []byte(b.String()), 0o644), "writing %s", db.file)
}

func (db *SillyDb) sortedKeys() []int {
	keys := make([]int, 0, len(db.rows))
	for id := range db.rows {
		keys = append(keys, id)
	}
	sort.Ints(keys)
	return keys
}

func printLeaf(w io.Writer, keys []int, level int) {
	fmt.Fprintf(w, "%s- leaf (size %d)\n", indent(level), len(keys))
	for _, k := range keys {
		fmt.Fprintf(w, "%s- %d\n", indent(level+1), k)
	}
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}

func parseRow(fields []string) (row, error) {
	if len(fields) != 3 {
		return row{}, errors.Errorf("want 3 fields, got %d", len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return row{}, err
	}
	if id < 0 {
		return row{}, errors.Errorf("negative id %d", id)
	}
	return row{id: id, name: fields[1], email: fields[2]}, nil
}
