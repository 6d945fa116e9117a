package tstcli_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/monopole/scriptrunner/internal/testcli/tstcli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSillyDb_Insert(t *testing.T) {
	db, err := NewSillyDb("")
	require.NoError(t, err)
	msg, err := db.DoInsert("insert 1 user1 user1@example.com")
	assert.NoError(t, err)
	assert.Equal(t, MsgDone, msg)
	_, err = db.DoInsert("insert 1 user1 user1@example.com")
	assert.EqualError(t, err, MsgDuplicateKey)
	_, err = db.DoInsert("insert one user1 user1@example.com")
	assert.Error(t, err)
	_, err = db.DoInsert("insert 2 user2")
	assert.Error(t, err)
	assert.Equal(t, 1, db.NumRows())
	assert.NoError(t, db.Close())
}

func TestSillyDb_CorruptFile(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "bad.db")
	require.NoError(t, os.WriteFile(dbFile, []byte("1 a\n"), 0o644))
	_, err := NewSillyDb(dbFile)
	if !assert.Error(t, err) {
		t.Fatal("expecting an error")
	}
	assert.Contains(t, err.Error(), "corrupt db file")
}
