package dberr

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"ThynxSite/database/sqlite"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolationPostgres(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsUniqueViolationSQLite(t *testing.T) {
	db, err := sqlite.New(filepath.Join(t.TempDir(), "dberr.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE t (id TEXT PRIMARY KEY, email TEXT NOT NULL UNIQUE, name TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO t (id, email, name) VALUES ('1', 'a@b.c', 'a')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO t (id, email, name) VALUES ('2', 'a@b.c', 'b')`)
	assert.True(t, IsUniqueViolation(err))

	_, err = db.Exec(`INSERT INTO t (id, email, name) VALUES ('1', 'z@b.c', 'c')`)
	assert.True(t, IsUniqueViolation(err))

	_, err = db.Exec(`INSERT INTO t (id, email) VALUES ('3', 'q@b.c')`)
	require.Error(t, err)
	assert.False(t, IsUniqueViolation(err))
}
