package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesDirectoryAndBindsQuestion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "site.db")

	db, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, sqlx.QUESTION, sqlx.BindType(db.DriverName()))
	assert.Equal(t, "SELECT * FROM t WHERE a = ?", db.Rebind("SELECT * FROM t WHERE a = ?"))

	var mode string
	require.NoError(t, db.Get(&mode, "PRAGMA journal_mode"))
	assert.Equal(t, "wal", mode)
}
