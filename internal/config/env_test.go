package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv unsets keys for the duration of the test so .env values apply.
func isolateEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		old, ok := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if ok {
				_ = os.Setenv(key, old)
				return
			}
			_ = os.Unsetenv(key)
		})
	}
}

func TestLoadEnvDefaultsWithoutFile(t *testing.T) {
	isolateEnv(t, "APP_PORT", "DB_DRIVER", "SESSION_TTL", "SEED_ON_START")

	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "3000", env.AppPort)
	assert.Equal(t, DriverPostgres, env.DBDriver)
	assert.Equal(t, 12*time.Hour, env.SessionTTL)
	assert.False(t, env.SeedOnStart)
}

func TestLoadEnvFromFile(t *testing.T) {
	isolateEnv(t, "APP_PORT", "DB_DRIVER", "SQLITE_PATH", "SESSION_TTL", "SEED_ON_START", "REDIS_DB")

	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=4000\nDB_DRIVER=sqlite\nSQLITE_PATH=/tmp/x.db\nSESSION_TTL=30m\nSEED_ON_START=true\nREDIS_DB=not-a-number\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	env, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "4000", env.AppPort)
	assert.Equal(t, DriverSQLite, env.DBDriver)
	assert.Equal(t, "/tmp/x.db", env.SQLitePath)
	assert.Equal(t, 30*time.Minute, env.SessionTTL)
	assert.True(t, env.SeedOnStart)
	assert.Equal(t, 0, env.Redis.DB)
}

func TestLoadEnvRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestOpenDatabaseSQLite(t *testing.T) {
	env := &Env{DBDriver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "open.db")}

	db, err := OpenDatabase(env)
	require.NoError(t, err)
	defer db.Close()
	assert.NoError(t, db.Ping())
}
