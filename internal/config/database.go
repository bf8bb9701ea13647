package config

import (
	"fmt"

	"ThynxSite/database/postgres"
	"ThynxSite/database/sqlite"

	"github.com/jmoiron/sqlx"
)

// OpenDatabase connects to the store selected by DB_DRIVER.
func OpenDatabase(env *Env) (*sqlx.DB, error) {
	switch env.DBDriver {
	case DriverPostgres:
		return postgres.New(env.Postgres)
	case DriverSQLite:
		return sqlite.New(env.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", env.DBDriver)
	}
}
