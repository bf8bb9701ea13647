package migration

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schema string

// Statements splits the embedded schema into single statements so a failure
// can be reported by index.
func Statements() []string {
	var out []string
	for _, stmt := range strings.Split(schema, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// Migrate applies the schema inside one transaction. Every statement is
// IF NOT EXISTS so running it again is a no-op.
func Migrate(ctx context.Context, db *sqlx.DB, log *logrus.Logger) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range Statements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			log.WithFields(logrus.Fields{
				"statement": i,
				"error":     err.Error(),
			}).Error("Migration statement failed")
			return fmt.Errorf("migration statement %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	log.WithField("statements", len(Statements())).Info("Database schema is up to date")
	return nil
}
