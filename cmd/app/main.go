package main

import (
	"fmt"
	"os"

	"ThynxSite/database/migration"
	"ThynxSite/internal/config"
	"ThynxSite/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/net/context"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:          "thynx",
	Short:        "Thynx site backend",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to the .env file")

	pinCmd.AddCommand(pinSetCmd, pinResetCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, pinCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type runtime struct {
	env *config.Env
	log *logrus.Logger
	db  *sqlx.DB
}

// bootstrap loads the environment, builds the logger and opens a migrated
// database. The caller owns db.
func bootstrap(ctx context.Context) (*runtime, error) {
	env, err := config.LoadEnv(envFile)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	logger := log.NewLogger()

	db, err := config.OpenDatabase(env)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"driver": env.DBDriver,
			"error":  err.Error(),
		}).Error("Failed to open database")
		return nil, err
	}

	if err := migration.Migrate(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &runtime{env: env, log: logger, db: db}, nil
}

func (r *runtime) close() {
	if err := r.db.Close(); err != nil {
		r.log.WithField("error", err.Error()).Warn("Failed to close database")
	}
}
