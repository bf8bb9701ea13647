package adminRepository

import (
	"ThynxSite/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Settings: &settingsRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Settings interface {
		GetSetting(ctx context.Context, key string) (entity.AdminSetting, error)
		// UpsertSetting writes value under key, replacing any previous value
		// and the row id.
		UpsertSetting(ctx context.Context, setting entity.AdminSetting) error
		// CreateSettingIfAbsent reports false when key already holds a value.
		CreateSettingIfAbsent(ctx context.Context, setting entity.AdminSetting) (bool, error)
		DeleteSetting(ctx context.Context, key string) (bool, error)
	}

	Commit   func() error
	Rollback func() error
}

type settingsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
