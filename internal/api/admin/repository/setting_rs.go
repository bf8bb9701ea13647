package adminRepository

import (
	"database/sql"
	"errors"
	"time"

	"ThynxSite/internal/api/admin"
	"ThynxSite/internal/entity"
	contextPkg "ThynxSite/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SettingDB struct {
	ID           sql.NullString `db:"id"`
	SettingKey   sql.NullString `db:"setting_key"`
	SettingValue sql.NullString `db:"setting_value"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *settingsRepository) GetSetting(ctx context.Context, key string) (entity.AdminSetting, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row SettingDB

	query, args, err := sqlx.Named(queryGetSetting, map[string]interface{}{"setting_key": key})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSetting named query preparation err")
		return entity.AdminSetting{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.AdminSetting{}, admin.ErrSettingNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSetting execution err")
		return entity.AdminSetting{}, err
	}

	return entity.AdminSetting{
		ID:           row.ID.String,
		SettingKey:   row.SettingKey.String,
		SettingValue: row.SettingValue.String,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func (r *settingsRepository) UpsertSetting(ctx context.Context, setting entity.AdminSetting) error {
	_, err := r.insert(ctx, queryUpsertSetting, setting, "UpsertSetting")
	return err
}

func (r *settingsRepository) CreateSettingIfAbsent(ctx context.Context, setting entity.AdminSetting) (bool, error) {
	affected, err := r.insert(ctx, queryCreateSettingIfAbsent, setting, "CreateSettingIfAbsent")
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *settingsRepository) insert(ctx context.Context, namedQuery string, setting entity.AdminSetting, operation string) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            setting.ID,
		"setting_key":   setting.SettingKey,
		"setting_value": setting.SettingValue,
		"created_at":    setting.CreatedAt,
		"updated_at":    setting.UpdatedAt,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        setting.SettingKey,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return 0, err
	}

	return res.RowsAffected()
}

func (r *settingsRepository) DeleteSetting(ctx context.Context, key string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteSetting, map[string]interface{}{"setting_key": key})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSetting named query preparation err")
		return false, err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSetting execution err")
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
