package adminRepository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"ThynxSite/database/migration"
	"ThynxSite/database/sqlite"
	"ThynxSite/internal/api/admin"
	"ThynxSite/internal/entity"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient(t *testing.T) Client {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger, _ := test.NewNullLogger()
	require.NoError(t, migration.Migrate(context.Background(), db, logger))

	client, err := New(db, logger).NewClient(false)
	require.NoError(t, err)
	return client
}

func setting(id, value string, at time.Time) entity.AdminSetting {
	return entity.AdminSetting{
		ID:           id,
		SettingKey:   entity.SettingAdminPIN,
		SettingValue: value,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

func TestGetSettingNotFound(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Settings.GetSetting(context.Background(), entity.SettingAdminPIN)
	assert.ErrorIs(t, err, admin.ErrSettingNotFound)
}

func TestCreateSettingIfAbsent(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	now := time.Now().UTC()

	created, err := client.Settings.CreateSettingIfAbsent(ctx, setting("a", "first", now))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = client.Settings.CreateSettingIfAbsent(ctx, setting("b", "second", now))
	require.NoError(t, err)
	assert.False(t, created)

	got, err := client.Settings.GetSetting(ctx, entity.SettingAdminPIN)
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, "first", got.SettingValue)
}

func TestUpsertSettingReplacesRow(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	first := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	second := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, client.Settings.UpsertSetting(ctx, setting("a", "first", first)))
	require.NoError(t, client.Settings.UpsertSetting(ctx, setting("b", "second", second)))

	got, err := client.Settings.GetSetting(ctx, entity.SettingAdminPIN)
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)
	assert.Equal(t, "second", got.SettingValue)
	assert.True(t, first.Equal(got.CreatedAt))
	assert.True(t, second.Equal(got.UpdatedAt))
}

func TestDeleteSetting(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	deleted, err := client.Settings.DeleteSetting(ctx, entity.SettingAdminPIN)
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, client.Settings.UpsertSetting(ctx, setting("a", "v", time.Now().UTC())))

	deleted, err = client.Settings.DeleteSetting(ctx, entity.SettingAdminPIN)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = client.Settings.GetSetting(ctx, entity.SettingAdminPIN)
	assert.ErrorIs(t, err, admin.ErrSettingNotFound)
}
