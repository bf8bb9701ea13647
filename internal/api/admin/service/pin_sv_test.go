package adminService

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"ThynxSite/database/migration"
	"ThynxSite/database/sqlite"
	"ThynxSite/internal/api/admin"
	adminRepository "ThynxSite/internal/api/admin/repository"
	"ThynxSite/pkg/bcrypt"
	"ThynxSite/pkg/utils"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) IAdminService {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger, _ := test.NewNullLogger()
	require.NoError(t, migration.Migrate(context.Background(), db, logger))

	return NewAdminService(logger, adminRepository.New(db, logger), bcrypt.NewWithCost(4), utils.New())
}

func TestPinLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	isSet, err := svc.PinStatus(ctx)
	require.NoError(t, err)
	assert.False(t, isSet)

	_, _, err = svc.VerifyPIN(ctx, "1234")
	assert.ErrorIs(t, err, admin.ErrPinNotSet)

	version, err := svc.SetPIN(ctx, "1234")
	require.NoError(t, err)
	assert.NotEmpty(t, version)

	_, err = svc.SetPIN(ctx, "9999")
	assert.ErrorIs(t, err, admin.ErrPinAlreadySet)

	isSet, err = svc.PinStatus(ctx)
	require.NoError(t, err)
	assert.True(t, isSet)

	current, err := svc.PinVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, version, current)

	valid, matched, err := svc.VerifyPIN(ctx, "1234")
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, version, matched)

	valid, matched, err = svc.VerifyPIN(ctx, "9999")
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Empty(t, matched)

	require.NoError(t, svc.ResetPIN(ctx))
	isSet, err = svc.PinStatus(ctx)
	require.NoError(t, err)
	assert.False(t, isSet)

	current, err = svc.PinVersion(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)

	require.NoError(t, svc.ResetPIN(ctx))
}

func TestReplacePIN(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ReplacePIN(ctx, "1111"))
	first, err := svc.PinVersion(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.ReplacePIN(ctx, "2222"))
	second, err := svc.PinVersion(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	valid, _, err := svc.VerifyPIN(ctx, "1111")
	require.NoError(t, err)
	assert.False(t, valid)

	valid, matched, err := svc.VerifyPIN(ctx, "2222")
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, second, matched)
}

func TestConcurrentSetPINHasOneWinner(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SetPIN(ctx, "1234")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, rejected int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, admin.ErrPinAlreadySet):
			rejected++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, rejected)
}
