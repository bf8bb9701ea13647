package subscriberService

import (
	"context"
	"path/filepath"
	"testing"

	"ThynxSite/database/migration"
	"ThynxSite/database/sqlite"
	subscribers "ThynxSite/internal/api/subscriber"
	subscriberRepository "ThynxSite/internal/api/subscriber/repository"
	"ThynxSite/pkg/utils"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (ISubscriberService, *sqlx.DB) {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "subscriber.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger, _ := test.NewNullLogger()
	require.NoError(t, migration.Migrate(context.Background(), db, logger))

	return NewSubscriberService(logger, subscriberRepository.New(db, logger), utils.New()), db
}

func TestSubscribeOnce(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, subscribers.CreateSubscriberRequest{Email: "reader@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", sub.Email)
	assert.False(t, sub.SubscribedAt.IsZero())

	_, err = svc.Subscribe(ctx, subscribers.CreateSubscriberRequest{Email: "reader@example.com"})
	assert.ErrorIs(t, err, subscribers.ErrEmailAlreadySubscribed)

	list, err := svc.GetAllSubscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteSubscriber(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, subscribers.CreateSubscriberRequest{Email: "gone@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSubscriber(ctx, sub.ID))
	assert.ErrorIs(t, svc.DeleteSubscriber(ctx, sub.ID), subscribers.ErrSubscriberNotFound)
}

func TestStorageFailuresBecomeDomainErrors(t *testing.T) {
	svc, db := newTestService(t)
	require.NoError(t, db.Close())
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, subscribers.CreateSubscriberRequest{Email: "x@example.com"})
	assert.ErrorIs(t, err, subscribers.ErrCreateSubscriber)

	_, err = svc.GetAllSubscribers(ctx)
	assert.ErrorIs(t, err, subscribers.ErrFetchSubscribers)

	assert.ErrorIs(t, svc.DeleteSubscriber(ctx, "any"), subscribers.ErrDeleteSubscriber)
}
