package contactRepository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"ThynxSite/database/migration"
	"ThynxSite/database/sqlite"
	contacts "ThynxSite/internal/api/contact"
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

	db, err := sqlite.New(filepath.Join(t.TempDir(), "contact.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger, _ := test.NewNullLogger()
	require.NoError(t, migration.Migrate(context.Background(), db, logger))

	client, err := New(db, logger).NewClient(false)
	require.NoError(t, err)
	return client
}

func submission(id string, at time.Time) entity.ContactSubmission {
	return entity.ContactSubmission{
		ID:          id,
		Name:        "Ada",
		Email:       "ada@example.com",
		Message:     "Hello there",
		SubmittedAt: at,
	}
}

func TestCreateSubmissionDefaults(t *testing.T) {
	client := newTestClient(t)

	created, err := client.Submissions.CreateSubmission(context.Background(), submission("s1", time.Now().UTC()))
	require.NoError(t, err)

	assert.Equal(t, "s1", created.ID)
	assert.False(t, created.Read)
	assert.Nil(t, created.Phone)
	assert.Nil(t, created.Subject)
}

func TestGetAllSubmissionsNewestFirst(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := client.Submissions.CreateSubmission(ctx, submission("older", now.Add(-time.Hour)))
	require.NoError(t, err)
	_, err = client.Submissions.CreateSubmission(ctx, submission("newer", now))
	require.NoError(t, err)

	list, err := client.Submissions.GetAllSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "newer", list[0].ID)
	assert.Equal(t, "older", list[1].ID)
}

func TestMarkSubmissionReadIsIdempotent(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Submissions.CreateSubmission(ctx, submission("s1", time.Now().UTC()))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		got, err := client.Submissions.MarkSubmissionRead(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, got.Read)
	}

	_, err = client.Submissions.MarkSubmissionRead(ctx, "missing")
	assert.ErrorIs(t, err, contacts.ErrContactSubmissionNotFound)
}

func TestDeleteSubmission(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Submissions.CreateSubmission(ctx, submission("s1", time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, client.Submissions.DeleteSubmission(ctx, "s1"))
	assert.ErrorIs(t, client.Submissions.DeleteSubmission(ctx, "s1"), contacts.ErrContactSubmissionNotFound)
}
