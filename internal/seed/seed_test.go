package seed

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"ThynxSite/database/migration"
	"ThynxSite/database/sqlite"
	blogRepository "ThynxSite/internal/api/blog/repository"
	"ThynxSite/internal/entity"
	"ThynxSite/pkg/utils"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeeder(t *testing.T, now time.Time) (*Seeder, blogRepository.Repository) {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger, _ := test.NewNullLogger()
	require.NoError(t, migration.Migrate(context.Background(), db, logger))

	repo := blogRepository.New(db, logger)
	s := New(repo, utils.New(), logger,
		WithClock(func() time.Time { return now }),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	return s, repo
}

func TestDailyPostsRotation(t *testing.T) {
	// 10 January is day 10, so the selection starts at 40 mod len(pool).
	now := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
	s, _ := newTestSeeder(t, now)

	posts, err := s.DailyPosts()
	require.NoError(t, err)
	require.Len(t, posts, postsPerDay)

	start := (10 * postsPerDay) % len(contentPool)
	for i, post := range posts {
		want := contentPool[(start+i)%len(contentPool)]
		assert.Equal(t, want.Title, post.Title)
		assert.Equal(t, want.Category, post.Category)
		require.NotNil(t, post.Excerpt)
		assert.Equal(t, want.Excerpt, *post.Excerpt)
		assert.Equal(t, i == 0, post.Featured)
		assert.Equal(t, now.AddDate(0, 0, -2*i), post.PublishedAt)
		assert.GreaterOrEqual(t, post.Likes, 50)
		assert.Less(t, post.Likes, 250)
		assert.GreaterOrEqual(t, post.Comments, 10)
		assert.Less(t, post.Comments, 60)
		assert.NotEmpty(t, post.ID)
	}
}

func TestDailyPostsUseUTCDay(t *testing.T) {
	// 02:00 on 11 January at UTC+5 is still 10 January in UTC.
	now := time.Date(2025, time.January, 11, 2, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60))
	s, _ := newTestSeeder(t, now)

	posts, err := s.DailyPosts()
	require.NoError(t, err)
	require.Len(t, posts, postsPerDay)

	start := (10 * postsPerDay) % len(contentPool)
	assert.Equal(t, contentPool[start].Title, posts[0].Title)
	for _, post := range posts {
		assert.Equal(t, time.UTC, post.PublishedAt.Location())
	}
	assert.True(t, now.Equal(posts[0].PublishedAt))
}

func TestRunReplacesPosts(t *testing.T) {
	now := time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)
	s, repo := newTestSeeder(t, now)
	ctx := context.Background()

	client, err := repo.NewClient(false)
	require.NoError(t, err)
	_, err = client.BlogPosts.CreateBlogPost(ctx, entity.BlogPost{
		ID:          "old-post",
		Category:    "Old",
		Title:       "Stale",
		PublishedAt: now.AddDate(-1, 0, 0),
	})
	require.NoError(t, err)

	require.NoError(t, s.Run(ctx))
	// A second run must still leave exactly one day's selection.
	require.NoError(t, s.Run(ctx))

	posts, err := client.BlogPosts.GetAllBlogPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, postsPerDay)

	for _, post := range posts {
		assert.NotEqual(t, "old-post", post.ID)
	}
	assert.True(t, posts[0].Featured)
	assert.WithinDuration(t, now, posts[0].PublishedAt, time.Second)
}
