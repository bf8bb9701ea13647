// Package seed replaces the blog posts with a small rotating selection so a
// fresh deployment has content on its landing page.
package seed

import (
	"math/rand/v2"
	"time"

	blogRepository "ThynxSite/internal/api/blog/repository"
	"ThynxSite/internal/entity"
	"ThynxSite/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	postsPerDay    = 4
	daysBetween    = 2
	minLikes       = 50
	likesSpread    = 200
	minComments    = 10
	commentsSpread = 50
)

type Seeder struct {
	repo  blogRepository.Repository
	utils utils.IUtils
	log   *logrus.Logger
	now   func() time.Time
	rand  *rand.Rand
}

type Option func(*Seeder)

func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		s.now = now
	}
}

func WithRand(r *rand.Rand) Option {
	return func(s *Seeder) {
		s.rand = r
	}
}

func New(repo blogRepository.Repository, utils utils.IUtils, log *logrus.Logger, opts ...Option) *Seeder {
	s := &Seeder{
		repo:  repo,
		utils: utils,
		log:   log,
		now:   time.Now,
		rand:  rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DailyPosts picks postsPerDay consecutive entries of the pool starting at an
// offset derived from the day of year. Only the first one is featured.
func (s *Seeder) DailyPosts() ([]entity.BlogPost, error) {
	today := s.now().UTC()
	start := (today.YearDay() * postsPerDay) % len(contentPool)

	posts := make([]entity.BlogPost, 0, postsPerDay)
	for i := 0; i < postsPerDay; i++ {
		item := contentPool[(start+i)%len(contentPool)]

		id, err := s.utils.NewUUID()
		if err != nil {
			return nil, err
		}

		excerpt, imageURL := item.Excerpt, item.ImageURL
		posts = append(posts, entity.BlogPost{
			ID:          id,
			Category:    item.Category,
			Title:       item.Title,
			Excerpt:     &excerpt,
			ImageURL:    &imageURL,
			Likes:       minLikes + s.rand.IntN(likesSpread),
			Comments:    minComments + s.rand.IntN(commentsSpread),
			Featured:    i == 0,
			PublishedAt: today.AddDate(0, 0, -i*daysBetween),
		})
	}

	return posts, nil
}

// Run deletes every blog post and inserts the daily selection in one
// transaction.
func (s *Seeder) Run(ctx context.Context) error {
	posts, err := s.DailyPosts()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to build seed posts")
		return err
	}

	client, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to begin seed transaction")
		return err
	}
	defer func() {
		_ = client.Rollback()
	}()

	removed, err := client.BlogPosts.DeleteAllBlogPosts(ctx)
	if err != nil {
		return err
	}

	for _, post := range posts {
		if err := client.BlogPosts.InsertBlogPost(ctx, post); err != nil {
			return err
		}
	}

	if err := client.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to commit seed transaction")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"removed":  removed,
		"inserted": len(posts),
	}).Info("Blog posts seeded")

	return nil
}
