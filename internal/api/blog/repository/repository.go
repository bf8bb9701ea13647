package blogRepository

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
		BlogPosts: &blogPostsRepository{q: sqlExecutor, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	BlogPosts interface {
		// CreateBlogPost inserts the post and returns it as stored.
		CreateBlogPost(ctx context.Context, post entity.BlogPost) (entity.BlogPost, error)
		InsertBlogPost(ctx context.Context, post entity.BlogPost) error
		GetBlogPostByID(ctx context.Context, id string) (entity.BlogPost, error)
		GetAllBlogPosts(ctx context.Context) ([]entity.BlogPost, error)
		UpdateBlogPost(ctx context.Context, id string, patch entity.BlogPostPatch) (entity.BlogPost, error)
		DeleteBlogPost(ctx context.Context, id string) error
		DeleteAllBlogPosts(ctx context.Context) (int64, error)
		IncrementCounter(ctx context.Context, id string, counter entity.Counter) (entity.BlogPost, error)
	}

	Commit   func() error
	Rollback func() error
}

type blogPostsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
