package blogRepository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	blogs "ThynxSite/internal/api/blog"
	"ThynxSite/internal/entity"
	contextPkg "ThynxSite/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type BlogPostDB struct {
	ID          sql.NullString `db:"id"`
	Category    sql.NullString `db:"category"`
	Title       sql.NullString `db:"title"`
	Excerpt     sql.NullString `db:"excerpt"`
	ImageURL    sql.NullString `db:"image_url"`
	Likes       sql.NullInt64  `db:"likes"`
	Comments    sql.NullInt64  `db:"comments"`
	Featured    sql.NullBool   `db:"featured"`
	PublishedAt time.Time      `db:"published_at"`
}

func (r *blogPostsRepository) CreateBlogPost(ctx context.Context, post entity.BlogPost) (entity.BlogPost, error) {
	if err := r.InsertBlogPost(ctx, post); err != nil {
		return entity.BlogPost{}, err
	}
	return r.GetBlogPostByID(ctx, post.ID)
}

func (r *blogPostsRepository) InsertBlogPost(ctx context.Context, post entity.BlogPost) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           post.ID,
		"category":     post.Category,
		"title":        post.Title,
		"excerpt":      nullString(post.Excerpt),
		"image_url":    nullString(post.ImageURL),
		"likes":        post.Likes,
		"comments":     post.Comments,
		"featured":     post.Featured,
		"published_at": post.PublishedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlogPost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for InsertBlogPost")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when inserting blog post")
		return err
	}

	return nil
}

func (r *blogPostsRepository) GetBlogPostByID(ctx context.Context, id string) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var post BlogPostDB

	query, args, err := sqlx.Named(queryGetBlogPostByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogPostByID named query preparation err")
		return entity.BlogPost{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogPostByID no rows found")
			return entity.BlogPost{}, blogs.ErrBlogPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogPostByID execution err")
		return entity.BlogPost{}, err
	}

	return r.makeBlogPost(post), nil
}

func (r *blogPostsRepository) GetAllBlogPosts(ctx context.Context) ([]entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []BlogPostDB

	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(queryGetAllBlogPosts)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBlogPosts execution err")
		return nil, err
	}

	posts := make([]entity.BlogPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, r.makeBlogPost(row))
	}

	return posts, nil
}

func (r *blogPostsRepository) UpdateBlogPost(ctx context.Context, id string, patch entity.BlogPostPatch) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if patch.IsEmpty() {
		return r.GetBlogPostByID(ctx, id)
	}

	sets, argsKV := buildBlogPostSet(patch)
	argsKV["id"] = id

	query, args, err := sqlx.Named(fmt.Sprintf(queryUpdateBlogPost, strings.Join(sets, ", ")), argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlogPost named query preparation err")
		return entity.BlogPost{}, err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlogPost execution err")
		return entity.BlogPost{}, err
	}

	if err := r.requireAffected(res, requestID, "UpdateBlogPost"); err != nil {
		return entity.BlogPost{}, err
	}

	return r.GetBlogPostByID(ctx, id)
}

func (r *blogPostsRepository) DeleteBlogPost(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBlogPost, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlogPost named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlogPost execution err")
		return err
	}

	return r.requireAffected(res, requestID, "DeleteBlogPost")
}

func (r *blogPostsRepository) DeleteAllBlogPosts(ctx context.Context) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	res, err := r.q.ExecContext(ctx, r.q.Rebind(queryDeleteAllBlogPosts))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteAllBlogPosts execution err")
		return 0, err
	}

	return res.RowsAffected()
}

// IncrementCounter bumps one counter column in a single UPDATE so concurrent
// calls never lose an increment, then returns the updated row.
func (r *blogPostsRepository) IncrementCounter(ctx context.Context, id string, counter entity.Counter) (entity.BlogPost, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !counter.Valid() {
		return entity.BlogPost{}, fmt.Errorf("unknown blog post counter %q", counter)
	}

	query, args, err := sqlx.Named(fmt.Sprintf(queryIncrementCounter, string(counter)), map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("IncrementCounter named query preparation err")
		return entity.BlogPost{}, err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"counter":    counter,
			"error":      err.Error(),
		}).Error("IncrementCounter execution err")
		return entity.BlogPost{}, err
	}

	if err := r.requireAffected(res, requestID, "IncrementCounter"); err != nil {
		return entity.BlogPost{}, err
	}

	return r.GetBlogPostByID(ctx, id)
}

func (r *blogPostsRepository) requireAffected(res sql.Result, requestID, operation string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " rows affected err")
		return err
	}
	if affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn(operation + " no rows found")
		return blogs.ErrBlogPostNotFound
	}
	return nil
}

func buildBlogPostSet(patch entity.BlogPostPatch) ([]string, map[string]interface{}) {
	sets := make([]string, 0, 7)
	argsKV := make(map[string]interface{}, 8)

	if patch.Category != nil {
		sets = append(sets, "category = :category")
		argsKV["category"] = *patch.Category
	}
	if patch.Title != nil {
		sets = append(sets, "title = :title")
		argsKV["title"] = *patch.Title
	}
	if patch.Excerpt.Set {
		sets = append(sets, "excerpt = :excerpt")
		argsKV["excerpt"] = nullString(patch.Excerpt.Value)
	}
	if patch.ImageURL.Set {
		sets = append(sets, "image_url = :image_url")
		argsKV["image_url"] = nullString(patch.ImageURL.Value)
	}
	if patch.Likes != nil {
		sets = append(sets, "likes = :likes")
		argsKV["likes"] = *patch.Likes
	}
	if patch.Comments != nil {
		sets = append(sets, "comments = :comments")
		argsKV["comments"] = *patch.Comments
	}
	if patch.Featured != nil {
		sets = append(sets, "featured = :featured")
		argsKV["featured"] = *patch.Featured
	}

	return sets, argsKV
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func (r *blogPostsRepository) makeBlogPost(row BlogPostDB) entity.BlogPost {
	post := entity.BlogPost{
		ID:          row.ID.String,
		Category:    row.Category.String,
		Title:       row.Title.String,
		Likes:       int(row.Likes.Int64),
		Comments:    int(row.Comments.Int64),
		Featured:    row.Featured.Bool,
		PublishedAt: row.PublishedAt,
	}
	if row.Excerpt.Valid {
		excerpt := row.Excerpt.String
		post.Excerpt = &excerpt
	}
	if row.ImageURL.Valid {
		imageURL := row.ImageURL.String
		post.ImageURL = &imageURL
	}
	return post
}
