package blogService

import (
	"errors"
	"time"

	blogs "ThynxSite/internal/api/blog"
	"ThynxSite/internal/entity"
	contextPkg "ThynxSite/pkg/context"
	"ThynxSite/pkg/response"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogPostService) GetAllBlogPosts(ctx context.Context) ([]blogs.BlogPostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return nil, blogs.ErrFetchBlogPosts
	}

	posts, err := repo.BlogPosts.GetAllBlogPosts(ctx)
	if err != nil {
		s.logFailure(requestID, err, "Failed to fetch blog posts")
		return nil, blogs.ErrFetchBlogPosts
	}

	return blogs.NewBlogPostListResponse(posts), nil
}

func (s *blogPostService) GetBlogPostByID(ctx context.Context, id string) (blogs.BlogPostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return blogs.BlogPostResponse{}, blogs.ErrFetchBlogPost
	}

	post, err := repo.BlogPosts.GetBlogPostByID(ctx, id)
	if err != nil {
		return blogs.BlogPostResponse{}, s.wrap(requestID, err, blogs.ErrFetchBlogPost)
	}

	return blogs.NewBlogPostResponse(post), nil
}

func (s *blogPostService) CreateBlogPost(ctx context.Context, req blogs.CreateBlogPostRequest) (blogs.BlogPostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewUUID()
	if err != nil {
		s.logFailure(requestID, err, "Failed to generate blog post id")
		return blogs.BlogPostResponse{}, blogs.ErrCreateBlogPost
	}

	post := entity.BlogPost{
		ID:          id,
		Category:    req.Category,
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		ImageURL:    req.ImageURL,
		PublishedAt: time.Now().UTC(),
	}
	if req.Likes != nil {
		post.Likes = *req.Likes
	}
	if req.Comments != nil {
		post.Comments = *req.Comments
	}
	if req.Featured != nil {
		post.Featured = *req.Featured
	}

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return blogs.BlogPostResponse{}, blogs.ErrCreateBlogPost
	}

	created, err := repo.BlogPosts.CreateBlogPost(ctx, post)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create blog post")
		return blogs.BlogPostResponse{}, blogs.ErrCreateBlogPost
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         created.ID,
	}).Info("Blog post created")

	return blogs.NewBlogPostResponse(created), nil
}

func (s *blogPostService) UpdateBlogPost(ctx context.Context, id string, req blogs.UpdateBlogPostRequest) (blogs.BlogPostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return blogs.BlogPostResponse{}, blogs.ErrUpdateBlogPost
	}

	updated, err := repo.BlogPosts.UpdateBlogPost(ctx, id, req.Patch())
	if err != nil {
		return blogs.BlogPostResponse{}, s.wrap(requestID, err, blogs.ErrUpdateBlogPost)
	}

	return blogs.NewBlogPostResponse(updated), nil
}

func (s *blogPostService) DeleteBlogPost(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return blogs.ErrDeleteBlogPost
	}

	if err := repo.BlogPosts.DeleteBlogPost(ctx, id); err != nil {
		return s.wrap(requestID, err, blogs.ErrDeleteBlogPost)
	}

	return nil
}

func (s *blogPostService) LikeBlogPost(ctx context.Context, id string) (blogs.BlogPostResponse, error) {
	return s.increment(ctx, id, entity.CounterLikes, blogs.ErrLikeBlogPost)
}

func (s *blogPostService) CommentBlogPost(ctx context.Context, id string) (blogs.BlogPostResponse, error) {
	return s.increment(ctx, id, entity.CounterComments, blogs.ErrCommentBlogPost)
}

func (s *blogPostService) increment(ctx context.Context, id string, counter entity.Counter, failure error) (blogs.BlogPostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return blogs.BlogPostResponse{}, failure
	}

	post, err := repo.BlogPosts.IncrementCounter(ctx, id, counter)
	if err != nil {
		return blogs.BlogPostResponse{}, s.wrap(requestID, err, failure)
	}

	return blogs.NewBlogPostResponse(post), nil
}

// wrap passes coded errors through and turns storage failures into failure.
func (s *blogPostService) wrap(requestID string, err error, failure error) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		return err
	}
	s.logFailure(requestID, err, failure.Error())
	return failure
}

func (s *blogPostService) logFailure(requestID string, err error, msg string) {
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
	}).Error(msg)
}
