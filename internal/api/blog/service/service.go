package blogService

import (
	blogs "ThynxSite/internal/api/blog"
	blogRepository "ThynxSite/internal/api/blog/repository"
	"ThynxSite/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBlogPostService interface {
	GetAllBlogPosts(ctx context.Context) ([]blogs.BlogPostResponse, error)
	GetBlogPostByID(ctx context.Context, id string) (blogs.BlogPostResponse, error)
	CreateBlogPost(ctx context.Context, req blogs.CreateBlogPostRequest) (blogs.BlogPostResponse, error)
	UpdateBlogPost(ctx context.Context, id string, req blogs.UpdateBlogPostRequest) (blogs.BlogPostResponse, error)
	DeleteBlogPost(ctx context.Context, id string) error
	LikeBlogPost(ctx context.Context, id string) (blogs.BlogPostResponse, error)
	CommentBlogPost(ctx context.Context, id string) (blogs.BlogPostResponse, error)
}

type blogPostService struct {
	log      *logrus.Logger
	blogRepo blogRepository.Repository
	utils    utils.IUtils
}

func NewBlogPostService(
	log *logrus.Logger,
	blogRepo blogRepository.Repository,
	utils utils.IUtils,
) IBlogPostService {
	return &blogPostService{
		log:      log,
		blogRepo: blogRepo,
		utils:    utils,
	}
}
