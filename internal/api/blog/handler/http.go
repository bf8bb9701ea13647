package blogHandler

import (
	blogService "ThynxSite/internal/api/blog/service"
	"ThynxSite/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogPostHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	blogService blogService.IBlogPostService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogService.IBlogPostService,
) *BlogPostHandler {
	return &BlogPostHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		blogService: bs,
	}
}

func (h *BlogPostHandler) Start(srv fiber.Router) {
	posts := srv.Group("/blog-posts")

	posts.Get("/", h.GetAllBlogPosts)
	posts.Get("/:id", h.GetBlogPostByID)
	posts.Post("/", h.CreateBlogPost)
	posts.Patch("/:id", h.UpdateBlogPost)
	posts.Delete("/:id", h.DeleteBlogPost)

	posts.Post("/:id/like", h.LikeBlogPost)
	posts.Post("/:id/comment", h.CommentBlogPost)
}
