package blogs

import (
	"net/http"

	"ThynxSite/pkg/response"
)

var (
	ErrBlogPostNotFound    = response.NewError(http.StatusNotFound, "Blog post not found")
	ErrInvalidBlogPostData = response.NewError(http.StatusBadRequest, "Invalid blog post data")
	ErrFetchBlogPosts      = response.NewError(http.StatusInternalServerError, "Failed to fetch blog posts")
	ErrFetchBlogPost       = response.NewError(http.StatusInternalServerError, "Failed to fetch blog post")
	ErrCreateBlogPost      = response.NewError(http.StatusInternalServerError, "Failed to create blog post")
	ErrUpdateBlogPost      = response.NewError(http.StatusInternalServerError, "Failed to update blog post")
	ErrDeleteBlogPost      = response.NewError(http.StatusInternalServerError, "Failed to delete blog post")
	ErrLikeBlogPost        = response.NewError(http.StatusInternalServerError, "Failed to like blog post")
	ErrCommentBlogPost     = response.NewError(http.StatusInternalServerError, "Failed to add comment")
)
