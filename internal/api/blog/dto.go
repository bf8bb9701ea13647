package blogs

import (
	"time"

	"ThynxSite/internal/entity"

	"github.com/go-playground/validator/v10"
)

type CreateBlogPostRequest struct {
	Category string  `json:"category" validate:"required,max=255"`
	Title    string  `json:"title" validate:"required,max=500"`
	Excerpt  *string `json:"excerpt" validate:"omitnil,max=2000"`
	ImageURL *string `json:"imageUrl" validate:"omitnil,max=2048"`
	Likes    *int    `json:"likes" validate:"omitnil,min=0"`
	Comments *int    `json:"comments" validate:"omitnil,min=0"`
	Featured *bool   `json:"featured"`
}

// UpdateBlogPostRequest is a partial update. Excerpt and ImageURL may be sent
// as null to clear them.
type UpdateBlogPostRequest struct {
	Category *string                 `json:"category" validate:"omitnil,max=255"`
	Title    *string                 `json:"title" validate:"omitnil,max=500"`
	Excerpt  entity.Optional[string] `json:"excerpt"`
	ImageURL entity.Optional[string] `json:"imageUrl"`
	Likes    *int                    `json:"likes" validate:"omitnil,min=0"`
	Comments *int                    `json:"comments" validate:"omitnil,min=0"`
	Featured *bool                   `json:"featured"`
}

// ValidateClearable checks the lengths of the fields that accept null.
func (r UpdateBlogPostRequest) ValidateClearable(v *validator.Validate) error {
	if err := v.Var(r.Excerpt.Value, "omitnil,max=2000"); err != nil {
		return err
	}
	return v.Var(r.ImageURL.Value, "omitnil,max=2048")
}

func (r UpdateBlogPostRequest) Patch() entity.BlogPostPatch {
	return entity.BlogPostPatch{
		Category: r.Category,
		Title:    r.Title,
		Excerpt:  r.Excerpt,
		ImageURL: r.ImageURL,
		Likes:    r.Likes,
		Comments: r.Comments,
		Featured: r.Featured,
	}
}

type BlogPostResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Excerpt     *string   `json:"excerpt"`
	ImageURL    *string   `json:"imageUrl"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Featured    bool      `json:"featured"`
	PublishedAt time.Time `json:"publishedAt"`
}

func NewBlogPostResponse(post entity.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:          post.ID,
		Category:    post.Category,
		Title:       post.Title,
		Excerpt:     post.Excerpt,
		ImageURL:    post.ImageURL,
		Likes:       post.Likes,
		Comments:    post.Comments,
		Featured:    post.Featured,
		PublishedAt: post.PublishedAt,
	}
}

func NewBlogPostListResponse(posts []entity.BlogPost) []BlogPostResponse {
	res := make([]BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		res = append(res, NewBlogPostResponse(p))
	}
	return res
}
