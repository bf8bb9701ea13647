package entity

// BlogPostPatch lists the columns a partial update may touch. A nil field or
// an unset Optional is left unchanged.
type BlogPostPatch struct {
	Category *string
	Title    *string
	Excerpt  Optional[string]
	ImageURL Optional[string]
	Likes    *int
	Comments *int
	Featured *bool
}

func (p BlogPostPatch) IsEmpty() bool {
	return p.Category == nil && p.Title == nil && !p.Excerpt.Set && !p.ImageURL.Set &&
		p.Likes == nil && p.Comments == nil && p.Featured == nil
}

// Counter names an increment-only column of blog_posts.
type Counter string

const (
	CounterLikes    Counter = "likes"
	CounterComments Counter = "comments"
)

func (c Counter) Valid() bool {
	return c == CounterLikes || c == CounterComments
}
