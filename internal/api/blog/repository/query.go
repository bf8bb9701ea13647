package blogRepository

const (
	blogPostColumns = `
			id,
			category,
			title,
			excerpt,
			image_url,
			likes,
			comments,
			featured,
			published_at`

	queryCreateBlogPost = `
		INSERT INTO blog_posts (` + blogPostColumns + `
		) VALUES (
			:id,
			:category,
			:title,
			:excerpt,
			:image_url,
			:likes,
			:comments,
			:featured,
			:published_at
		)
	`

	queryGetBlogPostByID = `
		SELECT` + blogPostColumns + `
		FROM blog_posts
		WHERE id = :id
	`

	queryGetAllBlogPosts = `
		SELECT` + blogPostColumns + `
		FROM blog_posts
		ORDER BY published_at DESC, id ASC
	`

	// SET clause is filled in from the non-nil fields of the patch.
	queryUpdateBlogPost = `
		UPDATE blog_posts
		SET %s
		WHERE id = :id
	`

	// Column name comes from entity.Counter, never from input.
	queryIncrementCounter = `
		UPDATE blog_posts
		SET %[1]s = COALESCE(%[1]s, 0) + 1
		WHERE id = :id
	`

	queryDeleteBlogPost = `
		DELETE FROM blog_posts
		WHERE id = :id
	`

	queryDeleteAllBlogPosts = `
		DELETE FROM blog_posts
	`
)
