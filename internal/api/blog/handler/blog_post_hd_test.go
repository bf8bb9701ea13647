package blogHandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"ThynxSite/database/migration"
	"ThynxSite/database/sqlite"
	adminRepository "ThynxSite/internal/api/admin/repository"
	adminService "ThynxSite/internal/api/admin/service"
	blogs "ThynxSite/internal/api/blog"
	blogRepository "ThynxSite/internal/api/blog/repository"
	blogService "ThynxSite/internal/api/blog/service"
	"ThynxSite/internal/middleware"
	"ThynxSite/pkg/bcrypt"
	"ThynxSite/pkg/session"
	"ThynxSite/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger, _ := test.NewNullLogger()
	require.NoError(t, migration.Migrate(context.Background(), db, logger))

	u := utils.New()
	sessions := session.New(session.Config{}, u)
	t.Cleanup(func() { _ = sessions.Close() })

	pins := adminService.NewAdminService(logger, adminRepository.New(db, logger), bcrypt.NewWithCost(4), u)
	mw := middleware.New(logger, sessions, pins, middleware.DefaultConfig())
	svc := blogService.NewBlogPostService(logger, blogRepository.New(db, logger), u)

	app := fiber.New(fiber.Config{JSONEncoder: jsoniter.Marshal, JSONDecoder: jsoniter.Unmarshal})
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, validator.New(validator.WithRequiredStructEnabled()), mw, svc).Start(app.Group("/api"))

	return app
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(out)
}

func createPost(t *testing.T, app *fiber.App, body string) blogs.BlogPostResponse {
	t.Helper()

	status, out := call(t, app, http.MethodPost, "/api/blog-posts", body)
	require.Equal(t, http.StatusCreated, status, out)

	var post blogs.BlogPostResponse
	require.NoError(t, jsoniter.UnmarshalFromString(out, &post))
	return post
}

func TestCreateBlogPostAppliesDefaults(t *testing.T) {
	app := newTestApp(t)

	post := createPost(t, app, `{"category":"Tech","title":"Hello"}`)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, 0, post.Comments)
	assert.False(t, post.Featured)
	assert.Nil(t, post.Excerpt)
	assert.False(t, post.PublishedAt.IsZero())

	status, out := call(t, app, http.MethodGet, "/api/blog-posts/"+post.ID, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, out, `"imageUrl":null`)
	assert.Contains(t, out, `"publishedAt"`)
}

func TestCreateBlogPostValidation(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{
		`{"title":"Missing category"}`,
		`{"category":"Tech"}`,
		`{"category":"Tech","title":"x","likes":-1}`,
		`not json`,
	} {
		status, out := call(t, app, http.MethodPost, "/api/blog-posts", body)
		assert.Equal(t, http.StatusBadRequest, status, body)
		assert.JSONEq(t, `{"error":"Invalid blog post data"}`, out, body)
	}

	status, out := call(t, app, http.MethodGet, "/api/blog-posts", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, out)
}

func TestBlogPostNotFound(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/blog-posts/nope", ""},
		{http.MethodPatch, "/api/blog-posts/nope", `{"title":"x"}`},
		{http.MethodDelete, "/api/blog-posts/nope", ""},
		{http.MethodPost, "/api/blog-posts/nope/like", ""},
		{http.MethodPost, "/api/blog-posts/nope/comment", ""},
	}

	for _, tc := range cases {
		status, out := call(t, app, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, status, tc.path)
		assert.JSONEq(t, `{"error":"Blog post not found"}`, out, tc.path)
	}
}

func TestUpdateAndDeleteBlogPost(t *testing.T) {
	app := newTestApp(t)
	post := createPost(t, app, `{"category":"Tech","title":"Hello","excerpt":"short"}`)

	status, out := call(t, app, http.MethodPatch, "/api/blog-posts/"+post.ID, `{"title":"Updated","excerpt":null,"featured":true}`)
	require.Equal(t, http.StatusOK, status, out)

	var updated blogs.BlogPostResponse
	require.NoError(t, jsoniter.UnmarshalFromString(out, &updated))
	assert.Equal(t, "Updated", updated.Title)
	assert.True(t, updated.Featured)
	assert.Nil(t, updated.Excerpt)

	status, out = call(t, app, http.MethodDelete, "/api/blog-posts/"+post.ID, "")
	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, out)

	status, _ = call(t, app, http.MethodGet, "/api/blog-posts/"+post.ID, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUpdateBlogPostNullVersusAbsent(t *testing.T) {
	app := newTestApp(t)
	post := createPost(t, app, `{"category":"Tech","title":"Hello","excerpt":"short","imageUrl":"https://img/1.png"}`)
	path := "/api/blog-posts/" + post.ID

	status, out := call(t, app, http.MethodPatch, path, `{"title":"Renamed"}`)
	require.Equal(t, http.StatusOK, status, out)
	assert.Contains(t, out, `"excerpt":"short"`)
	assert.Contains(t, out, `"imageUrl":"https://img/1.png"`)

	status, out = call(t, app, http.MethodPatch, path, `{"excerpt":null}`)
	require.Equal(t, http.StatusOK, status, out)
	assert.Contains(t, out, `"excerpt":null`)
	assert.Contains(t, out, `"imageUrl":"https://img/1.png"`)

	status, out = call(t, app, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, out, `"excerpt":null`)
	assert.Contains(t, out, `"title":"Renamed"`)

	status, out = call(t, app, http.MethodPatch, path, `{"imageUrl":"`+strings.Repeat("x", 2049)+`"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Invalid blog post data"}`, out)

	status, out = call(t, app, http.MethodPatch, path, `{"excerpt":42}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Invalid blog post data"}`, out)
}

func TestLikesAndCommentsAccumulate(t *testing.T) {
	app := newTestApp(t)
	post := createPost(t, app, `{"category":"Tech","title":"Popular","likes":5}`)

	const n = 10
	for i := 0; i < n; i++ {
		status, _ := call(t, app, http.MethodPost, "/api/blog-posts/"+post.ID+"/like", "")
		require.Equal(t, http.StatusOK, status)
	}

	status, out := call(t, app, http.MethodPost, "/api/blog-posts/"+post.ID+"/comment", "")
	require.Equal(t, http.StatusOK, status)

	var got blogs.BlogPostResponse
	require.NoError(t, jsoniter.UnmarshalFromString(out, &got))
	assert.Equal(t, 5+n, got.Likes)
	assert.Equal(t, 1, got.Comments)
}
