package handlerUtil

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ThynxSite/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, h fiber.Handler) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHandleCodedError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	eh := New(logger)

	status, body := run(t, func(c *fiber.Ctx) error {
		return eh.Handle(c, "req-1", response.NewError(http.StatusNotFound, "Blog post not found"), "/", "get")
	})

	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Blog post not found"}`, body)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "req-1", hook.LastEntry().Data["request_id"])
}

func TestHandleUnknownErrorHidesDetails(t *testing.T) {
	logger, hook := test.NewNullLogger()
	eh := New(logger)

	status, body := run(t, func(c *fiber.Ctx) error {
		return eh.Handle(c, "req-2", errors.New("pq: connection refused"), "/", "get")
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"error":"Internal server error"}`, body)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "pq: connection refused", hook.LastEntry().Data["error"])
}

func TestHandleValidationError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	eh := New(logger)

	status, body := run(t, func(c *fiber.Ctx) error {
		return eh.HandleValidationError(c, "req-3", errors.New("Key: 'Title' failed"), "/", "Invalid blog post data")
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Invalid blog post data"}`, body)
}

func TestHandleSuccessWithoutBody(t *testing.T) {
	logger, _ := test.NewNullLogger()
	eh := New(logger)

	status, body := run(t, func(c *fiber.Ctx) error {
		return eh.HandleSuccess(c, http.StatusNoContent, nil)
	})

	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, body)
}

func TestHandleUnauthorizedAndForbidden(t *testing.T) {
	logger, _ := test.NewNullLogger()
	eh := New(logger)

	status, body := run(t, func(c *fiber.Ctx) error {
		return eh.HandleUnauthorized(c, "req-4", "Unauthorized")
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, body)

	status, body = run(t, func(c *fiber.Ctx) error {
		return eh.HandleForbidden(c, "req-5", "Invalid CSRF token")
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.JSONEq(t, `{"error":"Invalid CSRF token"}`, body)
}
