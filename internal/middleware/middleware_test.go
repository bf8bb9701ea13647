package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"ThynxSite/pkg/session"
	"ThynxSite/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type stubPins struct {
	mu      sync.Mutex
	version string
	err     error
}

func (p *stubPins) PinVersion(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.version, p.err
}

func (p *stubPins) set(version string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.version, p.err = version, err
}

type testEnv struct {
	app    *fiber.App
	hook   *test.Hook
	pins   *stubPins
	cookie *http.Cookie
	token  string
}

func newTestEnv(t *testing.T, cfg Config) *testEnv {
	t.Helper()

	logger, hook := test.NewNullLogger()
	sessions := session.New(session.Config{}, utils.New())
	pins := &stubPins{version: "pin-v1"}
	m := New(logger, sessions, pins, cfg)

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Use(m.NewLoggingMiddleware())

	env := &testEnv{app: app, hook: hook, pins: pins}

	app.Post("/login", func(c *fiber.Ctx) error {
		st, err := sessions.Load(c)
		if err != nil {
			return err
		}
		token, err := st.Authenticate("pin-v1")
		if err != nil {
			return err
		}
		if err := st.Save(); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"csrfToken": token})
	})
	app.Post("/guarded", m.RequireAdminAuth, m.VerifyCSRFToken, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/csrf-only", m.VerifyCSRFToken, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/limited", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/pin-limited", m.NewPinRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "teapot")
	})

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, headers map[string]string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(`{"pin":"1234","name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if e.cookie != nil {
		req.AddCookie(e.cookie)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			e.cookie = c
		}
	}

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	resp, body := e.do(t, http.MethodPost, "/login", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, e.cookie)

	var payload struct {
		CSRFToken string `json:"csrfToken"`
	}
	require.NoError(t, e.app.Config().JSONDecoder([]byte(body), &payload))
	e.token = payload.CSRFToken
}

func TestRequireAdminAuthRejectsAnonymous(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())

	resp, body := env.do(t, http.MethodPost, "/guarded", map[string]string{CSRFHeader: "anything"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, body)
}

func TestRequireAdminAuthTracksPinVersion(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())
	env.login(t)

	resp, _ := env.do(t, http.MethodPost, "/guarded", map[string]string{CSRFHeader: env.token})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	env.pins.set("", nil)
	resp, body := env.do(t, http.MethodPost, "/guarded", map[string]string{CSRFHeader: env.token})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, body)

	env.pins.set("pin-v2", nil)
	resp, _ = env.do(t, http.MethodPost, "/guarded", map[string]string{CSRFHeader: env.token})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	env.pins.set("pin-v1", errors.New("db down"))
	resp, body = env.do(t, http.MethodPost, "/guarded", map[string]string{CSRFHeader: env.token})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Internal server error"}`, body)
}

func TestVerifyCSRFToken(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())
	env.login(t)

	resp, body := env.do(t, http.MethodPost, "/guarded", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Invalid CSRF token"}`, body)

	resp, _ = env.do(t, http.MethodPost, "/guarded", map[string]string{CSRFHeader: env.token + "0"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPost, "/guarded", map[string]string{CSRFHeader: env.token})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestVerifyCSRFTokenWithoutSessionToken(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())

	resp, _ := env.do(t, http.MethodPost, "/csrf-only", map[string]string{CSRFHeader: ""})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRateLimiters(t *testing.T) {
	cfg := Config{GeneralRate: rate.Limit(0.001), GeneralBurst: 2, PinRate: rate.Limit(0.001), PinBurst: 1}
	env := newTestEnv(t, cfg)

	for i := 0; i < 2; i++ {
		resp, _ := env.do(t, http.MethodPost, "/limited", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp, body := env.do(t, http.MethodPost, "/limited", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Too many requests"}`, body)

	resp, _ = env.do(t, http.MethodPost, "/pin-limited", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = env.do(t, http.MethodPost, "/pin-limited", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRequestIDIsEchoed(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())

	resp, _ := env.do(t, http.MethodPost, "/limited", map[string]string{RequestIDKey: "abc"})
	assert.Equal(t, "abc", resp.Header.Get(RequestIDKey))

	resp, _ = env.do(t, http.MethodPost, "/limited", nil)
	assert.Len(t, resp.Header.Get(RequestIDKey), 26)
}

func TestLoggingMiddlewareMasksSecrets(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())

	env.do(t, http.MethodPost, "/limited", nil)

	var found bool
	for _, entry := range env.hook.AllEntries() {
		if entry.Data["path"] != "/limited" {
			continue
		}
		found = true
		body, _ := entry.Data["request_body"].(string)
		assert.Contains(t, body, `"pin":"[SECRET]"`)
		assert.NotContains(t, body, "1234")
		assert.Equal(t, logrus.InfoLevel, entry.Level)
	}
	assert.True(t, found)
}

func TestLoggingMiddlewareRecordsErrorStatus(t *testing.T) {
	env := newTestEnv(t, DefaultConfig())

	resp, _ := env.do(t, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	entry := env.hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, logrus.WarnLevel, entry.Level)
}

func TestSanitizeRequestBody(t *testing.T) {
	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody([]byte("pin=1234")))
	assert.JSONEq(t, `{"email":"a@b.c","Password":"[SECRET]"}`, sanitizeRequestBody([]byte(`{"email":"a@b.c","Password":"x"}`)))
}
