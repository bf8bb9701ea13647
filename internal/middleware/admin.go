package middleware

import (
	"crypto/subtle"
	"net/http"

	contextPkg "ThynxSite/pkg/context"
	"ThynxSite/pkg/handlerUtil"
	"ThynxSite/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const CSRFHeader = "X-CSRF-Token"

var (
	ErrUnauthorized     = response.NewError(http.StatusUnauthorized, "Unauthorized")
	ErrInvalidCSRFToken = response.NewError(http.StatusForbidden, "Invalid CSRF token")
)

// RequireAdminAuth lets the request through only when the caller's session
// carries the admin flag for the PIN that is configured right now.
func (m *middleware) RequireAdminAuth(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)
	errHandler := handlerUtil.New(m.log)

	st, err := m.sessions.Load(ctx)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load admin session")
		return errHandler.HandleUnauthorized(ctx, requestID, ErrUnauthorized.Error())
	}

	pinVersion, err := m.pins.PinVersion(contextPkg.FromFiberCtx(ctx))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "require_admin_auth")
	}

	if !st.AuthenticatedFor(pinVersion) {
		return errHandler.HandleUnauthorized(ctx, requestID, ErrUnauthorized.Error())
	}

	return ctx.Next()
}

// VerifyCSRFToken compares the X-CSRF-Token header with the token stored in
// the session. A session without a token never matches.
func (m *middleware) VerifyCSRFToken(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)
	errHandler := handlerUtil.New(m.log)

	st, err := m.sessions.Load(ctx)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load admin session")
		return errHandler.HandleForbidden(ctx, requestID, ErrInvalidCSRFToken.Error())
	}

	expected := st.CSRFToken()
	provided := ctx.Get(CSRFHeader)
	if expected == "" || provided == "" ||
		subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) != 1 {
		return errHandler.HandleForbidden(ctx, requestID, ErrInvalidCSRFToken.Error())
	}

	return ctx.Next()
}
