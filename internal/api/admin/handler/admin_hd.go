package adminHandler

import (
	"time"

	"ThynxSite/internal/api/admin"
	contextPkg "ThynxSite/pkg/context"
	"ThynxSite/pkg/handlerUtil"
	"ThynxSite/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const requestTimeout = 10 * time.Second

func (h *AdminHandler) PinStatus(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	isSet, err := h.adminService.PinStatus(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "pin_status")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, admin.PinStatusResponse{IsSet: isSet})
	}
}

// AuthStatus mints a CSRF token for the session when it has none, so the
// client can call CSRF-guarded routes right after loading. A session that
// authenticated against a PIN that was since reset or replaced reports false.
func (h *AdminHandler) AuthStatus(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	pinVersion, err := h.adminService.PinVersion(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "auth_status")
	}

	st, err := h.loadSession(ctx, requestID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "auth_status")
	}

	authenticated := st.AuthenticatedFor(pinVersion)
	token, err := st.EnsureCSRFToken()
	if err != nil {
		return errHandler.Handle(ctx, requestID, h.sessionFailure(requestID, err), ctx.Path(), "auth_status")
	}

	if err := st.Save(); err != nil {
		return errHandler.Handle(ctx, requestID, h.sessionFailure(requestID, err), ctx.Path(), "auth_status")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, admin.AuthStatusResponse{
		Authenticated: authenticated,
		CSRFToken:     token,
	})
}

func (h *AdminHandler) SetPIN(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	req, ok := h.parsePin(ctx, requestID, errHandler)
	if !ok {
		return nil
	}

	pinVersion, err := h.adminService.SetPIN(c, req.Pin)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "set_pin")
	}

	token, err := h.authenticate(ctx, requestID, pinVersion)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "set_pin")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, admin.SetPinResponse{
			Success:   true,
			CSRFToken: token,
		})
	}
}

func (h *AdminHandler) VerifyPIN(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	req, ok := h.parsePin(ctx, requestID, errHandler)
	if !ok {
		return nil
	}

	valid, pinVersion, err := h.adminService.VerifyPIN(c, req.Pin)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "verify_pin")
	}

	if !valid {
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, admin.VerifyPinResponse{Valid: false})
	}

	token, err := h.authenticate(ctx, requestID, pinVersion)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "verify_pin")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, admin.VerifyPinResponse{
			Valid:     true,
			CSRFToken: token,
		})
	}
}

func (h *AdminHandler) Logout(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	if err := h.clearSession(ctx, requestID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "logout")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, admin.SuccessResponse{Success: true})
}

// ResetPIN removes the PIN and logs the caller out. Every other admin session
// loses access too, since it was bound to the removed PIN's version.
func (h *AdminHandler) ResetPIN(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.adminService.ResetPIN(c); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "reset_pin")
	}

	if err := h.clearSession(ctx, requestID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "reset_pin")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, admin.SuccessResponse{Success: true})
	}
}

func (h *AdminHandler) parsePin(ctx *fiber.Ctx, requestID string, errHandler *handlerUtil.ErrorHandler) (admin.PinRequest, bool) {
	var req admin.PinRequest
	if err := ctx.BodyParser(&req); err != nil {
		_ = errHandler.HandleValidationError(ctx, requestID, err, ctx.Path(), admin.ErrInvalidPin.Error())
		return req, false
	}
	if err := h.validator.Struct(req); err != nil {
		_ = errHandler.HandleValidationError(ctx, requestID, err, ctx.Path(), admin.ErrInvalidPin.Error())
		return req, false
	}
	return req, true
}

func (h *AdminHandler) loadSession(ctx *fiber.Ctx, requestID string) (*session.State, error) {
	st, err := h.sessions.Load(ctx)
	if err != nil {
		return nil, h.sessionFailure(requestID, err)
	}
	return st, nil
}

func (h *AdminHandler) authenticate(ctx *fiber.Ctx, requestID string, pinVersion string) (string, error) {
	st, err := h.loadSession(ctx, requestID)
	if err != nil {
		return "", err
	}

	token, err := st.Authenticate(pinVersion)
	if err != nil {
		return "", h.sessionFailure(requestID, err)
	}

	if err := st.Save(); err != nil {
		return "", h.sessionFailure(requestID, err)
	}

	return token, nil
}

func (h *AdminHandler) clearSession(ctx *fiber.Ctx, requestID string) error {
	st, err := h.loadSession(ctx, requestID)
	if err != nil {
		return err
	}

	st.Clear()
	if err := st.Save(); err != nil {
		return h.sessionFailure(requestID, err)
	}
	return nil
}

func (h *AdminHandler) sessionFailure(requestID string, err error) error {
	h.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
	}).Error("Session store failure")
	return admin.ErrSession
}
