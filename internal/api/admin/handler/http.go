package adminHandler

import (
	adminService "ThynxSite/internal/api/admin/service"
	"ThynxSite/internal/middleware"
	"ThynxSite/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	sessions     *session.Manager
	adminService adminService.IAdminService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	sessions *session.Manager,
	as adminService.IAdminService,
) *AdminHandler {
	return &AdminHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		sessions:     sessions,
		adminService: as,
	}
}

func (h *AdminHandler) Start(srv fiber.Router) {
	admin := srv.Group("/admin")

	admin.Get("/pin-status", h.PinStatus)
	admin.Get("/auth-status", h.AuthStatus)
	admin.Post("/set-pin", h.middleware.NewPinRateLimiter, h.SetPIN)
	admin.Post("/verify-pin", h.middleware.NewPinRateLimiter, h.VerifyPIN)
	admin.Post("/logout", h.middleware.VerifyCSRFToken, h.Logout)
	admin.Post("/reset-pin", h.middleware.RequireAdminAuth, h.middleware.VerifyCSRFToken, h.ResetPIN)
}
