package contactHandler

import (
	contactService "ThynxSite/internal/api/contact/service"
	"ThynxSite/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ContactHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	contactService contactService.IContactService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs contactService.IContactService,
) *ContactHandler {
	return &ContactHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		contactService: cs,
	}
}

func (h *ContactHandler) Start(srv fiber.Router) {
	srv.Post("/contact", h.middleware.NewRateLimiter, h.CreateSubmission)

	admin := srv.Group("/admin/contact-submissions", h.middleware.RequireAdminAuth)
	admin.Get("/", h.GetAllSubmissions)
	admin.Patch("/:id/read", h.middleware.VerifyCSRFToken, h.MarkSubmissionRead)
	admin.Delete("/:id", h.middleware.VerifyCSRFToken, h.DeleteSubmission)
}
