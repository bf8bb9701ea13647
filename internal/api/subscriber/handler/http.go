package subscriberHandler

import (
	subscriberService "ThynxSite/internal/api/subscriber/service"
	"ThynxSite/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SubscriberHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	subscriberService subscriberService.ISubscriberService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss subscriberService.ISubscriberService,
) *SubscriberHandler {
	return &SubscriberHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		subscriberService: ss,
	}
}

func (h *SubscriberHandler) Start(srv fiber.Router) {
	srv.Post("/subscribers", h.middleware.NewRateLimiter, h.Subscribe)

	admin := srv.Group("/admin/subscribers", h.middleware.RequireAdminAuth)
	admin.Get("/", h.GetAllSubscribers)
	admin.Delete("/:id", h.middleware.VerifyCSRFToken, h.DeleteSubscriber)
}
