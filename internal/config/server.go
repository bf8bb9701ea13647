package config

import (
	"fmt"
	"time"

	adminHandler "ThynxSite/internal/api/admin/handler"
	adminRepository "ThynxSite/internal/api/admin/repository"
	adminService "ThynxSite/internal/api/admin/service"
	blogHandler "ThynxSite/internal/api/blog/handler"
	blogRepository "ThynxSite/internal/api/blog/repository"
	blogService "ThynxSite/internal/api/blog/service"
	contactHandler "ThynxSite/internal/api/contact/handler"
	contactRepository "ThynxSite/internal/api/contact/repository"
	contactService "ThynxSite/internal/api/contact/service"
	subscriberHandler "ThynxSite/internal/api/subscriber/handler"
	subscriberRepository "ThynxSite/internal/api/subscriber/repository"
	subscriberService "ThynxSite/internal/api/subscriber/service"
	"ThynxSite/internal/middleware"
	"ThynxSite/pkg/bcrypt"
	"ThynxSite/pkg/session"
	"ThynxSite/pkg/smtp"
	"ThynxSite/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	sessions    *session.Manager
	smtpMailer  smtp.ItfSmtp
	adminSvc    adminService.IAdminService
	mwConfig    *middleware.Config
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.mwConfig == nil {
		return nil, fmt.Errorf("middleware is required")
	}
	if server.sessions == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.bcryptUtils == nil {
		server.bcryptUtils = bcrypt.New()
	}

	// The admin guard checks sessions against the current PIN, so the admin
	// service exists before the middleware.
	server.adminSvc = adminService.NewAdminService(server.log, adminRepository.New(server.db, server.log), server.bcryptUtils, server.utils)
	server.middleware = middleware.New(server.log, server.sessions, server.adminSvc, *server.mwConfig)

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		if db == nil {
			return fmt.Errorf("database handle is nil")
		}
		s.db = db
		return nil
	}
}

// WithSessionStore builds the admin session manager. A nil storage keeps
// sessions in process memory.
func WithSessionStore(storage fiber.Storage, ttl time.Duration, cookieSecure bool) ServerOption {
	return func(s *Server) error {
		if s.utils == nil {
			s.utils = utils.New()
		}
		s.sessions = session.New(session.Config{
			Storage:      storage,
			Expiration:   ttl,
			CookieSecure: cookieSecure,
		}, s.utils)
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

// WithMiddleware sets the rate limits. The middleware itself is built by
// NewServer once the session store and database are known.
func WithMiddleware(cfg middleware.Config) ServerOption {
	return func(s *Server) error {
		s.mwConfig = &cfg
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils(b bcrypt.IBcrypt) ServerOption {
	return func(s *Server) error {
		if b == nil {
			b = bcrypt.New()
		}
		s.bcryptUtils = b
		return nil
	}
}

func (s *Server) RegisterHandler() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogPostService(s.log, blogRepo, s.utils)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	// Contact Domain
	contactRepo := contactRepository.New(s.db, s.log)
	contactServices := contactService.NewContactService(s.log, contactRepo, s.smtpMailer, s.utils)
	contactHandlers := contactHandler.New(s.log, s.validator, s.middleware, contactServices)

	// Subscriber Domain
	subscriberRepo := subscriberRepository.New(s.db, s.log)
	subscriberServices := subscriberService.NewSubscriberService(s.log, subscriberRepo, s.utils)
	subscriberHandlers := subscriberHandler.New(s.log, s.validator, s.middleware, subscriberServices)

	// Admin Domain
	adminHandlers := adminHandler.New(s.log, s.validator, s.middleware, s.sessions, s.adminSvc)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, blogHandlers, contactHandlers, subscriberHandlers, adminHandlers)

	router := s.engine.Group("/api")
	for _, h := range s.handlers {
		h.Start(router)
	}

	s.engine.Use(func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})
}

// App exposes the configured fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run(port string) error {
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(timeout time.Duration) error {
	if err := s.engine.ShutdownWithTimeout(timeout); err != nil {
		return err
	}
	if s.sessions != nil {
		if err := s.sessions.Close(); err != nil {
			s.log.WithField("error", err.Error()).Warn("Failed to close session storage")
		}
	}
	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
