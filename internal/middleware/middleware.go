package middleware

import (
	"time"

	"ThynxSite/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/time/rate"
)

// PinVersioner reports the version of the configured admin PIN, or "" when
// no PIN is set. Admin sessions are only valid for the version they were
// authenticated against.
type PinVersioner interface {
	PinVersion(ctx context.Context) (string, error)
}

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewPinRateLimiter(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	RequireAdminAuth(ctx *fiber.Ctx) error
	VerifyCSRFToken(ctx *fiber.Ctx) error
	GetRequestID(ctx *fiber.Ctx) string
}

// Config sets the per-IP token buckets. General covers public writes such as
// contact and subscribe, Pin covers set-pin and verify-pin.
type Config struct {
	GeneralRate  rate.Limit
	GeneralBurst int
	PinRate      rate.Limit
	PinBurst     int
}

func DefaultConfig() Config {
	return Config{
		GeneralRate:  rate.Limit(1),
		GeneralBurst: 20,
		PinRate:      rate.Every(6 * time.Second),
		PinBurst:     10,
	}
}

type middleware struct {
	rateLimitter        *rateLimiter
	pinRateLimitter     *rateLimiter
	requestIDMiddleware fiber.Handler
	sessions            *session.Manager
	pins                PinVersioner
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, sessions *session.Manager, pins PinVersioner, cfg Config) Middleware {
	return &middleware{
		rateLimitter:        newRateLimiter(cfg.GeneralRate, cfg.GeneralBurst),
		pinRateLimitter:     newRateLimiter(cfg.PinRate, cfg.PinBurst),
		requestIDMiddleware: NewRequestIDMiddleware(),
		sessions:            sessions,
		pins:                pins,
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
