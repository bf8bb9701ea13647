package config

import (
	"errors"

	"ThynxSite/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:          "Thynx Site",
			BodyLimit:        1 * 1024 * 1024,
			DisableKeepalive: false,
			StrictRouting:    false,
			CaseSensitive:    true,
			JSONEncoder:      jsoniter.Marshal,
			JSONDecoder:      jsoniter.Unmarshal,
			ErrorHandler:     newErrorHandler(logger),
		})

	app.Use(recover.New())

	return app
}

// newErrorHandler renders framework errors (unknown route, oversized body,
// recovered panic) in the API's {"error": ...} shape.
func newErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := handlerUtil.MessageUnexpected

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			logger.WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Error("Unhandled error")
		}

		return c.Status(code).JSON(handlerUtil.ErrorResponse{Error: message})
	}
}
