package httperr

import (
	"errors"

	"github.com/anshmehta/stockwatch/internal/logger"
	"github.com/gofiber/fiber/v2"
)

// Handler returns the app-wide Fiber error handler. Typed errors are
// mapped to their status; unexpected failures are logged and replaced
// with a generic message so driver errors are never echoed to clients.
func Handler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var e *Error
		if errors.As(err, &e) {
			if e.Kind == KindInternal || e.Kind == KindUpstream {
				log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
			}
			return c.Status(e.Kind.Status()).JSON(fiber.Map{"message": e.Message})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
		}

		log.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
}
