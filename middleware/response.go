package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestIDKey is the fiber local the requestid middleware writes to.
const RequestIDKey = "requestid"

const internalErrorMessage = "Internal server error"

// ErrorResponse writes {"error": message} with the given status
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// RequestID returns the id assigned to the current request, if any
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}

// ErrorHandler turns errors returned by handlers into JSON bodies. Fiber
// errors keep their status and message; anything else is logged and
// reported as a bare 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ErrorResponse(c, fe.Code, fe.Message)
		}

		log.Error("request failed",
			zap.String("request_id", RequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return ErrorResponse(c, fiber.StatusInternalServerError, internalErrorMessage)
	}
}
