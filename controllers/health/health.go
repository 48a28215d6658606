package healthController

import (
	"context"

	"reviews/middleware"

	"github.com/gofiber/fiber/v2"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Check reports whether the datastore answers
func Check(p Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := p.Ping(c.UserContext()); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "Database unavailable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
