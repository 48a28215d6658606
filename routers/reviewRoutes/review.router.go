package reviewRoutes

import (
	reviewController "reviews/controllers/reviews"
	reviewValidators "reviews/validators/reviews"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App, ctl *reviewController.Controller) {
	reviewGroup := app.Group("/reviews")

	reviewGroup.Post("/", reviewValidators.CreateReview(), ctl.CreateReview)
	reviewGroup.Get("/", reviewValidators.ListReviews(), ctl.GetReviews)
}
