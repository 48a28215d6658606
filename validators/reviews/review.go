package reviewValidators

import (
	"reviews/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const (
	// Locals keys read by the review controllers
	ValidatedReviewKey = "validatedReview"
	ValidatedListKey   = "validatedReviewList"

	MissingTextMessage = "Missing 'text' in request body"
)

// CreateReviewRequest is the body of POST /reviews. Text is a pointer so an
// absent field can be told apart from an empty string.
type CreateReviewRequest struct {
	Text *string `json:"text"`
}

// ListReviewsRequest is the query of GET /reviews
type ListReviewsRequest struct {
	Sentiment string `query:"sentiment"`
}

// CreateReview rejects bodies that cannot be parsed or carry no text field.
// An empty string is accepted.
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, MissingTextMessage)
		}
		if reqData.Text == nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, MissingTextMessage)
		}

		c.Locals(ValidatedReviewKey, reqData)
		return c.Next()
	}
}

// ListReviews parses the optional sentiment filter. Unknown values pass
// through and simply match nothing.
func ListReviews() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListReviewsRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters!")
		}
		// parsed values alias the request buffer, which fasthttp reuses
		reqData.Sentiment = utils.CopyString(reqData.Sentiment)

		c.Locals(ValidatedListKey, reqData)
		return c.Next()
	}
}
