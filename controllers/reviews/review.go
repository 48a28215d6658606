package reviewController

import (
	"context"
	"time"

	"reviews/metrics"
	"reviews/models"
	"reviews/sentiment"
	reviewValidators "reviews/validators/reviews"

	"github.com/gofiber/fiber/v2"
)

// ReviewStore is the persistence the controller needs
type ReviewStore interface {
	Insert(ctx context.Context, text string, sentiment models.Sentiment, createdAt string) (uint, error)
	List(ctx context.Context, filter string) ([]models.Review, error)
}

// Controller serves the /reviews endpoints
type Controller struct {
	store   ReviewStore
	metrics *metrics.Collector
	now     func() time.Time
}

func New(store ReviewStore, m *metrics.Collector) *Controller {
	return &Controller{
		store:   store,
		metrics: m,
		now:     time.Now,
	}
}

// CreateReview classifies and stores the validated text
func (ctl *Controller) CreateReview(c *fiber.Ctx) error {
	reqData := c.Locals(reviewValidators.ValidatedReviewKey).(*reviewValidators.CreateReviewRequest)

	text := *reqData.Text
	label := sentiment.Classify(text)
	createdAt := ctl.now().UTC().Format(time.RFC3339Nano)

	id, err := ctl.store.Insert(c.UserContext(), text, label, createdAt)
	if err != nil {
		return err
	}
	ctl.metrics.ReviewCreated(label)

	return c.Status(fiber.StatusCreated).JSON(models.Review{
		ID:        id,
		Text:      text,
		Sentiment: label,
		CreatedAt: createdAt,
	})
}

// GetReviews lists reviews, optionally filtered by sentiment
func (ctl *Controller) GetReviews(c *fiber.Ctx) error {
	reqData := c.Locals(reviewValidators.ValidatedListKey).(*reviewValidators.ListReviewsRequest)

	reviews, err := ctl.store.List(c.UserContext(), reqData.Sentiment)
	if err != nil {
		return err
	}
	ctl.metrics.ReviewsListed()

	return c.Status(fiber.StatusOK).JSON(reviews)
}
