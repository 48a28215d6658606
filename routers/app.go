package routers

import (
	"io"
	"os"
	"strings"

	"reviews/config"
	healthController "reviews/controllers/health"
	reviewController "reviews/controllers/reviews"
	"reviews/metrics"
	"reviews/middleware"
	"reviews/routers/reviewRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is everything the HTTP layer needs from persistence
type Store interface {
	reviewController.ReviewStore
	healthController.Pinger
}

// Options configures NewApp. AccessLog defaults to stdout.
type Options struct {
	Config    *config.Config
	Logger    *zap.Logger
	Store     Store
	Metrics   *metrics.Collector
	AccessLog io.Writer
}

// NewApp builds the fiber app with middleware and all routes registered
func NewApp(opts Options) *fiber.App {
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.AccessLog == nil {
		opts.AccessLog = os.Stdout
	}

	app := fiber.New(fiber.Config{
		AppName:               "reviews",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(opts.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDKey,
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.TrimSpace(opts.Config.CORSOrigins),
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} ${locals:requestid}\n",
		Output: opts.AccessLog,
	}))

	app.Get("/health", healthController.Check(opts.Store))
	app.Get("/metrics", opts.Metrics.Handler())

	reviewRoutes.SetupReviewRoutes(app, reviewController.New(opts.Store, opts.Metrics))

	return app
}
