package router

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wichananm65/user-registry/internal/infrastructure/metrics"
	"github.com/wichananm65/user-registry/internal/interface/http/handler"
	"github.com/wichananm65/user-registry/internal/interface/http/middleware"
)

// Deps collects what New needs. Optional fields may be left nil.
type Deps struct {
	UserHandler *handler.UserHandler
	Logger      *slog.Logger

	// Metrics receives request observations; nil disables them.
	Metrics metrics.Recorder
	// Gatherer, when set, is served on /metrics.
	Gatherer prometheus.Gatherer
	// RateLimiter, when set, guards the user API.
	RateLimiter *middleware.RateLimiter

	CORSAllowOrigins string
}

// New builds the fiber application.
//
// Middleware order: request id → access log/metrics → recover → CORS →
// rate limit → routes. Recovered panics reach the access log as 500.
func New(deps Deps) *fiber.App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	recorder := deps.Metrics
	if recorder == nil {
		recorder = metrics.Noop{}
	}

	app := fiber.New(fiber.Config{
		AppName:               "user-registry",
		ErrorHandler:          handler.NewErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(middleware.NewLoggingMiddleware(logger, recorder))
	app.Use(recover.New())
	setupCORS(app, deps.CORSAllowOrigins)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", metrics.Handler(deps.Gatherer))
	}

	if deps.RateLimiter != nil {
		app.Use("/api", deps.RateLimiter.Handler())
	}
	deps.UserHandler.RegisterRoutes(app)

	return app
}

func setupCORS(app *fiber.App, origins string) {
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}
