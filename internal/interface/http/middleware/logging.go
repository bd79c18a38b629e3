package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/user-registry/internal/infrastructure/metrics"
)

// NewLoggingMiddleware logs one structured http_request record per request
// and feeds the request metrics. Errors from downstream handlers are
// resolved through the app's ErrorHandler first so the logged status is the
// one the client receives.
func NewLoggingMiddleware(logger *slog.Logger, recorder metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		duration := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		level := slog.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= fiber.StatusBadRequest {
			level = slog.LevelWarn
		}

		logger.LogAttrs(c.UserContext(), level, "http_request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Float64("duration_ms", float64(duration.Nanoseconds())/float64(time.Millisecond)),
			slog.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
		)
		recorder.RecordRequest(c.Method(), route, status, duration)

		return nil
	}
}
