package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/user-registry/internal/usecase"
)

// InternalErrorMessage is the only body ever returned with a 500.
const InternalErrorMessage = "Something went wrong"

// NewErrorHandler maps handler errors to responses: invalid arguments become
// 400 with their message, routing and query errors raised as fiber errors
// keep their status, everything else is an opaque 500.
func NewErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var invalid *usecase.InvalidArgumentError
		if errors.As(err, &invalid) {
			return sendText(c, fiber.StatusBadRequest, invalid.Error())
		}

		var fe *fiber.Error
		if errors.As(err, &fe) && isClientStatus(fe.Code) {
			return sendText(c, fe.Code, fe.Message)
		}

		logger.ErrorContext(c.UserContext(), "request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
		return sendText(c, fiber.StatusInternalServerError, InternalErrorMessage)
	}
}

// isClientStatus lists the fiber error codes surfaced as is. A 422 from body
// decoding is reported as a 500.
func isClientStatus(code int) bool {
	switch code {
	case fiber.StatusBadRequest, fiber.StatusNotFound, fiber.StatusMethodNotAllowed, fiber.StatusTooManyRequests:
		return true
	}
	return false
}

func sendText(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(body)
}
