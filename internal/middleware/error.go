package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the failure envelope every error renders to. Description
// is omitted for internal errors.
type ErrorResponse struct {
	Success     bool   `json:"success"`
	Error       int    `json:"error"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// ErrorHandler is the centralized fiber error handler. Every failure leaves
// the API as a {success:false, error, message, description} envelope, never
// as a bare error trace.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var statusErr *domain.StatusError
		if errors.As(err, &statusErr) {
			status := int(statusErr.Status)
			if status >= http.StatusInternalServerError {
				log.Error("Request failed",
					zap.String("path", c.Path()),
					zap.Int("status", status),
					zap.Error(statusErr),
				)
			} else {
				log.Warn("Request rejected",
					zap.String("path", c.Path()),
					zap.Int("status", status),
					zap.String("description", statusErr.Description),
				)
			}

			response := ErrorResponse{
				Success: false,
				Error:   status,
				Message: statusErr.Status.Message(),
			}
			// Internal failure details stay in the logs.
			if statusErr.Status != domain.StatusInternal {
				response.Description = statusErr.Description
			}
			return c.Status(status).JSON(response)
		}

		// Router-level failures (unknown route, wrong method).
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("HTTP error",
				zap.Int("status", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Success: false,
				Error:   fiberErr.Code,
				Message: domain.StatusClass(fiberErr.Code).Message(),
			})
		}

		log.Error("Unknown error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Success: false,
			Error:   http.StatusInternalServerError,
			Message: domain.StatusInternal.Message(),
		})
	}
}
