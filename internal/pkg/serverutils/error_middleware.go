package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"course-assist-be/internal/service"
	"course-assist-be/pkg/rag"
	"course-assist-be/pkg/retry"
)

// ErrorHandlerMiddleware maps domain errors to HTTP status codes so
// controllers can just return errors upward.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validationErr.Message))
		case errors.Is(err, rag.ErrEmptyQuestion):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, service.ErrQueryNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, service.ErrAlreadyAnswered):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(err.Error()))
		case retry.Retryable(err):
			// Provider retries exhausted; the client may try again later.
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse("service is busy, please retry"))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
