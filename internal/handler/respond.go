package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/middleware"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/service"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/internal/store"
	"github.com/Pradeep123-sharma/VidTube/vidtube-go/pkg/page"
)

// OK writes the standard success envelope.
func OK(c fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"message":    message,
		"data":       data,
		"success":    true,
	})
}

// Fail writes the standard error envelope.
func Fail(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"message":    message,
		"success":    false,
	})
}

// Error maps service and store errors onto HTTP statuses. Anything
// unrecognized is logged and reported as a 500 without detail.
func Error(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidArgument), errors.Is(err, store.ErrInvalidReference):
		return Fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return Fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, store.ErrForbidden):
		return Fail(c, fiber.StatusForbidden, "You do not own this resource")
	case errors.Is(err, store.ErrNotFound):
		return Fail(c, fiber.StatusNotFound, "Resource not found")
	case errors.Is(err, store.ErrConflict):
		return Fail(c, fiber.StatusConflict, err.Error())
	default:
		middleware.Logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		return Fail(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// pageParams reads the standard list query parameters with defaults.
func pageParams(c fiber.Ctx) page.Params {
	return page.ParseParams(
		fiber.Query[string](c, "page"),
		fiber.Query[string](c, "limit"),
		fiber.Query[string](c, "sortBy"),
		fiber.Query[string](c, "sortType"),
		fiber.Query[string](c, "query"),
	)
}
