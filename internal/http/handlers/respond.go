package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "tradepost/internal/log"
	"tradepost/internal/services"
)

func jsonMsg(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// fail maps service errors onto the HTTP taxonomy: 404 not found, 400
// validation, 409 state/duplicate conflicts, 403 ownership. Anything else
// is logged and surfaced as a generic 500 so internals never leak.
func fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return jsonMsg(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrValidation):
		return jsonMsg(c, fiber.StatusBadRequest, "invalid input")
	case errors.Is(err, services.ErrStateTransition):
		return jsonMsg(c, fiber.StatusConflict, "invalid status transition")
	case errors.Is(err, services.ErrDuplicate):
		return jsonMsg(c, fiber.StatusConflict, "already exists")
	case errors.Is(err, services.ErrForbidden):
		return jsonMsg(c, fiber.StatusForbidden, "forbidden")
	}
	applog.Error(c, action, err, nil)
	return jsonMsg(c, fiber.StatusInternalServerError, "something went wrong")
}
