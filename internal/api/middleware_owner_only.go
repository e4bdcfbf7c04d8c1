package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rowanleith/whelpline/internal/models"
)

func (handler *Handler) OwnerOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if user.Role != models.RoleOwner {
		return apiError(c, fiber.StatusForbidden, "owner access required")
	}
	return c.Next()
}
