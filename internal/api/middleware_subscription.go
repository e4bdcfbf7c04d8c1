package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rowanleith/whelpline/internal/services"
)

// SubscriptionRequired gates the breeding workflow behind an active tier or
// a running trial. Read access stays open so a lapsed account can still see
// its records.
func (handler *Handler) SubscriptionRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if !services.SubscriptionActive(*user, time.Now().In(handler.location)) {
		return apiError(c, fiber.StatusPaymentRequired, "subscription required")
	}
	return c.Next()
}
