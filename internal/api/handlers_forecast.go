package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rowanleith/whelpline/internal/services"
)

const maxForecastHorizonYears = 2

// ForecastHeats returns the reconciled heat occurrence list for every
// breedable dog the user owns. The horizon defaults to one year and is
// capped at two.
func (handler *Handler) ForecastHeats(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	horizonYears := services.DefaultForecastHorizonYears
	if raw := c.Query("years"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxForecastHorizonYears {
			return apiError(c, fiber.StatusBadRequest, "years must be 1 or 2")
		}
		horizonYears = parsed
	}

	handler.ensureDependencies()
	now := time.Now().In(handler.location)
	occurrences := handler.forecast.Forecast(c.Context(), user.ID, now, horizonYears)

	return c.JSON(fiber.Map{
		"generated_at": now,
		"horizon":      services.ForecastHorizon(now, horizonYears),
		"occurrences":  occurrences,
	})
}
