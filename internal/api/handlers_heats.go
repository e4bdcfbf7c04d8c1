package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rowanleith/whelpline/internal/models"
)

// ownedDog resolves the :id route parameter to a dog belonging to the
// current user, writing the error response itself on failure.
func (handler *Handler) ownedDog(c *fiber.Ctx) (models.Dog, bool) {
	user, _ := currentUser(c)
	dogID, err := parseIDParam(c, "id")
	if err != nil {
		_ = apiError(c, fiber.StatusBadRequest, "invalid dog id")
		return models.Dog{}, false
	}

	handler.ensureDependencies()
	dog, found, err := handler.repositories.Dogs.FindByIDForUser(dogID, user.ID)
	if err != nil {
		_ = apiError(c, fiber.StatusInternalServerError, "failed to load dog")
		return models.Dog{}, false
	}
	if !found {
		_ = apiError(c, fiber.StatusNotFound, "dog not found")
		return models.Dog{}, false
	}
	return dog, true
}

func (handler *Handler) ListHeatCycles(c *fiber.Ctx) error {
	dog, ok := handler.ownedDog(c)
	if !ok {
		return nil
	}

	cycles, err := handler.repositories.HeatCycles.ListByDog(dog.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list heat cycles")
	}
	return c.JSON(fiber.Map{"heat_cycles": cycles})
}

func (handler *Handler) CreateHeatCycle(c *fiber.Ctx) error {
	dog, ok := handler.ownedDog(c)
	if !ok {
		return nil
	}

	input := heatCycleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	startDate, err := handler.parseDateParam(input.StartDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}

	cycle := models.HeatCycle{
		DogID:     dog.ID,
		StartDate: startDate,
		Notes:     input.Notes,
	}
	if err := handler.repositories.HeatCycles.Create(&cycle); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to record heat")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"heat_cycle": cycle})
}

func (handler *Handler) CloseHeatCycle(c *fiber.Ctx) error {
	dog, ok := handler.ownedDog(c)
	if !ok {
		return nil
	}

	cycleID, err := parseIDParam(c, "cycleID")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	cycle, found, err := handler.repositories.HeatCycles.FindByID(cycleID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load heat cycle")
	}
	if !found || cycle.DogID != dog.ID {
		return apiError(c, fiber.StatusNotFound, "heat cycle not found")
	}
	if cycle.EndDate != nil {
		return apiError(c, fiber.StatusConflict, "heat cycle already closed")
	}

	input := closeHeatInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	endDate, err := handler.parseDateParam(input.EndDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid end date")
	}
	if endDate.Before(cycle.StartDate) {
		return apiError(c, fiber.StatusBadRequest, "end date before start date")
	}

	if err := handler.repositories.HeatCycles.CloseCycle(cycle.ID, endDate); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to close heat cycle")
	}
	return c.JSON(fiber.Map{"ok": true})
}
