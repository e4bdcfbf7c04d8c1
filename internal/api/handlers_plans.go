package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rowanleith/whelpline/internal/models"
)

func (handler *Handler) ListBreedingPlans(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	handler.ensureDependencies()

	plans, err := handler.repositories.BreedingPlans.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list breeding plans")
	}
	return c.JSON(fiber.Map{"plans": plans})
}

func (handler *Handler) CreateBreedingPlan(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := breedingPlanInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	targetDate, err := handler.parseDateParam(input.TargetDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid target date")
	}

	handler.ensureDependencies()
	dog, found, err := handler.repositories.Dogs.FindByIDForUser(input.DogID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dog")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "dog not found")
	}
	if !dog.Breedable() {
		return apiError(c, fiber.StatusBadRequest, "dog is not breedable")
	}

	plan := models.BreedingPlan{
		DogID:      dog.ID,
		SireName:   input.SireName,
		TargetDate: targetDate,
		Notes:      input.Notes,
	}
	if err := handler.repositories.BreedingPlans.Create(&plan); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create breeding plan")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"plan": plan})
}

// CompleteBreedingPlan records the mating: it creates the litter and marks
// the plan completed with the litter id. The litter outlives the plan from
// here on; deleting the plan later does not undo the mating.
func (handler *Handler) CompleteBreedingPlan(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	plan, ok := handler.ownedPlan(c, user.ID)
	if !ok {
		return nil
	}
	if plan.Completed {
		return apiError(c, fiber.StatusConflict, "plan already completed")
	}

	input := completePlanInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	matingDate, err := handler.parseDateParam(input.MatingDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid mating date")
	}

	litter := models.Litter{
		UserID:      user.ID,
		DamID:       plan.DogID,
		SireName:    plan.SireName,
		HeatCycleID: input.HeatCycleID,
		MatingDate:  &matingDate,
		Notes:       plan.Notes,
	}
	if err := handler.repositories.Litters.Create(&litter); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create litter")
	}
	if err := handler.repositories.BreedingPlans.MarkCompleted(plan.ID, litter.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to complete plan")
	}
	return c.JSON(fiber.Map{"ok": true, "litter": litter})
}

func (handler *Handler) DeleteBreedingPlan(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	plan, ok := handler.ownedPlan(c, user.ID)
	if !ok {
		return nil
	}

	if err := handler.repositories.BreedingPlans.DeleteByID(plan.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete plan")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ownedPlan(c *fiber.Ctx, userID uint) (models.BreedingPlan, bool) {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		_ = apiError(c, fiber.StatusBadRequest, "invalid plan id")
		return models.BreedingPlan{}, false
	}

	handler.ensureDependencies()
	plan, found, err := handler.repositories.BreedingPlans.FindByID(planID)
	if err != nil {
		_ = apiError(c, fiber.StatusInternalServerError, "failed to load plan")
		return models.BreedingPlan{}, false
	}
	if !found {
		_ = apiError(c, fiber.StatusNotFound, "plan not found")
		return models.BreedingPlan{}, false
	}

	_, dogFound, err := handler.repositories.Dogs.FindByIDForUser(plan.DogID, userID)
	if err != nil {
		_ = apiError(c, fiber.StatusInternalServerError, "failed to load plan")
		return models.BreedingPlan{}, false
	}
	if !dogFound {
		_ = apiError(c, fiber.StatusNotFound, "plan not found")
		return models.BreedingPlan{}, false
	}
	return plan, true
}
