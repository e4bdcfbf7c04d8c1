package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rowanleith/whelpline/internal/models"
)

func (handler *Handler) ListLitters(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	handler.ensureDependencies()

	litters, err := handler.repositories.Litters.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list litters")
	}
	return c.JSON(fiber.Map{"litters": litters})
}

// CreateLitter records a mating directly, without a breeding plan. This is
// the path for matings that were never planned in the app.
func (handler *Handler) CreateLitter(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := litterInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	dam, found, err := handler.repositories.Dogs.FindByIDForUser(input.DamID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dam")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "dam not found")
	}
	if dam.Sex != models.SexFemale {
		return apiError(c, fiber.StatusBadRequest, "dam must be female")
	}

	litter := models.Litter{
		UserID:      user.ID,
		DamID:       dam.ID,
		SireName:    input.SireName,
		HeatCycleID: input.HeatCycleID,
		Notes:       input.Notes,
	}
	if input.MatingDate != "" {
		matingDate, err := handler.parseDateParam(input.MatingDate)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid mating date")
		}
		litter.MatingDate = &matingDate
	}

	if err := handler.repositories.Litters.Create(&litter); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create litter")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"litter": litter})
}

// RecordLitterBirth sets the birth date and puppy count, which switches on
// the puppy-care reminders for this litter.
func (handler *Handler) RecordLitterBirth(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	litterID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid litter id")
	}

	handler.ensureDependencies()
	litter, found, err := handler.repositories.Litters.FindByID(litterID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load litter")
	}
	if !found || litter.UserID != user.ID {
		return apiError(c, fiber.StatusNotFound, "litter not found")
	}

	input := litterBirthInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	birthDate, err := handler.parseDateParam(input.BirthDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid birth date")
	}
	if input.PuppyCount < 0 {
		return apiError(c, fiber.StatusBadRequest, "puppy count cannot be negative")
	}
	if litter.MatingDate != nil && birthDate.Before(*litter.MatingDate) {
		return apiError(c, fiber.StatusBadRequest, "birth date before mating date")
	}

	litter.BirthDate = &birthDate
	litter.PuppyCount = input.PuppyCount
	if err := handler.repositories.Litters.Save(&litter); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to record birth")
	}
	return c.JSON(fiber.Map{"litter": litter})
}
