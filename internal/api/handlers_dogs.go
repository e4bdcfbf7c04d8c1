package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rowanleith/whelpline/internal/models"
)

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

func (handler *Handler) ListDogs(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	handler.ensureDependencies()

	dogs, err := handler.repositories.Dogs.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list dogs")
	}
	return c.JSON(fiber.Map{"dogs": dogs})
}

func (handler *Handler) GetDog(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	dogID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid dog id")
	}

	handler.ensureDependencies()
	dog, found, err := handler.repositories.Dogs.FindByIDForUser(dogID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dog")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "dog not found")
	}
	return c.JSON(fiber.Map{"dog": dog})
}

func (handler *Handler) CreateDog(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := dogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateDogInput(input); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	birthDate, err := handler.parseDateParam(input.BirthDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid birth date")
	}
	sterilizedAt, err := handler.parseOptionalDate(input.SterilizedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid sterilization date")
	}
	lastVaccinationAt, err := handler.parseOptionalDate(input.LastVaccinationAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid vaccination date")
	}
	lastDewormedAt, err := handler.parseOptionalDate(input.LastDewormedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid deworming date")
	}

	dog := models.Dog{
		UserID:            user.ID,
		Name:              input.Name,
		Breed:             input.Breed,
		Sex:               input.Sex,
		Microchip:         input.Microchip,
		BirthDate:         birthDate,
		SterilizedAt:      sterilizedAt,
		HeatIntervalDays:  input.HeatIntervalDays,
		LastVaccinationAt: lastVaccinationAt,
		LastDewormedAt:    lastDewormedAt,
		Notes:             input.Notes,
	}

	handler.ensureDependencies()
	if err := handler.repositories.Dogs.Create(&dog); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create dog")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"dog": dog})
}

func (handler *Handler) UpdateDog(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	dogID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid dog id")
	}

	handler.ensureDependencies()
	dog, found, err := handler.repositories.Dogs.FindByIDForUser(dogID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dog")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "dog not found")
	}

	input := dogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateDogInput(input); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	birthDate, err := handler.parseDateParam(input.BirthDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid birth date")
	}
	sterilizedAt, err := handler.parseOptionalDate(input.SterilizedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid sterilization date")
	}
	lastVaccinationAt, err := handler.parseOptionalDate(input.LastVaccinationAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid vaccination date")
	}
	lastDewormedAt, err := handler.parseOptionalDate(input.LastDewormedAt)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid deworming date")
	}

	dog.Name = input.Name
	dog.Breed = input.Breed
	dog.Sex = input.Sex
	dog.Microchip = input.Microchip
	dog.BirthDate = birthDate
	dog.SterilizedAt = sterilizedAt
	dog.HeatIntervalDays = input.HeatIntervalDays
	dog.LastVaccinationAt = lastVaccinationAt
	dog.LastDewormedAt = lastDewormedAt
	dog.Notes = input.Notes

	if err := handler.repositories.Dogs.Save(&dog); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update dog")
	}
	return c.JSON(fiber.Map{"dog": dog})
}

func (handler *Handler) DeleteDog(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	dogID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid dog id")
	}

	handler.ensureDependencies()
	if err := handler.repositories.Dogs.DeleteByIDForUser(dogID, user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete dog")
	}
	return c.JSON(fiber.Map{"ok": true})
}
