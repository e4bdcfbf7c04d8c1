package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rowanleith/whelpline/internal/models"
	"github.com/rowanleith/whelpline/internal/services"
)

func (handler *Handler) ListCalendarEntries(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	handler.ensureDependencies()

	entries, err := handler.repositories.CalendarEntries.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list entries")
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func (handler *Handler) CreateCalendarEntry(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	input := calendarEntryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Title) == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}
	if _, err := handler.parseDateParam(input.Date); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "other"
	}

	entry := models.CalendarEntry{
		UserID:    user.ID,
		Title:     input.Title,
		RawDate:   strings.TrimSpace(input.Date),
		TimeLabel: input.TimeLabel,
		Category:  category,
		DogID:     input.DogID,
		Notes:     input.Notes,
	}

	handler.ensureDependencies()
	if err := handler.repositories.CalendarEntries.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create entry")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry})
}

func (handler *Handler) DeleteCalendarEntry(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	handler.ensureDependencies()
	if err := handler.repositories.CalendarEntries.DeleteByIDForUser(entryID, user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// CalendarDay returns everything happening on one calendar day: forecast
// heats, derived reminders, and the user's own entries, merged and sorted.
func (handler *Handler) CalendarDay(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	day, err := handler.parseDateParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.ensureDependencies()
	now := time.Now().In(handler.location)
	occurrences := handler.forecast.Forecast(c.Context(), user.ID, now, services.DefaultForecastHorizonYears)

	dayStart, dayEnd := services.DayRange(day, handler.location)
	reminders, err := handler.repositories.Reminders.ListByUserDueRange(user.ID, dayStart, dayEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reminders")
	}
	entries, err := handler.repositories.CalendarEntries.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}

	events := services.MergeEventsForDay(day, occurrences, reminders, entries, handler.location)
	return c.JSON(fiber.Map{
		"date":   day.Format(dateLayout),
		"events": events,
	})
}
