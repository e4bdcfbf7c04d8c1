package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListReminders(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	handler.ensureDependencies()

	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from != "" || to != "" {
		fromDate, err := handler.parseDateParam(from)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid from date")
		}
		toDate, err := handler.parseDateParam(to)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid to date")
		}
		reminders, err := handler.repositories.Reminders.ListByUserDueRange(user.ID, fromDate, toDate)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to list reminders")
		}
		return c.JSON(fiber.Map{"reminders": reminders})
	}

	reminders, err := handler.repositories.Reminders.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list reminders")
	}
	return c.JSON(fiber.Map{"reminders": reminders})
}

func (handler *Handler) RegenerateReminders(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	handler.ensureDependencies()

	written, err := handler.reminders.Regenerate(c.Context(), user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to regenerate reminders")
	}
	return c.JSON(fiber.Map{"ok": true, "written": written})
}

type completeReminderInput struct {
	Completed *bool `json:"completed"`
}

func (handler *Handler) CompleteReminder(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid reminder key")
	}

	// Absent body means "mark done"; an explicit false reopens it.
	completed := true
	input := completeReminderInput{}
	if err := c.BodyParser(&input); err == nil && input.Completed != nil {
		completed = *input.Completed
	}

	handler.ensureDependencies()
	updated, err := handler.repositories.Reminders.SetCompletedByKey(user.ID, key, completed)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update reminder")
	}
	if !updated {
		return apiError(c, fiber.StatusNotFound, "reminder not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
