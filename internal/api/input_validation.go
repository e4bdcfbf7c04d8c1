package api

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rowanleith/whelpline/internal/models"
)

const dateLayout = "2006-01-02"

const minPasswordLength = 8

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	credentials.Email = strings.ToLower(strings.TrimSpace(credentials.Email))
	credentials.Password = strings.TrimSpace(credentials.Password)
	credentials.KennelName = strings.TrimSpace(credentials.KennelName)

	if credentials.Email == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}
	return credentials, nil
}

func validateRegistrationCredentials(credentials credentialsInput) string {
	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return "invalid email"
	}
	if len(credentials.Password) < minPasswordLength {
		return "password too short"
	}
	return ""
}

func (handler *Handler) parseDateParam(value string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(value), handler.location)
}

// parseOptionalDate maps an empty or absent value to nil rather than an
// error: clearing a date field is a legitimate update.
func (handler *Handler) parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	parsed, err := handler.parseDateParam(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func validateDogInput(input dogInput) string {
	if strings.TrimSpace(input.Name) == "" {
		return "name is required"
	}
	switch input.Sex {
	case models.SexFemale, models.SexMale:
	default:
		return "sex must be female or male"
	}
	if input.HeatIntervalDays < 0 {
		return "heat interval cannot be negative"
	}
	return ""
}
