package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rowanleith/whelpline/internal/services"
)

// NewHandler wires the API over an open database. The secret key signs auth
// tokens and must survive restarts, or every session dies with the process.
func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, forecastConfig services.ForecastConfig) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:             database,
		secretKey:      []byte(secret),
		location:       location,
		cookieSecure:   cookieSecure,
		forecastConfig: forecastConfig,
	}
	handler.withDependencies(database)
	return handler, nil
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
