package api

import (
	"github.com/rowanleith/whelpline/internal/db"
	"github.com/rowanleith/whelpline/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.forecast = services.NewForecastEngine(
		handler.repositories.Dogs,
		handler.repositories.HeatCycles,
		handler.repositories.BreedingPlans,
		handler.repositories.Litters,
		handler.location,
		handler.forecastConfig,
	)
	handler.reminders = services.NewReminderService(
		handler.repositories.Dogs,
		handler.repositories.Litters,
		handler.repositories.Reminders,
		handler.forecast,
		handler.location,
	)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil && handler.db != nil {
		handler.withDependencies(handler.db)
	}
}
