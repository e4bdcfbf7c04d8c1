package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/recover", handler.RecoverAccount)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.CurrentAccount)

	dogs := api.Group("/dogs", handler.AuthRequired)
	dogs.Get("", handler.ListDogs)
	dogs.Post("", handler.SubscriptionRequired, handler.CreateDog)
	dogs.Get("/:id", handler.GetDog)
	dogs.Put("/:id", handler.SubscriptionRequired, handler.UpdateDog)
	dogs.Delete("/:id", handler.OwnerOnly, handler.DeleteDog)
	dogs.Get("/:id/heats", handler.ListHeatCycles)
	dogs.Post("/:id/heats", handler.SubscriptionRequired, handler.CreateHeatCycle)
	dogs.Post("/:id/heats/:cycleID/close", handler.SubscriptionRequired, handler.CloseHeatCycle)

	plans := api.Group("/plans", handler.AuthRequired)
	plans.Get("", handler.ListBreedingPlans)
	plans.Post("", handler.SubscriptionRequired, handler.CreateBreedingPlan)
	plans.Post("/:id/complete", handler.SubscriptionRequired, handler.CompleteBreedingPlan)
	plans.Delete("/:id", handler.SubscriptionRequired, handler.DeleteBreedingPlan)

	litters := api.Group("/litters", handler.AuthRequired)
	litters.Get("", handler.ListLitters)
	litters.Post("", handler.SubscriptionRequired, handler.CreateLitter)
	litters.Post("/:id/birth", handler.SubscriptionRequired, handler.RecordLitterBirth)

	reminders := api.Group("/reminders", handler.AuthRequired)
	reminders.Get("", handler.ListReminders)
	reminders.Post("/regenerate", handler.RegenerateReminders)
	reminders.Patch("/:key/complete", handler.CompleteReminder)

	calendar := api.Group("/calendar", handler.AuthRequired)
	calendar.Get("/entries", handler.ListCalendarEntries)
	calendar.Post("/entries", handler.CreateCalendarEntry)
	calendar.Delete("/entries/:id", handler.DeleteCalendarEntry)
	calendar.Get("/day/:date", handler.CalendarDay)

	api.Get("/forecast", handler.AuthRequired, handler.ForecastHeats)
}
