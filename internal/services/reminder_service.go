package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

type ReminderDogSource interface {
	ListByUser(userID uint) ([]models.Dog, error)
}

type ReminderLitterSource interface {
	ListByUser(userID uint) ([]models.Litter, error)
}

// ReminderStore receives generated reminders. Upserts are keyed by the
// deterministic reminder key; completion state lives with the store and is
// never written from here.
type ReminderStore interface {
	UpsertByKey(reminder *models.Reminder) error
	DeleteStaleGenerated(userID uint, generatedBefore time.Time) error
}

// HeatForecaster is the slice of the supervisor the reminder service needs.
type HeatForecaster interface {
	Forecast(ctx context.Context, userID uint, now time.Time, horizonYears int) []HeatOccurrence
}

// ReminderService regenerates the derived reminder set for a user: heat,
// vaccination and birthday reminders per dog, plus the puppy-care schedule
// per born litter. Regeneration is idempotent within one pass and safe to
// repeat; deduplication across passes is the store's problem, helped along
// by dropping stale uncompleted rows.
type ReminderService struct {
	dogs     ReminderDogSource
	litters  ReminderLitterSource
	store    ReminderStore
	forecast HeatForecaster
	location *time.Location
}

func NewReminderService(dogs ReminderDogSource, litters ReminderLitterSource, store ReminderStore, forecast HeatForecaster, location *time.Location) *ReminderService {
	if location == nil {
		location = time.UTC
	}
	return &ReminderService{
		dogs:     dogs,
		litters:  litters,
		store:    store,
		forecast: forecast,
		location: location,
	}
}

// Regenerate recomputes and upserts every derivable reminder for the user,
// returning how many were written. A dog or litter that fails derivation is
// logged and skipped; the rest of the batch continues.
func (service *ReminderService) Regenerate(ctx context.Context, userID uint, now time.Time) (int, error) {
	dogs, err := service.dogs.ListByUser(userID)
	if err != nil {
		return 0, fmt.Errorf("list dogs: %w", err)
	}
	litters, err := service.litters.ListByUser(userID)
	if err != nil {
		return 0, fmt.Errorf("list litters: %w", err)
	}

	today := DateAtLocation(now, service.location)
	generatedAt := now

	occurrences := service.forecast.Forecast(ctx, userID, now, DefaultForecastHorizonYears)
	nextHeat := NextHeatByDog(occurrences, today, service.location)

	written := 0
	for _, dog := range dogs {
		for _, reminder := range service.dogReminders(dog, nextHeat, today, generatedAt) {
			if err := service.store.UpsertByKey(&reminder); err != nil {
				log.Printf("reminders: upsert %s failed: %v", reminder.Key, err)
				continue
			}
			written++
		}
	}

	for _, litter := range litters {
		for _, reminder := range BuildLitterCareReminders(litter, today, generatedAt, service.location) {
			if err := service.store.UpsertByKey(&reminder); err != nil {
				log.Printf("reminders: upsert %s failed: %v", reminder.Key, err)
				continue
			}
			written++
		}
	}

	if err := service.store.DeleteStaleGenerated(userID, generatedAt); err != nil {
		log.Printf("reminders: prune stale rows for user %d failed: %v", userID, err)
	}

	return written, nil
}

func (service *ReminderService) dogReminders(dog models.Dog, nextHeat map[uint]HeatOccurrence, today time.Time, generatedAt time.Time) []models.Reminder {
	reminders := make([]models.Reminder, 0, 3)

	if occurrence, ok := nextHeat[dog.ID]; ok {
		if reminder, fires := BuildHeatReminder(dog, occurrence.Date, today, generatedAt, service.location); fires {
			reminders = append(reminders, reminder)
		}
	}
	if reminder, fires := BuildVaccinationReminder(dog, today, generatedAt, service.location); fires {
		reminders = append(reminders, reminder)
	}
	if reminder, fires := BuildBirthdayReminder(dog, today, generatedAt, service.location); fires {
		reminders = append(reminders, reminder)
	}
	return reminders
}
