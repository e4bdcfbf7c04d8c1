package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

// LegacyHeatForecaster is the original forecasting path: last observed heat
// plus interval, repeated to the horizon, with plan corroboration only. It
// knows nothing about open heats, mating confirmations, or current-year
// history. Kept as the fallback while the unified path earns trust.
type LegacyHeatForecaster struct {
	dogs     ForecastDogSource
	cycles   ForecastCycleSource
	plans    ForecastPlanSource
	location *time.Location
}

func NewLegacyHeatForecaster(dogs ForecastDogSource, cycles ForecastCycleSource, plans ForecastPlanSource, location *time.Location) *LegacyHeatForecaster {
	if location == nil {
		location = time.UTC
	}
	return &LegacyHeatForecaster{dogs: dogs, cycles: cycles, plans: plans, location: location}
}

func (forecaster *LegacyHeatForecaster) Name() string {
	return "legacy"
}

func (forecaster *LegacyHeatForecaster) Forecast(ctx context.Context, userID uint, now time.Time, horizonYears int) ([]HeatOccurrence, error) {
	dogs, err := forecaster.dogs.ListBreedingFemales(userID)
	if err != nil {
		return nil, fmt.Errorf("list breeding dogs: %w", err)
	}

	horizon := ForecastHorizon(now, horizonYears)
	occurrences := make([]HeatOccurrence, 0)

	for _, dog := range dogs {
		dogOccurrences, err := forecaster.forecastDog(dog, now, horizon)
		if err != nil {
			log.Printf("forecast: legacy path skipping dog %d: %v", dog.ID, err)
			continue
		}
		occurrences = append(occurrences, dogOccurrences...)
	}

	SortHeatOccurrences(occurrences)
	return occurrences, nil
}

func (forecaster *LegacyHeatForecaster) forecastDog(dog models.Dog, now time.Time, horizon time.Time) ([]HeatOccurrence, error) {
	cycles, err := forecaster.cycles.ListByDog(dog.ID)
	if err != nil {
		return nil, fmt.Errorf("list heat cycles: %w", err)
	}

	profile := BuildCycleProfile(dog, cycles, forecaster.location)
	anchor := profile.LastHeatStart()
	if anchor.IsZero() {
		return nil, nil
	}

	intervalDays, confidence := EstimateHeatInterval(profile)
	dates := ProjectHeatDates(anchor, intervalDays, horizon)
	if len(dates) == 0 {
		return nil, nil
	}

	plans, err := forecaster.plans.ListByDog(dog.ID)
	if err != nil {
		return nil, fmt.Errorf("list breeding plans: %w", err)
	}

	occurrences := make([]HeatOccurrence, 0, len(dates))
	for _, date := range dates {
		status, planID, litterID := ReconcileHeatStatus(date, plans, nil, forecaster.location)
		day := DateAtLocation(date, forecaster.location)
		occurrences = append(occurrences, HeatOccurrence{
			DogID:        dog.ID,
			DogName:      dog.Name,
			Date:         day,
			Year:         day.Year(),
			Month:        day.Month(),
			Status:       status,
			Confidence:   confidence,
			IntervalDays: intervalDays,
			PlanID:       planID,
			LitterID:     litterID,
		})
	}
	return occurrences, nil
}
