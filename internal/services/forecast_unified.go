package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

// UnifiedHeatForecaster is the revised forecasting path. On top of the plain
// interval projection it reports current-year observed heats (confirmed or
// still active), reconciles against mating confirmations as well as plans,
// memoizes corroboration lookups per run, and enforces the forecast window
// invariant. It honors context cancellation between dogs.
type UnifiedHeatForecaster struct {
	dogs     ForecastDogSource
	cycles   ForecastCycleSource
	plans    ForecastPlanSource
	litters  ForecastLitterSource
	location *time.Location
}

func NewUnifiedHeatForecaster(dogs ForecastDogSource, cycles ForecastCycleSource, plans ForecastPlanSource, litters ForecastLitterSource, location *time.Location) *UnifiedHeatForecaster {
	if location == nil {
		location = time.UTC
	}
	return &UnifiedHeatForecaster{
		dogs:     dogs,
		cycles:   cycles,
		plans:    plans,
		litters:  litters,
		location: location,
	}
}

func (forecaster *UnifiedHeatForecaster) Name() string {
	return "unified"
}

func (forecaster *UnifiedHeatForecaster) Forecast(ctx context.Context, userID uint, now time.Time, horizonYears int) ([]HeatOccurrence, error) {
	dogs, err := forecaster.dogs.ListBreedingFemales(userID)
	if err != nil {
		return nil, fmt.Errorf("list breeding dogs: %w", err)
	}

	horizon := ForecastHorizon(now, horizonYears)
	cache := newCorroborationCache(forecaster.plans, forecaster.litters)
	occurrences := make([]HeatOccurrence, 0)

	for _, dog := range dogs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dogOccurrences, err := forecaster.forecastDog(dog, cache, now, horizon)
		if err != nil {
			log.Printf("forecast: unified path skipping dog %d: %v", dog.ID, err)
			continue
		}
		occurrences = append(occurrences, dogOccurrences...)
	}

	SortHeatOccurrences(occurrences)
	return occurrences, nil
}

func (forecaster *UnifiedHeatForecaster) forecastDog(dog models.Dog, cache *corroborationCache, now time.Time, horizon time.Time) ([]HeatOccurrence, error) {
	cycles, err := forecaster.cycles.ListByDog(dog.ID)
	if err != nil {
		return nil, fmt.Errorf("list heat cycles: %w", err)
	}

	profile := BuildCycleProfile(dog, cycles, forecaster.location)
	intervalDays, confidence := EstimateHeatInterval(profile)

	plans, err := cache.plansFor(dog.ID)
	if err != nil {
		return nil, fmt.Errorf("list breeding plans: %w", err)
	}
	litters, err := cache.littersFor(dog.ID)
	if err != nil {
		return nil, fmt.Errorf("list litters: %w", err)
	}

	today := DateAtLocation(now, forecaster.location)
	occurrences := make([]HeatOccurrence, 0)

	for _, cycle := range cycles {
		startDay := DateAtLocation(cycle.StartDate, forecaster.location)
		if startDay.Year() != today.Year() {
			continue
		}
		status, litterID := ReconcileObservedHeat(cycle, litters, now, forecaster.location)
		occurrences = append(occurrences, HeatOccurrence{
			DogID:        dog.ID,
			DogName:      dog.Name,
			Date:         startDay,
			Year:         startDay.Year(),
			Month:        startDay.Month(),
			Status:       status,
			Confidence:   confidence,
			IntervalDays: intervalDays,
			LitterID:     litterID,
			Notes:        cycle.Notes,
		})
	}

	anchor := profile.LastHeatStart()
	for _, date := range ProjectHeatDates(anchor, intervalDays, horizon) {
		status, planID, litterID := ReconcileHeatStatus(date, plans, litters, forecaster.location)
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

	filtered := occurrences[:0]
	for _, occurrence := range occurrences {
		if WithinForecastWindow(occurrence, now, horizon, forecaster.location) {
			filtered = append(filtered, occurrence)
		}
	}
	return filtered, nil
}
