package services

import (
	"context"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

// ForecastStrategy is one interchangeable heat forecasting algorithm. Two
// implementations exist while the newer engine is being proven against the
// old one: the legacy synchronous path and the unified data-source-aware
// path. The supervisor owns selection, timeouts and fallback.
type ForecastStrategy interface {
	Name() string
	Forecast(ctx context.Context, userID uint, now time.Time, horizonYears int) ([]HeatOccurrence, error)
}

// Store interfaces the forecasters consume. Implemented by internal/db
// repositories; redeclared here so the engine stays a pure computation
// library over plain records.

type ForecastDogSource interface {
	ListBreedingFemales(userID uint) ([]models.Dog, error)
}

type ForecastCycleSource interface {
	ListByDog(dogID uint) ([]models.HeatCycle, error)
}

type ForecastPlanSource interface {
	ListByDog(dogID uint) ([]models.BreedingPlan, error)
}

type ForecastLitterSource interface {
	ListByDam(damID uint) ([]models.Litter, error)
}

// corroborationCache memoizes per-dog plan and litter lookups for the length
// of one forecast run, so reconciling many occurrences for the same dog costs
// one round-trip per source.
type corroborationCache struct {
	plans   ForecastPlanSource
	litters ForecastLitterSource

	plansByDog   map[uint][]models.BreedingPlan
	littersByDog map[uint][]models.Litter
}

func newCorroborationCache(plans ForecastPlanSource, litters ForecastLitterSource) *corroborationCache {
	return &corroborationCache{
		plans:        plans,
		litters:      litters,
		plansByDog:   make(map[uint][]models.BreedingPlan),
		littersByDog: make(map[uint][]models.Litter),
	}
}

func (cache *corroborationCache) plansFor(dogID uint) ([]models.BreedingPlan, error) {
	if cached, ok := cache.plansByDog[dogID]; ok {
		return cached, nil
	}
	plans, err := cache.plans.ListByDog(dogID)
	if err != nil {
		return nil, err
	}
	cache.plansByDog[dogID] = plans
	return plans, nil
}

func (cache *corroborationCache) littersFor(dogID uint) ([]models.Litter, error) {
	if cached, ok := cache.littersByDog[dogID]; ok {
		return cached, nil
	}
	litters, err := cache.litters.ListByDam(dogID)
	if err != nil {
		return nil, err
	}
	cache.littersByDog[dogID] = litters
	return litters, nil
}
