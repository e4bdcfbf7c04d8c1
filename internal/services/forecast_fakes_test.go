package services

import (
	"context"
	"errors"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

// fakeHerd backs all four forecast source interfaces with in-memory slices
// and optional per-source error injection.
type fakeHerd struct {
	dogs    []models.Dog
	cycles  map[uint][]models.HeatCycle
	plans   map[uint][]models.BreedingPlan
	litters map[uint][]models.Litter

	dogsErr   error
	cyclesErr map[uint]error
	plansErr  map[uint]error

	planCalls   map[uint]int
	litterCalls map[uint]int
}

func newFakeHerd() *fakeHerd {
	return &fakeHerd{
		cycles:      make(map[uint][]models.HeatCycle),
		plans:       make(map[uint][]models.BreedingPlan),
		litters:     make(map[uint][]models.Litter),
		cyclesErr:   make(map[uint]error),
		plansErr:    make(map[uint]error),
		planCalls:   make(map[uint]int),
		litterCalls: make(map[uint]int),
	}
}

func (herd *fakeHerd) ListBreedingFemales(userID uint) ([]models.Dog, error) {
	if herd.dogsErr != nil {
		return nil, herd.dogsErr
	}
	matched := make([]models.Dog, 0)
	for _, dog := range herd.dogs {
		if dog.UserID == userID && dog.Breedable() {
			matched = append(matched, dog)
		}
	}
	return matched, nil
}

func (herd *fakeHerd) ListByDog(dogID uint) ([]models.HeatCycle, error) {
	if err := herd.cyclesErr[dogID]; err != nil {
		return nil, err
	}
	return herd.cycles[dogID], nil
}

func (herd *fakeHerd) ListByUser(userID uint) ([]models.Dog, error) {
	if herd.dogsErr != nil {
		return nil, herd.dogsErr
	}
	matched := make([]models.Dog, 0)
	for _, dog := range herd.dogs {
		if dog.UserID == userID {
			matched = append(matched, dog)
		}
	}
	return matched, nil
}

// fakePlanSource and fakeLitterSource split off the per-dog lookups so the
// corroboration cache's call counting stays observable.

type fakePlanSource struct {
	herd *fakeHerd
}

func (source fakePlanSource) ListByDog(dogID uint) ([]models.BreedingPlan, error) {
	source.herd.planCalls[dogID]++
	if err := source.herd.plansErr[dogID]; err != nil {
		return nil, err
	}
	return source.herd.plans[dogID], nil
}

type fakeLitterSource struct {
	herd *fakeHerd
}

func (source fakeLitterSource) ListByDam(damID uint) ([]models.Litter, error) {
	source.herd.litterCalls[damID]++
	return source.herd.litters[damID], nil
}

// fixedStrategy returns a canned result, error, or panic; slowStrategy
// blocks until released. Both are supervisor test doubles.

type fixedStrategy struct {
	name        string
	occurrences []HeatOccurrence
	err         error
	panicValue  any
	calls       int
}

func (strategy *fixedStrategy) Name() string { return strategy.name }

func (strategy *fixedStrategy) Forecast(_ context.Context, _ uint, _ time.Time, _ int) ([]HeatOccurrence, error) {
	strategy.calls++
	if strategy.panicValue != nil {
		panic(strategy.panicValue)
	}
	return strategy.occurrences, strategy.err
}

type slowStrategy struct {
	name    string
	release chan struct{}
}

func (strategy *slowStrategy) Name() string { return strategy.name }

func (strategy *slowStrategy) Forecast(ctx context.Context, _ uint, _ time.Time, _ int) ([]HeatOccurrence, error) {
	select {
	case <-strategy.release:
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

var errFakeSource = errors.New("fake source failure")

// signalStrategy reports each invocation on a buffered channel, so tests can
// observe background runs without sharing a counter across goroutines.
type signalStrategy struct {
	name        string
	occurrences []HeatOccurrence
	invoked     chan struct{}
}

func (strategy *signalStrategy) Name() string { return strategy.name }

func (strategy *signalStrategy) Forecast(_ context.Context, _ uint, _ time.Time, _ int) ([]HeatOccurrence, error) {
	strategy.invoked <- struct{}{}
	return strategy.occurrences, nil
}
