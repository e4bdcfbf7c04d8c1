package services

import (
	"sort"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

// CycleProfile is the read-only view of one dog the heat engine works from:
// identity, the ordered history of observed heat starts, and an optional
// per-dog interval override. Assembled fresh for every forecast run.
type CycleProfile struct {
	DogID        uint
	DogName      string
	BirthDate    time.Time
	SterilizedAt *time.Time
	HeatStarts   []time.Time
	OpenHeat     *models.HeatCycle
	IntervalDays int
}

// BuildCycleProfile normalizes a dog's heat history into a CycleProfile.
// Start dates come out day-normalized and ascending regardless of how the
// rows were stored. The latest cycle without an end date is kept as OpenHeat.
func BuildCycleProfile(dog models.Dog, cycles []models.HeatCycle, location *time.Location) CycleProfile {
	profile := CycleProfile{
		DogID:        dog.ID,
		DogName:      dog.Name,
		BirthDate:    dog.BirthDate,
		SterilizedAt: dog.SterilizedAt,
		IntervalDays: dog.HeatIntervalDays,
	}

	starts := make([]time.Time, 0, len(cycles))
	for index := range cycles {
		cycle := cycles[index]
		if cycle.StartDate.IsZero() {
			continue
		}
		starts = append(starts, DateAtLocation(cycle.StartDate, location))
		if cycle.EndDate == nil {
			if profile.OpenHeat == nil || cycle.StartDate.After(profile.OpenHeat.StartDate) {
				open := cycle
				profile.OpenHeat = &open
			}
		}
	}

	sort.Slice(starts, func(i, j int) bool {
		return starts[i].Before(starts[j])
	})
	profile.HeatStarts = starts

	return profile
}

// LastHeatStart returns the most recent observed heat start, or a zero time
// when the dog has no history.
func (profile CycleProfile) LastHeatStart() time.Time {
	if len(profile.HeatStarts) == 0 {
		return time.Time{}
	}
	return profile.HeatStarts[len(profile.HeatStarts)-1]
}
