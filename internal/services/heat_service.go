package services

import "time"

// NewForecastEngine wires both forecasting strategies over the same record
// sources and returns the supervisor callers actually talk to.
func NewForecastEngine(dogs ForecastDogSource, cycles ForecastCycleSource, plans ForecastPlanSource, litters ForecastLitterSource, location *time.Location, config ForecastConfig) *ForecastSupervisor {
	legacy := NewLegacyHeatForecaster(dogs, cycles, plans, location)
	unified := NewUnifiedHeatForecaster(dogs, cycles, plans, litters, location)
	return NewForecastSupervisor(legacy, unified, config)
}

// NextHeatByDog reduces a forecast to the earliest upcoming occurrence per
// dog, tolerating dates up to the heat reminder's past window behind today.
// Observed occurrences (active or confirmed) are not "next": they already
// happened.
func NextHeatByDog(occurrences []HeatOccurrence, today time.Time, location *time.Location) map[uint]HeatOccurrence {
	earliest := DateAtLocation(today, location).AddDate(0, 0, -heatWindowPastDays)

	next := make(map[uint]HeatOccurrence)
	for _, occurrence := range occurrences {
		switch occurrence.Status {
		case HeatStatusActive, HeatStatusConfirmed:
			continue
		}
		day := DateAtLocation(occurrence.Date, location)
		if day.Before(earliest) {
			continue
		}
		current, seen := next[occurrence.DogID]
		if !seen || day.Before(current.Date) {
			occurrence.Date = day
			next[occurrence.DogID] = occurrence
		}
	}
	return next
}
