package services

import "time"

// maxForecastSteps bounds the projection loop. A misconfigured interval
// (zero or near-zero) must never spin the caller.
const maxForecastSteps = 20

// DefaultForecastHorizonYears is how far ahead projections run when the
// caller does not ask for a specific horizon.
const DefaultForecastHorizonYears = 1

// ProjectHeatDates projects future heat dates by repeatedly adding the
// interval to the anchor. The anchor itself is the last known heat start and
// is not part of the result; the first projected date is anchor + interval.
// Projection stops at the horizon or after maxForecastSteps, whichever comes
// first. A zero anchor or non-positive interval yields nil: no history means
// no forecast, not an error.
func ProjectHeatDates(anchor time.Time, intervalDays int, horizon time.Time) []time.Time {
	if anchor.IsZero() || intervalDays <= 0 || horizon.IsZero() {
		return nil
	}

	dates := make([]time.Time, 0, maxForecastSteps)
	current := anchor
	for step := 0; step < maxForecastSteps; step++ {
		current = current.AddDate(0, 0, intervalDays)
		if current.After(horizon) {
			break
		}
		dates = append(dates, current)
	}
	return dates
}

// ForecastHorizon converts a horizon in years to the last projected date.
// Non-positive years fall back to the default horizon.
func ForecastHorizon(now time.Time, horizonYears int) time.Time {
	if horizonYears <= 0 {
		horizonYears = DefaultForecastHorizonYears
	}
	return now.AddDate(horizonYears, 0, 0)
}

// NextProjectedHeat rolls the anchor forward by whole intervals until the
// projected date is no earlier than earliest. Returns a zero time when the
// anchor or interval cannot support a projection within the step cap.
func NextProjectedHeat(anchor time.Time, intervalDays int, earliest time.Time) time.Time {
	if anchor.IsZero() || intervalDays <= 0 {
		return time.Time{}
	}

	current := anchor
	for step := 0; step < maxForecastSteps; step++ {
		current = current.AddDate(0, 0, intervalDays)
		if !current.Before(earliest) {
			return current
		}
	}
	return time.Time{}
}
