package services

import (
	"sort"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

type HeatStatus string

const (
	HeatStatusActive    HeatStatus = "active"
	HeatStatusConfirmed HeatStatus = "confirmed"
	HeatStatusPlanned   HeatStatus = "planned"
	HeatStatusMated     HeatStatus = "mated"
	HeatStatusPredicted HeatStatus = "predicted"
)

const (
	// planMatchToleranceDays is how far a breeding plan's target date may sit
	// from an occurrence and still corroborate it.
	planMatchToleranceDays = 7
	// matingMatchToleranceDays is the wider tolerance for a recorded mating
	// date. A mating is harder evidence than a plan, so it gets more slack.
	matingMatchToleranceDays = 14
	// activeHeatMaxAgeDays: an open heat older than this is stale data, not
	// an active heat.
	activeHeatMaxAgeDays = 21
)

// HeatStatusRank orders statuses for display: the closer a status is to an
// observed event, the earlier it sorts.
func HeatStatusRank(status HeatStatus) int {
	switch status {
	case HeatStatusActive:
		return 0
	case HeatStatusConfirmed:
		return 1
	case HeatStatusPlanned:
		return 2
	case HeatStatusMated:
		return 3
	default:
		return 4
	}
}

// HeatOccurrence is one forecast or observed heat on a specific date,
// annotated with its reconciled lifecycle status. Recomputed on every run and
// never persisted.
type HeatOccurrence struct {
	DogID        uint               `json:"dog_id"`
	DogName      string             `json:"dog_name"`
	Date         time.Time          `json:"date"`
	Year         int                `json:"year"`
	Month        time.Month         `json:"month"`
	Status       HeatStatus         `json:"status"`
	Confidence   IntervalConfidence `json:"confidence"`
	IntervalDays int                `json:"interval_days"`
	PlanID       uint               `json:"plan_id,omitempty"`
	LitterID     uint               `json:"litter_id,omitempty"`
	Notes        string             `json:"notes,omitempty"`
}

// ReconcileHeatStatus checks corroboration sources for one occurrence date.
// Plans are checked first: a completed or litter-linked plan within the plan
// tolerance makes the occurrence mated, an open plan makes it planned. A
// recorded mating date within the wider tolerance independently raises the
// status to mated, so a confirmed outcome survives deletion of the plan that
// produced it. With no corroboration the occurrence stays predicted.
func ReconcileHeatStatus(date time.Time, plans []models.BreedingPlan, litters []models.Litter, location *time.Location) (HeatStatus, uint, uint) {
	status := HeatStatusPredicted
	var planID uint
	var litterID uint

	for _, plan := range plans {
		if absInt(DaysBetween(plan.TargetDate, date, location)) > planMatchToleranceDays {
			continue
		}
		if plan.Completed || plan.LitterID != 0 {
			status = HeatStatusMated
			planID = plan.ID
			litterID = plan.LitterID
			break
		}
		if status == HeatStatusPredicted {
			status = HeatStatusPlanned
			planID = plan.ID
		}
	}

	for _, litter := range litters {
		if litter.MatingDate == nil {
			continue
		}
		if absInt(DaysBetween(*litter.MatingDate, date, location)) > matingMatchToleranceDays {
			continue
		}
		status = HeatStatusMated
		litterID = litter.ID
		break
	}

	return status, planID, litterID
}

// ReconcileObservedHeat classifies a heat drawn from the historical record
// rather than the projection. A still-open recent heat is active; anything
// else observed is confirmed; a litter tied to the cycle (or a mating date
// near the start) upgrades it to mated.
func ReconcileObservedHeat(cycle models.HeatCycle, litters []models.Litter, today time.Time, location *time.Location) (HeatStatus, uint) {
	for _, litter := range litters {
		if litter.HeatCycleID == cycle.ID && litter.HeatCycleID != 0 {
			return HeatStatusMated, litter.ID
		}
		if litter.MatingDate != nil &&
			absInt(DaysBetween(cycle.StartDate, *litter.MatingDate, location)) <= matingMatchToleranceDays {
			return HeatStatusMated, litter.ID
		}
	}

	if cycle.EndDate == nil {
		age := DaysBetween(cycle.StartDate, today, location)
		if age >= 0 && age < activeHeatMaxAgeDays {
			return HeatStatusActive, 0
		}
	}
	return HeatStatusConfirmed, 0
}

// SortHeatOccurrences orders a forecast list by status rank, then date
// ascending. The sort is stable so equal-ranked same-day occurrences keep
// their insertion order.
func SortHeatOccurrences(occurrences []HeatOccurrence) {
	sort.SliceStable(occurrences, func(i, j int) bool {
		rankI := HeatStatusRank(occurrences[i].Status)
		rankJ := HeatStatusRank(occurrences[j].Status)
		if rankI != rankJ {
			return rankI < rankJ
		}
		return occurrences[i].Date.Before(occurrences[j].Date)
	})
}

// WithinForecastWindow enforces the occurrence date invariant: forecast
// occurrences live between now and the horizon, while confirmed and active
// occurrences sourced from the current calendar year may sit in the past.
func WithinForecastWindow(occurrence HeatOccurrence, now time.Time, horizon time.Time, location *time.Location) bool {
	day := DateAtLocation(occurrence.Date, location)
	today := DateAtLocation(now, location)

	switch occurrence.Status {
	case HeatStatusActive, HeatStatusConfirmed:
		if day.Year() == today.Year() {
			return !day.After(horizon)
		}
	}
	return !day.Before(today) && !day.After(horizon)
}
