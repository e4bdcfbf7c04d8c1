package services

import (
	"fmt"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

// Visibility windows per category, in days relative to today. A rule only
// fires while the due date sits inside its window.
const (
	heatWindowPastDays   = 5
	heatWindowAheadDays  = 30
	heatUrgentAheadDays  = 7
	vaccinationPastDays  = 30
	vaccinationAheadDays = 60
	// vaccinationUrgentAheadDays currently matches the heat urgency window
	// but is tuned independently.
	vaccinationUrgentAheadDays = 7
	birthdayPastDays     = 2
	birthdayAheadDays    = 7
	dewormingSlackDays   = 2
	vetVisitSlackDays    = 1
	weighingEveryDays    = 3
	weighingMaxAgeDays   = 21
)

// litterDewormingOffsets are the standard puppy deworming days counted from
// the litter's birth date.
var litterDewormingOffsets = []int{21, 35, 49}

const litterVetVisitOffsetDays = 42

// ReminderKey builds the stable identity of a generated reminder. For a
// fixed generation time the key is deterministic, so re-running a rule in
// the same pass upserts; distinct generation passes produce distinct keys.
func ReminderKey(category string, relatedID uint, generatedAt time.Time) string {
	return fmt.Sprintf("%s-%d-%d", category, relatedID, generatedAt.Unix())
}

// NextAnniversary returns the month/day anniversary of base that is nearest
// without being in the past: today's own anniversary counts as this year.
func NextAnniversary(base time.Time, today time.Time, location *time.Location) time.Time {
	day := DateAtLocation(today, location)
	thisYear := time.Date(day.Year(), base.Month(), base.Day(), 0, 0, 0, 0, day.Location())
	if thisYear.Before(day) {
		return thisYear.AddDate(1, 0, 0)
	}
	return thisYear
}

// anniversaryWithGrace behaves like NextAnniversary but keeps this year's
// date while it is at most graceDays in the past, so a just-missed
// anniversary can still surface as overdue.
func anniversaryWithGrace(base time.Time, today time.Time, graceDays int, location *time.Location) time.Time {
	day := DateAtLocation(today, location)
	thisYear := time.Date(day.Year(), base.Month(), base.Day(), 0, 0, 0, 0, day.Location())
	if thisYear.Before(day) && DaysBetween(thisYear, day, location) <= graceDays {
		return thisYear
	}
	return NextAnniversary(base, today, location)
}

// BuildHeatReminder fires when a dog's next expected heat is between five
// days past and thirty days ahead. Within a week (or overdue) it is high
// priority.
func BuildHeatReminder(dog models.Dog, nextHeat time.Time, today time.Time, generatedAt time.Time, location *time.Location) (models.Reminder, bool) {
	if nextHeat.IsZero() {
		return models.Reminder{}, false
	}

	due := DateAtLocation(nextHeat, location)
	daysUntil := DaysBetween(today, due, location)
	if daysUntil < -heatWindowPastDays || daysUntil > heatWindowAheadDays {
		return models.Reminder{}, false
	}

	priority := models.ReminderPriorityMedium
	if daysUntil <= heatUrgentAheadDays {
		priority = models.ReminderPriorityHigh
	}

	return models.Reminder{
		Key:         ReminderKey(models.ReminderCategoryHeat, dog.ID, generatedAt),
		UserID:      dog.UserID,
		Title:       fmt.Sprintf("Heat expected: %s", dog.Name),
		Description: fmt.Sprintf("%s is expected in heat around %s.", dog.Name, due.Format("Jan 2")),
		Category:    models.ReminderCategoryHeat,
		DueDate:     due,
		Priority:    priority,
		RelatedID:   dog.ID,
		GeneratedAt: generatedAt,
	}, true
}

// BuildVaccinationReminder tracks the yearly booster anniversary. The due
// date may sit up to thirty days in the past (overdue) or sixty days ahead;
// overdue or within a week is high priority.
func BuildVaccinationReminder(dog models.Dog, today time.Time, generatedAt time.Time, location *time.Location) (models.Reminder, bool) {
	if dog.LastVaccinationAt == nil || dog.LastVaccinationAt.IsZero() {
		return models.Reminder{}, false
	}

	due := NextAnniversary(*dog.LastVaccinationAt, today, location)

	// A booster skipped in a previous year shows up as overdue: the missed
	// anniversary is kept while it is strictly after the last actual shot
	// and no more than the past window behind today.
	lastShot := DateAtLocation(*dog.LastVaccinationAt, location)
	missed := due.AddDate(-1, 0, 0)
	if missed.After(lastShot) {
		overdueDays := DaysBetween(missed, today, location)
		if overdueDays > 0 && overdueDays <= vaccinationPastDays {
			due = missed
		}
	}

	daysUntil := DaysBetween(today, due, location)
	if daysUntil < -vaccinationPastDays || daysUntil > vaccinationAheadDays {
		return models.Reminder{}, false
	}

	priority := models.ReminderPriorityMedium
	if daysUntil <= vaccinationUrgentAheadDays {
		priority = models.ReminderPriorityHigh
	}

	description := fmt.Sprintf("Yearly vaccination for %s is due %s.", dog.Name, due.Format("Jan 2"))
	if daysUntil < 0 {
		description = fmt.Sprintf("Yearly vaccination for %s was due %s and is overdue.", dog.Name, due.Format("Jan 2"))
	}

	return models.Reminder{
		Key:         ReminderKey(models.ReminderCategoryVaccination, dog.ID, generatedAt),
		UserID:      dog.UserID,
		Title:       fmt.Sprintf("Vaccination due: %s", dog.Name),
		Description: description,
		Category:    models.ReminderCategoryVaccination,
		DueDate:     due,
		Priority:    priority,
		RelatedID:   dog.ID,
		GeneratedAt: generatedAt,
	}, true
}

// BuildBirthdayReminder is the low-stakes one: visible from two days after
// to a week before the dog's birthday.
func BuildBirthdayReminder(dog models.Dog, today time.Time, generatedAt time.Time, location *time.Location) (models.Reminder, bool) {
	if dog.BirthDate.IsZero() {
		return models.Reminder{}, false
	}

	due := anniversaryWithGrace(dog.BirthDate, today, birthdayPastDays, location)
	daysUntil := DaysBetween(today, due, location)
	if daysUntil < -birthdayPastDays || daysUntil > birthdayAheadDays {
		return models.Reminder{}, false
	}

	age := due.Year() - dog.BirthDate.Year()
	return models.Reminder{
		Key:         ReminderKey(models.ReminderCategoryBirthday, dog.ID, generatedAt),
		UserID:      dog.UserID,
		Title:       fmt.Sprintf("Birthday: %s", dog.Name),
		Description: fmt.Sprintf("%s turns %d on %s.", dog.Name, age, due.Format("Jan 2")),
		Category:    models.ReminderCategoryBirthday,
		DueDate:     due,
		Priority:    models.ReminderPriorityLow,
		RelatedID:   dog.ID,
		GeneratedAt: generatedAt,
	}, true
}

// BuildLitterCareReminders derives the whole puppy-care schedule for one
// litter: deworming at fixed offsets, the vet check at six weeks, and
// weigh-ins every third day for the first three weeks. Each rule is
// independent; two litters due on the same day both fire.
func BuildLitterCareReminders(litter models.Litter, today time.Time, generatedAt time.Time, location *time.Location) []models.Reminder {
	if !litter.Born() {
		return nil
	}

	birth := DateAtLocation(*litter.BirthDate, location)
	day := DateAtLocation(today, location)
	reminders := make([]models.Reminder, 0, 3)

	for _, offset := range litterDewormingOffsets {
		due := birth.AddDate(0, 0, offset)
		if absInt(DaysBetween(day, due, location)) > dewormingSlackDays {
			continue
		}
		reminders = append(reminders, models.Reminder{
			Key:         ReminderKey(models.ReminderCategoryDeworming, litter.ID, generatedAt),
			UserID:      litter.UserID,
			Title:       fmt.Sprintf("Deworm litter #%d", litter.ID),
			Description: fmt.Sprintf("Puppies are %d days old: deworming round due %s.", offset, due.Format("Jan 2")),
			Category:    models.ReminderCategoryDeworming,
			DueDate:     due,
			Priority:    models.ReminderPriorityHigh,
			RelatedID:   litter.ID,
			GeneratedAt: generatedAt,
		})
	}

	vetDue := birth.AddDate(0, 0, litterVetVisitOffsetDays)
	if absInt(DaysBetween(day, vetDue, location)) <= vetVisitSlackDays {
		reminders = append(reminders, models.Reminder{
			Key:         ReminderKey(models.ReminderCategoryVetVisit, litter.ID, generatedAt),
			UserID:      litter.UserID,
			Title:       fmt.Sprintf("Vet check for litter #%d", litter.ID),
			Description: fmt.Sprintf("Six-week vet visit due %s.", vetDue.Format("Jan 2")),
			Category:    models.ReminderCategoryVetVisit,
			DueDate:     vetDue,
			Priority:    models.ReminderPriorityHigh,
			RelatedID:   litter.ID,
			GeneratedAt: generatedAt,
		})
	}

	ageDays := DaysBetween(birth, day, location)
	if ageDays >= weighingEveryDays && ageDays <= weighingMaxAgeDays && ageDays%weighingEveryDays == 0 {
		reminders = append(reminders, models.Reminder{
			Key:         ReminderKey(models.ReminderCategoryWeighing, litter.ID, generatedAt),
			UserID:      litter.UserID,
			Title:       fmt.Sprintf("Weigh litter #%d", litter.ID),
			Description: fmt.Sprintf("Puppies are %d days old: record weights today.", ageDays),
			Category:    models.ReminderCategoryWeighing,
			DueDate:     day,
			Priority:    models.ReminderPriorityMedium,
			RelatedID:   litter.ID,
			GeneratedAt: generatedAt,
		})
	}

	return reminders
}
