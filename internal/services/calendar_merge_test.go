package services

import (
	"testing"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

func TestMergeEventsForDayCombinesAllSources(t *testing.T) {
	t.Parallel()

	day := mustParseDay(t, "2026-06-20")
	occurrences := []HeatOccurrence{
		{DogID: 1, DogName: "Luna", Date: day, Status: HeatStatusPredicted},
		{DogID: 2, DogName: "Nala", Date: mustParseDay(t, "2026-06-21"), Status: HeatStatusPredicted},
	}
	reminders := []models.Reminder{{
		Key: "vaccination-1-1750000000", Title: "Vaccination due: Luna",
		Category: models.ReminderCategoryVaccination, DueDate: day,
		Priority: models.ReminderPriorityHigh, RelatedID: 1,
	}}
	entries := []models.CalendarEntry{{
		ID: 5, UserID: 10, Title: "Groomer", RawDate: "2026-06-20", Category: "appointment",
	}}

	events := MergeEventsForDay(day, occurrences, reminders, entries, time.UTC)
	if len(events) != 3 {
		t.Fatalf("expected 3 events on the day, got %d", len(events))
	}

	// Category rank puts the heat first; the custom entry falls back to the
	// neutral style and sorts last.
	if events[0].Category != models.ReminderCategoryHeat {
		t.Fatalf("expected heat first, got %s", events[0].Category)
	}
	if events[0].ID != "heat-1-2026-06-20" {
		t.Fatalf("unexpected heat event id %q", events[0].ID)
	}
	if events[0].Title != "Heat (predicted): Luna" {
		t.Fatalf("unexpected heat title %q", events[0].Title)
	}
	if events[2].Category != "appointment" {
		t.Fatalf("expected the custom entry last, got %s", events[2].Category)
	}
	if events[2].Color == "" || events[2].Priority == "" {
		t.Fatal("unknown categories still need a fallback color and priority")
	}
}

func TestMergeEventsForDaySkipsMalformedEntries(t *testing.T) {
	t.Parallel()

	day := mustParseDay(t, "2026-06-20")
	entries := []models.CalendarEntry{
		{ID: 1, Title: "Broken", RawDate: "20/06/2026"},
		{ID: 2, Title: "Also broken", RawDate: "not a date"},
		{ID: 3, Title: "Fine", RawDate: "2026-06-20"},
	}

	events := MergeEventsForDay(day, nil, nil, entries, time.UTC)
	if len(events) != 1 {
		t.Fatalf("expected only the well-formed entry, got %d events", len(events))
	}
	if events[0].Title != "Fine" {
		t.Fatalf("unexpected survivor %q", events[0].Title)
	}
}

func TestMergeEventsForDayIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	day := mustParseDay(t, "2026-06-20")
	occurrences := []HeatOccurrence{{
		DogID: 1, DogName: "Luna",
		Date:   time.Date(2026, time.June, 20, 23, 45, 0, 0, time.UTC),
		Status: HeatStatusPredicted,
	}}

	events := MergeEventsForDay(day, occurrences, nil, nil, time.UTC)
	if len(events) != 1 {
		t.Fatalf("a late-evening timestamp still belongs to the day, got %d events", len(events))
	}
}

func TestMergeEventsForDayDogLinkage(t *testing.T) {
	t.Parallel()

	day := mustParseDay(t, "2026-06-20")
	reminders := []models.Reminder{
		{Key: "birthday-1-1", Title: "Birthday: Luna", Category: models.ReminderCategoryBirthday, DueDate: day, Priority: models.ReminderPriorityLow, RelatedID: 1},
		{Key: "deworming-3-1", Title: "Deworm litter #3", Category: models.ReminderCategoryDeworming, DueDate: day, Priority: models.ReminderPriorityHigh, RelatedID: 3},
	}

	events := MergeEventsForDay(day, nil, reminders, nil, time.UTC)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, event := range events {
		switch event.Category {
		case models.ReminderCategoryBirthday:
			if event.DogID != 1 {
				t.Fatalf("birthday reminder should link its dog, got %d", event.DogID)
			}
		case models.ReminderCategoryDeworming:
			if event.DogID != 0 {
				t.Fatalf("litter reminders carry no dog link, got %d", event.DogID)
			}
		}
	}
}

func TestCalendarCategoryStyleFallback(t *testing.T) {
	t.Parallel()

	knownColor, knownPriority := CalendarCategoryStyle(models.ReminderCategoryHeat)
	if knownColor == "" || knownPriority != models.ReminderPriorityHigh {
		t.Fatalf("unexpected heat style: %q/%q", knownColor, knownPriority)
	}

	fallbackColor, fallbackPriority := CalendarCategoryStyle("something else")
	if fallbackColor == "" || fallbackPriority != models.ReminderPriorityLow {
		t.Fatalf("unexpected fallback style: %q/%q", fallbackColor, fallbackPriority)
	}
}
