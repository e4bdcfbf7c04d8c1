package services

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/rowanleith/whelpline/internal/models"
)

// MergedCalendarEvent is the single display shape for everything that can
// land on a calendar day: forecast heats, derived reminders, and the user's
// own entries. Recomputed per query, owned by nobody.
type MergedCalendarEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	TimeLabel string    `json:"time_label,omitempty"`
	Category  string    `json:"category"`
	DogID     uint      `json:"dog_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Color     string    `json:"color"`
	Priority  string    `json:"priority"`
}

type categoryStyle struct {
	Color    string
	Priority string
	Rank     int
}

var calendarCategoryStyles = map[string]categoryStyle{
	models.ReminderCategoryHeat:        {Color: "#E91E63", Priority: models.ReminderPriorityHigh, Rank: 0},
	models.ReminderCategoryDeworming:   {Color: "#7CB342", Priority: models.ReminderPriorityHigh, Rank: 1},
	models.ReminderCategoryVetVisit:    {Color: "#3498DB", Priority: models.ReminderPriorityHigh, Rank: 2},
	models.ReminderCategoryVaccination: {Color: "#FF7043", Priority: models.ReminderPriorityMedium, Rank: 3},
	models.ReminderCategoryWeighing:    {Color: "#26A69A", Priority: models.ReminderPriorityMedium, Rank: 4},
	models.ReminderCategoryBirthday:    {Color: "#9B59B6", Priority: models.ReminderPriorityLow, Rank: 5},
}

var defaultCategoryStyle = categoryStyle{Color: "#95A5A6", Priority: models.ReminderPriorityLow, Rank: 9}

// CalendarCategoryStyle returns display metadata for a category, falling
// back to a neutral style for unknown tags.
func CalendarCategoryStyle(category string) (string, string) {
	style, ok := calendarCategoryStyles[category]
	if !ok {
		style = defaultCategoryStyle
	}
	return style.Color, style.Priority
}

func categoryRank(category string) int {
	style, ok := calendarCategoryStyles[category]
	if !ok {
		return defaultCategoryStyle.Rank
	}
	return style.Rank
}

// MergeEventsForDay gathers everything that falls on the given calendar day,
// independent of time-of-day. Custom entries with unparseable dates are
// dropped with a log line rather than failing the query.
func MergeEventsForDay(day time.Time, occurrences []HeatOccurrence, reminders []models.Reminder, entries []models.CalendarEntry, location *time.Location) []MergedCalendarEvent {
	target := DateAtLocation(day, location)
	events := make([]MergedCalendarEvent, 0)

	for _, occurrence := range occurrences {
		if !sameCalendarDay(DateAtLocation(occurrence.Date, location), target) {
			continue
		}
		color, priority := CalendarCategoryStyle(models.ReminderCategoryHeat)
		events = append(events, MergedCalendarEvent{
			ID:       fmt.Sprintf("heat-%d-%s", occurrence.DogID, target.Format("2006-01-02")),
			Title:    fmt.Sprintf("Heat (%s): %s", occurrence.Status, occurrence.DogName),
			Date:     target,
			Category: models.ReminderCategoryHeat,
			DogID:    occurrence.DogID,
			Notes:    occurrence.Notes,
			Color:    color,
			Priority: priority,
		})
	}

	for _, reminder := range reminders {
		if !sameCalendarDay(DateAtLocation(reminder.DueDate, location), target) {
			continue
		}
		color, _ := CalendarCategoryStyle(reminder.Category)
		event := MergedCalendarEvent{
			ID:       reminder.Key,
			Title:    reminder.Title,
			Date:     target,
			Category: reminder.Category,
			Notes:    reminder.Description,
			Color:    color,
			Priority: reminder.Priority,
		}
		switch reminder.Category {
		case models.ReminderCategoryHeat, models.ReminderCategoryVaccination, models.ReminderCategoryBirthday:
			event.DogID = reminder.RelatedID
		}
		events = append(events, event)
	}

	for _, entry := range entries {
		entryDay, err := time.ParseInLocation("2006-01-02", entry.RawDate, targetLocation(location))
		if err != nil {
			log.Printf("calendar: skipping entry %d: unparseable date %q", entry.ID, entry.RawDate)
			continue
		}
		if !sameCalendarDay(entryDay, target) {
			continue
		}
		color, priority := CalendarCategoryStyle(entry.Category)
		events = append(events, MergedCalendarEvent{
			ID:        fmt.Sprintf("entry-%d", entry.ID),
			Title:     entry.Title,
			Date:      target,
			TimeLabel: entry.TimeLabel,
			Category:  entry.Category,
			DogID:     entry.DogID,
			Notes:     entry.Notes,
			Color:     color,
			Priority:  priority,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		rankI := categoryRank(events[i].Category)
		rankJ := categoryRank(events[j].Category)
		if rankI != rankJ {
			return rankI < rankJ
		}
		return events[i].Title < events[j].Title
	})
	return events
}

func targetLocation(location *time.Location) *time.Location {
	if location == nil {
		return time.UTC
	}
	return location
}
