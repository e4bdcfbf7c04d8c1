package services

import "time"

// DateAtLocation truncates a timestamp to the start of its calendar day in
// the given location. All engine date math goes through this so time-of-day
// noise never shifts a comparison across midnight.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, next-day-start) range of the
// calendar day containing value.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// DaysBetween counts whole calendar days from a to b, negative when b is
// before a. Both sides are normalized to start of day, then re-anchored in
// UTC so a DST transition inside the span cannot shorten a day to 23 hours
// and truncate the count.
func DaysBetween(a time.Time, b time.Time, location *time.Location) int {
	dayA := DateAtLocation(a, location)
	dayB := DateAtLocation(b, location)
	utcA := time.Date(dayA.Year(), dayA.Month(), dayA.Day(), 0, 0, 0, 0, time.UTC)
	utcB := time.Date(dayB.Year(), dayB.Month(), dayB.Day(), 0, 0, 0, 0, time.UTC)
	return int(utcB.Sub(utcA).Hours() / 24)
}

func sameCalendarDay(a time.Time, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
