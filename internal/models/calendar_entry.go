package models

import "time"

// CalendarEntry is a user-authored calendar note. RawDate is stored as plain
// "2006-01-02" text; imports and older clients have written junk into it, so
// readers parse it at query time and drop entries they cannot place.
type CalendarEntry struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Title     string `gorm:"not null"`
	RawDate   string `gorm:"not null"`
	TimeLabel string
	Category  string `gorm:"not null;default:other"`
	DogID     uint   `gorm:"not null;default:0"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
