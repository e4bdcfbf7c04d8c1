package models

import "time"

const (
	ReminderCategoryHeat        = "heat"
	ReminderCategoryVaccination = "vaccination"
	ReminderCategoryBirthday    = "birthday"
	ReminderCategoryDeworming   = "deworming"
	ReminderCategoryVetVisit    = "vet_visit"
	ReminderCategoryWeighing    = "weighing"
)

const (
	ReminderPriorityHigh   = "high"
	ReminderPriorityMedium = "medium"
	ReminderPriorityLow    = "low"
)

// Reminder is a derived, time-windowed nudge. Key is deterministic for a
// given category, related entity and generation time, so regenerating the
// same schedule twice in one run upserts instead of duplicating. The
// Completed flag belongs to the user, never to the generator.
type Reminder struct {
	ID          uint   `gorm:"primaryKey"`
	Key         string `gorm:"uniqueIndex;not null"`
	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Category    string    `gorm:"not null"`
	DueDate     time.Time `gorm:"type:date;not null"`
	Priority    string    `gorm:"not null;default:medium"`
	RelatedID   uint      `gorm:"not null;default:0"`
	Completed   bool      `gorm:"not null;default:false"`
	GeneratedAt time.Time `gorm:"not null"`
}
