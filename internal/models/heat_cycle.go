package models

import "time"

// HeatCycle is one observed heat for a dog. StartDate is the day the heat was
// first noticed; EndDate stays nil while the heat is still running.
type HeatCycle struct {
	ID        uint      `gorm:"primaryKey"`
	DogID     uint      `gorm:"not null;index"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   *time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
