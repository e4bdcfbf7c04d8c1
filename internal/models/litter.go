package models

import "time"

// Litter records a mating and its outcome. MatingDate is the direct
// confirmation that a forecast heat actually led to a mating; HeatCycleID
// ties the litter to the underlying cycle independently of any breeding plan.
type Litter struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"not null;index"`
	DamID       uint `gorm:"not null;index"`
	SireName    string
	HeatCycleID uint `gorm:"not null;default:0"`
	MatingDate  *time.Time
	BirthDate   *time.Time
	PuppyCount  int `gorm:"not null;default:0"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Born reports whether the litter has arrived and puppy-care schedules apply.
func (litter Litter) Born() bool {
	return litter.BirthDate != nil && !litter.BirthDate.IsZero()
}
