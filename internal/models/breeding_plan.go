package models

import "time"

// BreedingPlan is a user-declared intention to mate a dam around TargetDate.
// Completed plans normally carry the resulting litter id, but a litter can
// outlive its plan: deleting the plan never deletes the litter.
type BreedingPlan struct {
	ID         uint      `gorm:"primaryKey"`
	DogID      uint      `gorm:"not null;index"`
	SireName   string
	TargetDate time.Time `gorm:"type:date;not null"`
	Completed  bool      `gorm:"not null;default:false"`
	LitterID   uint      `gorm:"not null;default:0"`
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
