package models

import "time"

const (
	SexFemale = "female"
	SexMale   = "male"
)

// DefaultHeatIntervalDays is the assumed gap between heat cycles when a dog
// has no recorded interval of her own.
const DefaultHeatIntervalDays = 180

type Dog struct {
	ID                uint   `gorm:"primaryKey"`
	UserID            uint   `gorm:"not null;index"`
	Name              string `gorm:"not null"`
	Breed             string
	Sex               string    `gorm:"not null;default:female"`
	Microchip         string
	BirthDate         time.Time `gorm:"type:date;not null"`
	SterilizedAt      *time.Time
	HeatIntervalDays  int `gorm:"not null;default:0"`
	LastVaccinationAt *time.Time
	LastDewormedAt    *time.Time
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Breedable reports whether heat forecasting applies to this dog.
func (dog Dog) Breedable() bool {
	return dog.Sex == SexFemale && dog.SterilizedAt == nil
}
