package db

import "gorm.io/gorm"

type Repositories struct {
	Users           *UserRepository
	Dogs            *DogRepository
	HeatCycles      *HeatCycleRepository
	BreedingPlans   *BreedingPlanRepository
	Litters         *LitterRepository
	Reminders       *ReminderRepository
	CalendarEntries *CalendarEntryRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(database),
		Dogs:            NewDogRepository(database),
		HeatCycles:      NewHeatCycleRepository(database),
		BreedingPlans:   NewBreedingPlanRepository(database),
		Litters:         NewLitterRepository(database),
		Reminders:       NewReminderRepository(database),
		CalendarEntries: NewCalendarEntryRepository(database),
	}
}
