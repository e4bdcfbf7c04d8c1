package api

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	KennelName string `json:"kennel_name" form:"kennel_name"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type recoverAccountInput struct {
	RecoveryCode string `json:"recovery_code"`
	NewPassword  string `json:"new_password"`
}

type dogInput struct {
	Name              string  `json:"name"`
	Breed             string  `json:"breed"`
	Sex               string  `json:"sex"`
	Microchip         string  `json:"microchip"`
	BirthDate         string  `json:"birth_date"`
	SterilizedAt      *string `json:"sterilized_at"`
	HeatIntervalDays  int     `json:"heat_interval_days"`
	LastVaccinationAt *string `json:"last_vaccination_at"`
	LastDewormedAt    *string `json:"last_dewormed_at"`
	Notes             string  `json:"notes"`
}

type heatCycleInput struct {
	StartDate string `json:"start_date"`
	Notes     string `json:"notes"`
}

type closeHeatInput struct {
	EndDate string `json:"end_date"`
}

type breedingPlanInput struct {
	DogID      uint   `json:"dog_id"`
	SireName   string `json:"sire_name"`
	TargetDate string `json:"target_date"`
	Notes      string `json:"notes"`
}

type completePlanInput struct {
	MatingDate  string `json:"mating_date"`
	HeatCycleID uint   `json:"heat_cycle_id"`
}

type litterInput struct {
	DamID       uint   `json:"dam_id"`
	SireName    string `json:"sire_name"`
	HeatCycleID uint   `json:"heat_cycle_id"`
	MatingDate  string `json:"mating_date"`
	Notes       string `json:"notes"`
}

type litterBirthInput struct {
	BirthDate  string `json:"birth_date"`
	PuppyCount int    `json:"puppy_count"`
}

type calendarEntryInput struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	TimeLabel string `json:"time_label"`
	Category  string `json:"category"`
	DogID     uint   `json:"dog_id"`
	Notes     string `json:"notes"`
}
