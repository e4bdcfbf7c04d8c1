package db

import (
	"time"

	"github.com/rowanleith/whelpline/internal/models"
	"gorm.io/gorm"
)

type HeatCycleRepository struct {
	database *gorm.DB
}

func NewHeatCycleRepository(database *gorm.DB) *HeatCycleRepository {
	return &HeatCycleRepository{database: database}
}

func (repo *HeatCycleRepository) ListByDog(dogID uint) ([]models.HeatCycle, error) {
	cycles := make([]models.HeatCycle, 0)
	if err := repo.database.Where("dog_id = ?", dogID).Order("start_date ASC, id ASC").Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *HeatCycleRepository) FindByID(cycleID uint) (models.HeatCycle, bool, error) {
	var cycle models.HeatCycle
	result := repo.database.Where("id = ?", cycleID).Limit(1).Find(&cycle)
	if result.Error != nil {
		return models.HeatCycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HeatCycle{}, false, nil
	}
	return cycle, true, nil
}

func (repo *HeatCycleRepository) Create(cycle *models.HeatCycle) error {
	return repo.database.Create(cycle).Error
}

func (repo *HeatCycleRepository) Save(cycle *models.HeatCycle) error {
	return repo.database.Save(cycle).Error
}

func (repo *HeatCycleRepository) CloseCycle(cycleID uint, endDate time.Time) error {
	return repo.database.Model(&models.HeatCycle{}).Where("id = ?", cycleID).Update("end_date", endDate).Error
}
