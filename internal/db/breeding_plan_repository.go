package db

import (
	"github.com/rowanleith/whelpline/internal/models"
	"gorm.io/gorm"
)

type BreedingPlanRepository struct {
	database *gorm.DB
}

func NewBreedingPlanRepository(database *gorm.DB) *BreedingPlanRepository {
	return &BreedingPlanRepository{database: database}
}

func (repo *BreedingPlanRepository) ListByDog(dogID uint) ([]models.BreedingPlan, error) {
	plans := make([]models.BreedingPlan, 0)
	if err := repo.database.Where("dog_id = ?", dogID).Order("target_date ASC, id ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *BreedingPlanRepository) ListByUser(userID uint) ([]models.BreedingPlan, error) {
	plans := make([]models.BreedingPlan, 0)
	if err := repo.database.
		Joins("JOIN dogs ON dogs.id = breeding_plans.dog_id").
		Where("dogs.user_id = ?", userID).
		Order("breeding_plans.target_date ASC, breeding_plans.id ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *BreedingPlanRepository) FindByID(planID uint) (models.BreedingPlan, bool, error) {
	var plan models.BreedingPlan
	result := repo.database.Where("id = ?", planID).Limit(1).Find(&plan)
	if result.Error != nil {
		return models.BreedingPlan{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.BreedingPlan{}, false, nil
	}
	return plan, true, nil
}

func (repo *BreedingPlanRepository) Create(plan *models.BreedingPlan) error {
	return repo.database.Create(plan).Error
}

func (repo *BreedingPlanRepository) Save(plan *models.BreedingPlan) error {
	return repo.database.Save(plan).Error
}

func (repo *BreedingPlanRepository) MarkCompleted(planID uint, litterID uint) error {
	return repo.database.Model(&models.BreedingPlan{}).Where("id = ?", planID).Updates(map[string]any{
		"completed": true,
		"litter_id": litterID,
	}).Error
}

func (repo *BreedingPlanRepository) DeleteByID(planID uint) error {
	return repo.database.Where("id = ?", planID).Delete(&models.BreedingPlan{}).Error
}
