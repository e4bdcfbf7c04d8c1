package db

import (
	"github.com/rowanleith/whelpline/internal/models"
	"gorm.io/gorm"
)

type DogRepository struct {
	database *gorm.DB
}

func NewDogRepository(database *gorm.DB) *DogRepository {
	return &DogRepository{database: database}
}

func (repo *DogRepository) ListByUser(userID uint) ([]models.Dog, error) {
	dogs := make([]models.Dog, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("name ASC, id ASC").Find(&dogs).Error; err != nil {
		return nil, err
	}
	return dogs, nil
}

func (repo *DogRepository) ListBreedingFemales(userID uint) ([]models.Dog, error) {
	dogs := make([]models.Dog, 0)
	if err := repo.database.
		Where("user_id = ? AND sex = ? AND sterilized_at IS NULL", userID, models.SexFemale).
		Order("name ASC, id ASC").
		Find(&dogs).Error; err != nil {
		return nil, err
	}
	return dogs, nil
}

func (repo *DogRepository) FindByIDForUser(dogID uint, userID uint) (models.Dog, bool, error) {
	var dog models.Dog
	result := repo.database.Where("id = ? AND user_id = ?", dogID, userID).Limit(1).Find(&dog)
	if result.Error != nil {
		return models.Dog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Dog{}, false, nil
	}
	return dog, true, nil
}

func (repo *DogRepository) Create(dog *models.Dog) error {
	return repo.database.Create(dog).Error
}

func (repo *DogRepository) Save(dog *models.Dog) error {
	return repo.database.Save(dog).Error
}

func (repo *DogRepository) DeleteByIDForUser(dogID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", dogID, userID).Delete(&models.Dog{}).Error
}
