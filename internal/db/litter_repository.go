package db

import (
	"github.com/rowanleith/whelpline/internal/models"
	"gorm.io/gorm"
)

type LitterRepository struct {
	database *gorm.DB
}

func NewLitterRepository(database *gorm.DB) *LitterRepository {
	return &LitterRepository{database: database}
}

func (repo *LitterRepository) ListByUser(userID uint) ([]models.Litter, error) {
	litters := make([]models.Litter, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id ASC").Find(&litters).Error; err != nil {
		return nil, err
	}
	return litters, nil
}

func (repo *LitterRepository) ListByDam(damID uint) ([]models.Litter, error) {
	litters := make([]models.Litter, 0)
	if err := repo.database.Where("dam_id = ?", damID).Order("id ASC").Find(&litters).Error; err != nil {
		return nil, err
	}
	return litters, nil
}

func (repo *LitterRepository) FindByID(litterID uint) (models.Litter, bool, error) {
	var litter models.Litter
	result := repo.database.Where("id = ?", litterID).Limit(1).Find(&litter)
	if result.Error != nil {
		return models.Litter{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Litter{}, false, nil
	}
	return litter, true, nil
}

func (repo *LitterRepository) Create(litter *models.Litter) error {
	return repo.database.Create(litter).Error
}

func (repo *LitterRepository) Save(litter *models.Litter) error {
	return repo.database.Save(litter).Error
}
