package db

import (
	"github.com/rowanleith/whelpline/internal/models"
	"gorm.io/gorm"
)

type CalendarEntryRepository struct {
	database *gorm.DB
}

func NewCalendarEntryRepository(database *gorm.DB) *CalendarEntryRepository {
	return &CalendarEntryRepository{database: database}
}

func (repo *CalendarEntryRepository) ListByUser(userID uint) ([]models.CalendarEntry, error) {
	entries := make([]models.CalendarEntry, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("raw_date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *CalendarEntryRepository) Create(entry *models.CalendarEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *CalendarEntryRepository) Save(entry *models.CalendarEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *CalendarEntryRepository) DeleteByIDForUser(entryID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.CalendarEntry{}).Error
}
