package db

import (
	"time"

	"github.com/rowanleith/whelpline/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

func (repo *ReminderRepository) ListByUser(userID uint) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("due_date ASC, id ASC").Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (repo *ReminderRepository) ListByUserDueRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.
		Where("user_id = ? AND due_date >= ? AND due_date < ?", userID, fromStart, toEnd).
		Order("due_date ASC, id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// UpsertByKey inserts the reminder or refreshes an existing row with the same
// key. The completed flag is owned by the user and is left untouched on
// conflict.
func (repo *ReminderRepository) UpsertByKey(reminder *models.Reminder) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "due_date", "priority", "related_id", "generated_at",
		}),
	}).Create(reminder).Error
}

func (repo *ReminderRepository) SetCompletedByKey(userID uint, key string, completed bool) (bool, error) {
	result := repo.database.Model(&models.Reminder{}).
		Where("user_id = ? AND key = ?", userID, key).
		Update("completed", completed)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteStaleGenerated removes reminders produced before the given generation
// cutoff, keeping ones the user already ticked off.
func (repo *ReminderRepository) DeleteStaleGenerated(userID uint, generatedBefore time.Time) error {
	return repo.database.
		Where("user_id = ? AND completed = ? AND generated_at < ?", userID, false, generatedBefore).
		Delete(&models.Reminder{}).Error
}
