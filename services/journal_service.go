package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

func ListJournalEntries(userID uint) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc, id desc").
		Find(&entries).Error
	return entries, err
}

func CreateJournalEntry(userID uint, date, title, content, mood string) (*models.JournalEntry, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	entry := models.JournalEntry{
		UserID:  userID,
		Date:    date,
		Title:   title,
		Content: content,
		Mood:    mood,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func DeleteJournalEntry(userID, entryID uint) error {
	var entry models.JournalEntry
	if err := config.DB.First(&entry, entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if entry.UserID != userID {
		return ErrForbidden
	}
	return config.DB.Delete(&entry).Error
}
