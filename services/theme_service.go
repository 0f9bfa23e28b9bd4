package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

func ListThemes() ([]models.Theme, error) {
	var themes []models.Theme
	err := config.DB.Order("id asc").Find(&themes).Error
	return themes, err
}

// TimeOfDaySlot buckets an hour into the four palette slots.
func TimeOfDaySlot(now time.Time) string {
	switch h := now.Hour(); {
	case h >= 5 && h < 12:
		return "morning"
	case h >= 12 && h < 17:
		return "afternoon"
	case h >= 17 && h < 21:
		return "evening"
	default:
		return "night"
	}
}

// CurrentTheme picks the palette bound to the current time-of-day slot,
// falling back to the first theme when none is bound.
func CurrentTheme(now time.Time) (*models.Theme, error) {
	slot := TimeOfDaySlot(now)

	var theme models.Theme
	err := config.DB.Where("time_of_day = ?", slot).First(&theme).Error
	if err == nil {
		return &theme, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := config.DB.Order("id asc").First(&theme).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &theme, nil
}

func CreateTheme(theme models.Theme) (*models.Theme, error) {
	if err := config.DB.Create(&theme).Error; err != nil {
		return nil, err
	}
	return &theme, nil
}
