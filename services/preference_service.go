package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// GetPreferences returns the user's settings as a flat key/value map.
// The client caches these locally and treats this as the source of truth.
func GetPreferences(userID uint) (map[string]string, error) {
	var prefs []models.UserPreference
	if err := config.DB.Where("user_id = ?", userID).Find(&prefs).Error; err != nil {
		return nil, err
	}
	out := map[string]string{}
	for _, p := range prefs {
		out[p.Key] = p.Value
	}
	return out, nil
}

func SetPreference(userID uint, key, value string) error {
	var pref models.UserPreference
	err := config.DB.Where("user_id = ? AND key = ?", userID, key).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = models.UserPreference{UserID: userID, Key: key, Value: value}
		return config.DB.Create(&pref).Error
	}
	if err != nil {
		return err
	}
	pref.Value = value
	return config.DB.Save(&pref).Error
}
