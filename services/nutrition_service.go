package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type NutritionSummary struct {
	Date          string `json:"date"`
	TotalCalories int    `json:"total_calories"`
	TotalProtein  int    `json:"total_protein"`
	TotalCarbs    int    `json:"total_carbs"`
	TotalFats     int    `json:"total_fats"`
	MealCount     int    `json:"meal_count"`
}

func ListNutritionLogs(userID uint, date string) ([]models.NutritionLog, error) {
	var logs []models.NutritionLog
	q := config.DB.Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	err := q.Order("id asc").Find(&logs).Error
	return logs, err
}

func CreateNutritionLog(userID uint, log models.NutritionLog) (*models.NutritionLog, error) {
	if err := ValidateDate(log.Date); err != nil {
		return nil, err
	}
	log.UserID = userID
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// NutritionSummaryForDate sums rows whose date matches the key exactly.
func NutritionSummaryForDate(userID uint, date string) (*NutritionSummary, error) {
	logs, err := ListNutritionLogs(userID, date)
	if err != nil {
		return nil, err
	}

	out := &NutritionSummary{Date: date, MealCount: len(logs)}
	for _, l := range logs {
		out.TotalCalories += l.Calories
		out.TotalProtein += l.Protein
		out.TotalCarbs += l.Carbs
		out.TotalFats += l.Fats
	}
	return out, nil
}

func DeleteNutritionLog(userID, logID uint) error {
	var log models.NutritionLog
	if err := config.DB.First(&log, logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if log.UserID != userID {
		return ErrForbidden
	}
	return config.DB.Delete(&log).Error
}
