package services

import (
	"errors"
	"math"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type GoalProgress struct {
	GoalID      uint   `json:"goal_id"`
	GoalType    string `json:"goal_type"`
	TargetValue int    `json:"target_value"`
	Current     int    `json:"current"`
	Percentage  int    `json:"percentage"`
	OnTrack     bool   `json:"on_track"`
}

func ListGoals(userID uint) ([]models.WellnessGoal, error) {
	var goals []models.WellnessGoal
	err := config.DB.Where("user_id = ?", userID).Order("id asc").Find(&goals).Error
	return goals, err
}

func CreateGoal(userID uint, goalType string, targetValue int) (*models.WellnessGoal, error) {
	goal := models.WellnessGoal{
		UserID:      userID,
		GoalType:    goalType,
		TargetValue: targetValue,
		IsActive:    true,
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func UpdateGoal(userID, goalID uint, targetValue *int, isActive *bool) (*models.WellnessGoal, error) {
	var goal models.WellnessGoal
	if err := config.DB.First(&goal, goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrForbidden
	}

	if targetValue != nil {
		goal.TargetValue = *targetValue
	}
	if isActive != nil {
		goal.IsActive = *isActive
	}
	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func DeleteGoal(userID, goalID uint) error {
	var goal models.WellnessGoal
	if err := config.DB.First(&goal, goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if goal.UserID != userID {
		return ErrForbidden
	}
	return config.DB.Delete(&goal).Error
}

// GoalsProgressForDate evaluates every active goal against the date.
// Daily goal types read the same-date totals; weekly_workouts counts the
// Sunday-to-date window containing the date. Percentages are unclamped
// and defined as 0 when the target is 0.
func GoalsProgressForDate(userID uint, date string) ([]GoalProgress, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	var goals []models.WellnessGoal
	if err := config.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("id asc").
		Find(&goals).Error; err != nil {
		return nil, err
	}

	progress := make([]GoalProgress, 0, len(goals))
	for _, goal := range goals {
		current, err := goalCurrent(userID, goal.GoalType, date)
		if err != nil {
			return nil, err
		}

		percentage := 0
		if goal.TargetValue > 0 {
			percentage = int(math.Round(100 * float64(current) / float64(goal.TargetValue)))
		}

		progress = append(progress, GoalProgress{
			GoalID:      goal.ID,
			GoalType:    goal.GoalType,
			TargetValue: goal.TargetValue,
			Current:     current,
			Percentage:  percentage,
			OnTrack:     current >= goal.TargetValue,
		})
	}
	return progress, nil
}

func goalCurrent(userID uint, goalType, date string) (int, error) {
	switch goalType {
	case models.GoalDailyCalories, models.GoalDailyProtein:
		summary, err := NutritionSummaryForDate(userID, date)
		if err != nil {
			return 0, err
		}
		if goalType == models.GoalDailyCalories {
			return summary.TotalCalories, nil
		}
		return summary.TotalProtein, nil

	case models.GoalWeeklyWorkouts:
		sunday, err := weekStartSunday(date)
		if err != nil {
			return 0, err
		}
		return CountWorkoutsInRange(userID, sunday, date)

	case models.GoalDailyMeditation:
		summary, err := MeditationSummaryForDate(userID, date)
		if err != nil {
			return 0, err
		}
		return summary.TotalMinutes, nil

	case models.GoalDailySteps, models.GoalDailyWater, models.GoalDailySleep:
		summary, err := ActivitySummaryForDate(userID, date)
		if err != nil {
			return 0, err
		}
		switch goalType {
		case models.GoalDailySteps:
			return summary.Steps, nil
		case models.GoalDailyWater:
			return summary.Water, nil
		default:
			return summary.Sleep, nil
		}
	}
	return 0, nil
}
