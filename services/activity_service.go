package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// The four daily scalar types.
var activityTypes = []string{"steps", "sleep", "water", "mood_check"}

type ActivitySummary struct {
	Date      string `json:"date"`
	Steps     int    `json:"steps"`
	Sleep     int    `json:"sleep"`
	Water     int    `json:"water"`
	MoodCheck int    `json:"mood_check"`
}

func validActivityType(t string) bool {
	for _, v := range activityTypes {
		if v == t {
			return true
		}
	}
	return false
}

func ListActivities(userID uint, date, activityType string) ([]models.Activity, error) {
	var activities []models.Activity
	q := config.DB.Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	if activityType != "" {
		q = q.Where("activity_type = ?", activityType)
	}
	err := q.Order("id asc").Find(&activities).Error
	return activities, err
}

func RecordActivity(userID uint, date, activityType string, value int) (*models.Activity, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	if !validActivityType(activityType) {
		return nil, fmt.Errorf("unknown activity type %q", activityType)
	}
	activity := models.Activity{
		UserID:       userID,
		Date:         date,
		ActivityType: activityType,
		Value:        value,
	}
	if err := config.DB.Create(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// ActivitySummaryForDate resolves one scalar per type for the date,
// defaulting to 0. Duplicate rows can exist for a (date, type); rows are
// read in insertion order so the last write wins.
func ActivitySummaryForDate(userID uint, date string) (*ActivitySummary, error) {
	activities, err := ListActivities(userID, date, "")
	if err != nil {
		return nil, err
	}

	values := map[string]int{}
	for _, a := range activities {
		values[a.ActivityType] = a.Value
	}

	return &ActivitySummary{
		Date:      date,
		Steps:     values["steps"],
		Sleep:     values["sleep"],
		Water:     values["water"],
		MoodCheck: values["mood_check"],
	}, nil
}

func DeleteActivity(userID, activityID uint) error {
	var activity models.Activity
	if err := config.DB.First(&activity, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if activity.UserID != userID {
		return ErrForbidden
	}
	return config.DB.Delete(&activity).Error
}
