package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type WorkoutSummary struct {
	Date                string         `json:"date"`
	TotalWorkouts       int            `json:"total_workouts"`
	TotalDuration       int            `json:"total_duration"`
	TotalCaloriesBurned int            `json:"total_calories_burned"`
	WorkoutTypes        map[string]int `json:"workout_types"`
}

func ListWorkouts(userID uint, date string) ([]models.Workout, error) {
	var workouts []models.Workout
	q := config.DB.Preload("Exercises").Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	err := q.Order("id asc").Find(&workouts).Error
	return workouts, err
}

func GetWorkout(userID, workoutID uint) (*models.Workout, error) {
	var workout models.Workout
	if err := config.DB.Preload("Exercises").First(&workout, workoutID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrForbidden
	}
	return &workout, nil
}

func CreateWorkout(userID uint, workout models.Workout) (*models.Workout, error) {
	if err := ValidateDate(workout.Date); err != nil {
		return nil, err
	}
	workout.UserID = userID
	if err := config.DB.Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// WorkoutSummaryForDate counts and sums same-date workouts. A nil
// CaloriesBurned contributes 0.
func WorkoutSummaryForDate(userID uint, date string) (*WorkoutSummary, error) {
	workouts, err := ListWorkouts(userID, date)
	if err != nil {
		return nil, err
	}

	out := &WorkoutSummary{
		Date:          date,
		TotalWorkouts: len(workouts),
		WorkoutTypes:  map[string]int{},
	}
	for _, w := range workouts {
		out.TotalDuration += w.DurationMinutes
		if w.CaloriesBurned != nil {
			out.TotalCaloriesBurned += *w.CaloriesBurned
		}
		if w.WorkoutType != "" {
			out.WorkoutTypes[w.WorkoutType]++
		}
	}
	return out, nil
}

// CountWorkoutsInRange counts workouts with from <= date <= to. Date keys
// sort lexically, so string comparison is the range match.
func CountWorkoutsInRange(userID uint, from, to string) (int, error) {
	var n int64
	err := config.DB.Model(&models.Workout{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Count(&n).Error
	return int(n), err
}

func DeleteWorkout(userID, workoutID uint) error {
	workout, err := GetWorkout(userID, workoutID)
	if err != nil {
		return err
	}
	if err := config.DB.Where("workout_id = ?", workout.ID).Delete(&models.WorkoutExercise{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(workout).Error
}
