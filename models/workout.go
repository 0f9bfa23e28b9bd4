package models

import "gorm.io/gorm"

// One Workout (strength/cardio/yoga/...) with its exercises.
type Workout struct {
	gorm.Model
	UserID          uint   `gorm:"index;not null"`
	Date            string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	WorkoutType     string `gorm:"size:32"`
	Name            string
	DurationMinutes int
	CaloriesBurned  *int // optional, nil when not tracked
	Notes           string
	Exercises       []WorkoutExercise
}

type WorkoutExercise struct {
	gorm.Model
	WorkoutID uint `gorm:"index;not null"`
	Name      string
	Sets      int
	Reps      int
	Weight    float64 // kg
}
