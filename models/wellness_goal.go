package models

import (
	"gorm.io/gorm"
)

// Goal type enum. Daily goals compare against the same calendar date,
// weekly_workouts against the Sunday-to-date window containing it.
const (
	GoalDailyCalories   = "daily_calories"
	GoalDailyProtein    = "daily_protein"
	GoalWeeklyWorkouts  = "weekly_workouts"
	GoalDailyMeditation = "daily_meditation"
	GoalDailySteps      = "daily_steps"
	GoalDailyWater      = "daily_water"
	GoalDailySleep      = "daily_sleep"
)

// WellnessGoal holds a user-configured target for a tracked metric.
// Disabled via IsActive rather than deleted.
type WellnessGoal struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"`
	GoalType      string `gorm:"size:32;not null"`
	TargetValue   int    // e.g. 2200 kcal, 10000 steps
	CurrentStreak int
	IsActive      bool `gorm:"default:true"`
}
