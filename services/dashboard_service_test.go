package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardOverviewEmptyDate(t *testing.T) {
	newTestDB(t)

	out, err := GetDashboardOverview(1, "2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, 0, out.Nutrition.TotalCalories)
	assert.Equal(t, 0, out.Nutrition.MealCount)
	assert.Equal(t, 0, out.Workouts.TotalWorkouts)
	assert.Equal(t, 0, out.Workouts.TotalDuration)
	assert.Equal(t, 0, out.Meditation.TotalSessions)
	assert.Equal(t, 0, out.Activities.Steps)
	assert.Equal(t, 0, out.Activities.Sleep)
	assert.Equal(t, 0, out.Activities.Water)
	assert.Equal(t, 0, out.Activities.MoodCheck)
	assert.Empty(t, out.GoalsProgress)
}

func TestDashboardOverviewInvalidDate(t *testing.T) {
	newTestDB(t)

	_, err := GetDashboardOverview(1, "15-03-2024")
	assert.Error(t, err)
}

func TestWorkoutSummaryNilCalories(t *testing.T) {
	newTestDB(t)

	burned := 250
	_, err := CreateWorkout(1, models.Workout{Date: "2024-03-15", Name: "run", WorkoutType: "cardio", DurationMinutes: 30, CaloriesBurned: &burned})
	require.NoError(t, err)
	_, err = CreateWorkout(1, models.Workout{Date: "2024-03-15", Name: "stretch", WorkoutType: "mobility", DurationMinutes: 15})
	require.NoError(t, err)
	_, err = CreateWorkout(1, models.Workout{Date: "2024-03-15", Name: "lift", WorkoutType: "cardio", DurationMinutes: 45})
	require.NoError(t, err)

	out, err := WorkoutSummaryForDate(1, "2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalWorkouts)
	assert.Equal(t, 90, out.TotalDuration)
	assert.Equal(t, 250, out.TotalCaloriesBurned, "nil calories counts as 0")
	assert.Equal(t, map[string]int{"cardio": 2, "mobility": 1}, out.WorkoutTypes)
}

func TestActivitySummaryLastRowWins(t *testing.T) {
	newTestDB(t)

	_, err := RecordActivity(1, "2024-03-15", "steps", 4000)
	require.NoError(t, err)
	_, err = RecordActivity(1, "2024-03-15", "steps", 9000)
	require.NoError(t, err)
	_, err = RecordActivity(1, "2024-03-15", "water", 5)
	require.NoError(t, err)

	out, err := ActivitySummaryForDate(1, "2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, 9000, out.Steps, "last inserted row is authoritative")
	assert.Equal(t, 5, out.Water)
	assert.Equal(t, 0, out.Sleep)
}

func TestActivityUnknownTypeRejected(t *testing.T) {
	newTestDB(t)

	_, err := RecordActivity(1, "2024-03-15", "jumping", 3)
	assert.Error(t, err)
}

func TestNutritionSummaryScopedToUserAndDate(t *testing.T) {
	newTestDB(t)

	_, err := CreateNutritionLog(1, models.NutritionLog{Date: "2024-03-15", FoodName: "soup", Calories: 300, Protein: 10, Carbs: 40, Fats: 8})
	require.NoError(t, err)
	_, err = CreateNutritionLog(1, models.NutritionLog{Date: "2024-03-15", FoodName: "toast", Calories: 200, Protein: 5, Carbs: 30, Fats: 4})
	require.NoError(t, err)
	_, err = CreateNutritionLog(2, models.NutritionLog{Date: "2024-03-15", FoodName: "other user", Calories: 999})
	require.NoError(t, err)

	out, err := NutritionSummaryForDate(1, "2024-03-15")
	require.NoError(t, err)

	assert.Equal(t, 500, out.TotalCalories)
	assert.Equal(t, 15, out.TotalProtein)
	assert.Equal(t, 70, out.TotalCarbs)
	assert.Equal(t, 12, out.TotalFats)
	assert.Equal(t, 2, out.MealCount)
}
