package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalsProgressSteps(t *testing.T) {
	newTestDB(t)

	_, err := CreateGoal(1, models.GoalDailySteps, 10000)
	require.NoError(t, err)
	_, err = RecordActivity(1, "2024-03-15", "steps", 7500)
	require.NoError(t, err)

	progress, err := GoalsProgressForDate(1, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, progress, 1)

	assert.Equal(t, 7500, progress[0].Current)
	assert.Equal(t, 75, progress[0].Percentage)
	assert.False(t, progress[0].OnTrack)
}

func TestGoalsProgressZeroTarget(t *testing.T) {
	newTestDB(t)

	_, err := CreateGoal(1, models.GoalDailyWater, 0)
	require.NoError(t, err)
	_, err = RecordActivity(1, "2024-03-15", "water", 6)
	require.NoError(t, err)

	progress, err := GoalsProgressForDate(1, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, progress, 1)

	assert.Equal(t, 6, progress[0].Current)
	assert.Equal(t, 0, progress[0].Percentage, "zero target must not divide")
	assert.True(t, progress[0].OnTrack)
}

func TestGoalsProgressUnclampedPercentage(t *testing.T) {
	newTestDB(t)

	_, err := CreateGoal(1, models.GoalDailyMeditation, 10)
	require.NoError(t, err)
	_, err = CreateMeditationSession(1, models.MeditationSession{Date: "2024-03-15", DurationMinutes: 25})
	require.NoError(t, err)

	progress, err := GoalsProgressForDate(1, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, progress, 1)

	assert.Equal(t, 250, progress[0].Percentage)
	assert.True(t, progress[0].OnTrack)
}

func TestGoalsProgressWeeklyWorkoutsWindow(t *testing.T) {
	newTestDB(t)

	_, err := CreateGoal(1, models.GoalWeeklyWorkouts, 3)
	require.NoError(t, err)

	// 2024-03-13 is a Wednesday; its week starts Sunday 2024-03-10.
	for _, date := range []string{"2024-03-09", "2024-03-10", "2024-03-12", "2024-03-13", "2024-03-14"} {
		_, err := CreateWorkout(1, models.Workout{Date: date, Name: "run", DurationMinutes: 30})
		require.NoError(t, err)
	}

	progress, err := GoalsProgressForDate(1, "2024-03-13")
	require.NoError(t, err)
	require.Len(t, progress, 1)

	// 03-09 is before the Sunday, 03-14 is after the target date.
	assert.Equal(t, 3, progress[0].Current)
	assert.True(t, progress[0].OnTrack)
}

func TestGoalsProgressNutritionTypes(t *testing.T) {
	newTestDB(t)

	_, err := CreateGoal(1, models.GoalDailyCalories, 2000)
	require.NoError(t, err)
	_, err = CreateGoal(1, models.GoalDailyProtein, 100)
	require.NoError(t, err)

	for _, log := range []models.NutritionLog{
		{Date: "2024-03-15", FoodName: "oats", Calories: 400, Protein: 15},
		{Date: "2024-03-15", FoodName: "chicken", Calories: 600, Protein: 55},
		{Date: "2024-03-16", FoodName: "other day", Calories: 900, Protein: 40},
	} {
		_, err := CreateNutritionLog(1, log)
		require.NoError(t, err)
	}

	progress, err := GoalsProgressForDate(1, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, progress, 2)

	assert.Equal(t, 1000, progress[0].Current)
	assert.Equal(t, 50, progress[0].Percentage)
	assert.Equal(t, 70, progress[1].Current)
	assert.Equal(t, 70, progress[1].Percentage)
}

func TestGoalsProgressSkipsInactive(t *testing.T) {
	newTestDB(t)

	goal, err := CreateGoal(1, models.GoalDailySteps, 10000)
	require.NoError(t, err)

	inactive := false
	_, err = UpdateGoal(1, goal.ID, nil, &inactive)
	require.NoError(t, err)

	progress, err := GoalsProgressForDate(1, "2024-03-15")
	require.NoError(t, err)
	assert.Empty(t, progress)
}

func TestUpdateGoalOwnership(t *testing.T) {
	newTestDB(t)

	goal, err := CreateGoal(1, models.GoalDailySleep, 8)
	require.NoError(t, err)

	target := 9
	_, err = UpdateGoal(2, goal.ID, &target, nil)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = UpdateGoal(1, 999, &target, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
